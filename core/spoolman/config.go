package spoolman

// Config holds configuration for the Spoolman client.
type Config struct {
	// URL is the base URL of the Spoolman instance.
	URL string `mapstructure:"url" default:"http://localhost:7912"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// RetryCount is the number of retries for failed requests.
	RetryCount int `mapstructure:"retry_count" default:"2"`
}
