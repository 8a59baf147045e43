package bambu

// Config holds connection settings shared by every printer.
type Config struct {
	// Port is the printer's MQTT TLS port.
	Port int `mapstructure:"port" default:"8883"`
	// Username is the MQTT user. Bambu printers always use "bblp".
	Username string `mapstructure:"username" default:"bblp"`
	// InsecureTLS skips certificate verification (printers use self-signed certs).
	InsecureTLS bool `mapstructure:"insecure_tls" default:"true"`
	// ConnectTimeoutSeconds bounds the initial connection.
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" default:"10"`
	// ClientIDPrefix prefixes the MQTT client id.
	ClientIDPrefix string `mapstructure:"client_id_prefix" default:"spool-sync"`
}

// Target identifies a single printer to connect to.
type Target struct {
	// Name is the printer's display name.
	Name string
	// Host is the printer's LAN address.
	Host string
	// Serial is the printer's serial number.
	Serial string
	// AccessCode is the printer's LAN access code.
	AccessCode string
}

// ReportTopic returns the topic a printer publishes reports on.
func ReportTopic(serial string) string {
	return "device/" + serial + "/report"
}

// RequestTopic returns the topic a printer accepts commands on.
func RequestTopic(serial string) string {
	return "device/" + serial + "/request"
}
