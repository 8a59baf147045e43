package lock

// Config holds configuration for the pass lock.
type Config struct {
	// Addr is the Redis address. Empty means an in-process lock is used.
	Addr string `mapstructure:"addr" default:""`
	// Password is the Redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the Redis database number.
	DB int `mapstructure:"db" default:"0"`
	// KeyPrefix prefixes every lock key.
	KeyPrefix string `mapstructure:"key_prefix" default:"spool-sync:lock:"`
	// TTLSeconds is how long a lock survives a crashed holder.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"120"`
}
