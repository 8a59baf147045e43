// Package config provides configuration management for spool-sync.
//
// It uses Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section, so every key is registered for AutomaticEnv.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key (SERVER_PORT, SERVER_API_KEY)
//   - Log: level and format (LOG_LEVEL, LOG_FORMAT)
//   - Database: run history store, sqlite or mysql (DATABASE_DRIVER, ...)
//   - Storage: optional S3/MinIO report archive (STORAGE_ENDPOINT, ...)
//   - Spoolman: inventory service URL and retries (SPOOLMAN_URL, ...)
//   - MQTT: printer connection settings (MQTT_PORT, ...)
//   - Redis: optional distributed pass lock (REDIS_ADDR, ...)
//   - Sync: pass behaviour (SYNC_DISABLE_WEIGHT_SYNC, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Spoolman.URL)
package config
