// Package config provides configuration management for the implementation tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP server settings (port, API key, read timeout)
//   - Database: document database connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the bucket holding snapshots
//   - Log: Logging level and format
//   - I18n: locale used to render differences
//
// Environment variables map to nested keys, e.g. I18N_LOCALE -> i18n.locale.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
