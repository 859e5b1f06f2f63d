// Package config provides configuration management for the Excel Exporter.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Export: input/output directories and codegen namespace
//   - Server: preview HTTP server settings (port)
//   - Storage: S3/MinIO credentials and bucket settings for publishing
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Export.InputDir)
package config
