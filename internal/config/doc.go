// Package config loads mcpreg's own settings.
//
// # Configuration File
//
// Viper searches for config.yaml in the working directory and then in
// ~/.config/mcpreg (or $MCPREG_CONFIG_DIR):
//
//	version: 1
//	server:
//	  addr: ":8080"
//	  read_timeout: 10s
//	  shutdown_timeout: 5s
//	default_client: Claude Desktop   # optional
//	catalog_file: ./catalog.yaml     # optional replacement table
//	slug:
//	  sanitize_author: false
//
// Every key can be overridden from the environment with the MCPREG_ prefix,
// dots replaced by underscores (MCPREG_SERVER_ADDR).
//
// # Loading
//
//	config.Init()
//	cfg, err := config.Load("")
//
// [Load] validates the result; see [Validate] for the rules.
package config
