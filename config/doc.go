// Package config loads the shipping API client configuration.
//
// It uses Viper to read an optional YAML file, loads an optional .env file
// with godotenv, and applies SHIPX_-prefixed environment overrides with
// underscore-separated paths (e.g. SHIPX_ACCESS_TOKEN, SHIPX_LOGGING_LEVEL).
// The result is validated with struct tags.
//
// # Usage
//
//	cfg, err := config.Load(config.WithConfigFile("shipx.yml"))
package config
