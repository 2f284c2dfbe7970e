// Package logger provides structured logging for the shipping API client
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(cfg, "shipx").WithComponent("adapter")
//	log.Debug("request sent", logger.Fields("method", "GET", "url", url))
package logger
