// Package logging provides structured logging for the entity renamer.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the application.
//
// # Features
//
//   - Text output for the terminal (default)
//   - JSON output for machine consumption
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # json, text
//	  output: "stderr"   # stdout, stderr
//
// Diagnostics go to stderr by default so the preview table printed on
// stdout can be piped or redirected on its own.
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("entities listed", "count", 42)
//	logger.Error("connection failed", "error", err)
//
// # Security
//
// Never log the access token. Control-channel auth frames are logged
// with the token redacted.
package logging
