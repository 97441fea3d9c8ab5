// Package logger provides structured logging for the calculator using
// zerolog.
//
// Logs go to standard error by default so that standard output only carries
// computed results. The default level is "warn"; raise it with the
// logging.level setting or CALC_LOGGING_LEVEL=debug to trace dispatch and
// input handling.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("reader")
//	log.Debug("source opened", logger.Fields("source", name))
package logger
