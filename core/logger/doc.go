// Package logger builds the application's zap logger.
//
// Level accepts any zapcore level name (debug, info, warn, error). Format
// selects the json encoder or the human readable console encoder.
//
//	log, err := logger.New(&cfg.Log)
//
// Request handlers derive a logger carrying the request's ray id:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Comparison failed", zap.Error(err))
package logger
