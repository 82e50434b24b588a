// Package logger is a small structured logging facade with swappable
// destinations.
//
// Key features
//   - Level-gated method presence: a logger bound at "info" has a nil Debug
//     slot, so call sites guard with a nil check and never build debug
//     arguments at all
//   - Immutable context chaining: WithContext derives a child logger with
//     extra key/value tags without touching the parent
//   - Composable sinks: console (plain or level-prefixed), custom format,
//     rotating file, zerolog backend, and a tee that fans one call out to
//     several sinks and aggregates their flushes
//   - Safe rendering: structured arguments become single-line JSON, error
//     chains keep name, message, stack, and nested causes
//
// Typical usage
//
//	lc := logger.New(logger.WithMinLevel(logger.LevelDebug))
//	req := lc.WithContext("request_id", rid)
//	if req.Debug != nil {
//		req.Debug("handling", payload)
//	}
//	req.Info("processed")
//	_ = req.Flush()
package logger
