// Package logging configures log/slog for the lmconfig CLI and the lmconfigd
// server.
//
// Every record is a JSON object written to stderr and carries the "module"
// and "version" attributes of the binary that produced it. The level comes
// from an explicit argument or, for SetDefaultStructuredLogger, from the
// LOG_LEVEL environment variable. Unknown or empty levels fall back to INFO.
//
// Recognised levels (case-insensitive): debug, info, warn or warning, error.
// At debug level each record also includes its source location.
//
// # Usage
//
// Install the process-wide logger once, as early as possible:
//
//	logging.SetDefaultStructuredLogger("lmconfigd", version)
//	slog.Info("listening", "port", cfg.Port)
//
// The CLI resolves the level from its --log-level flag instead:
//
//	logging.SetDefaultStructuredLoggerWithLevel("lmconfig", version, level)
//
// A dedicated logger that does not replace slog's default:
//
//	logger := logging.NewStructuredLogger("lmconfig", version, "debug")
//	logger.Debug("decoded token", "input", "12.5px", "kind", "pixels")
//
// NewLogLogger adapts the default handler to a *log.Logger for APIs such as
// http.Server.ErrorLog.
//
// # Output
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"config validated",
//	 "module":"lmconfig","version":"v0.3.0","source":"linearmouse.json","valid":true}
//
// The distance package never logs; it reports problems only through errors.
package logging
