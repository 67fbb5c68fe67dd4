// Package logging provides structured logging for clipbridge.
//
// This package wraps a zap logger with convenience functions for the few
// logging patterns clipbridge needs: general leveled logging plus helpers
// for the best-effort platform calls (storage, clipboard, file save,
// messaging composer) whose failures are never shown as hard errors.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Keystroke-level persistence, code rendering sizes
//   - Info: Mode changes, completed actions
//   - Warn: Best-effort platform calls that failed
//   - Error: Startup failures
//
// # Silent by Default
//
// clipbridge is a full-screen terminal application, so nothing may be written
// to stdout while it runs. Logging is disabled unless CLIPBRIDGE_LOG_LEVEL is
// set (or a level is passed to Initialize). Output goes to stderr, or to the
// file named by CLIPBRIDGE_LOG_FILE:
//
//	CLIPBRIDGE_LOG_LEVEL=debug CLIPBRIDGE_LOG_FILE=/tmp/clipbridge.log clipbridge
//
// # Structured Logging
//
//	logging.Info("Document downloaded",
//	    zap.String("path", path),
//	    zap.Int("length", n),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
