// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Sandbox initialized", zap.String("root", root))
//	logger.Error("Write failed", zap.Error(err))
package logging
