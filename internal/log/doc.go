// Package log provides secure logging functionality with automatic
// sanitization of identifying fingerprint material, built on top of the
// standard slog package.
//
// NetRunner exists to tell users how trackable their fingerprint is; its
// own logs must not become another copy of that fingerprint. The
// SecureHandler masks raw hash signals (canvas, audio), user-agent strings,
// and anything that looks like a credential before the record reaches the
// underlying handler. Even in verbose mode, masked values stay masked.
//
// Usage:
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("analyzing fingerprint",
//	    "canvas_hash", hash,   // masked
//	    "platform", platform,  // kept
//	)
package log
