// Package pkg provides shared utilities for the mscstore storage stack.
//
// This package contains common functionality used across the storage
// and command layers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for the storage error taxonomy
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with storage-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentStorage, "handle opened", "sectorSize", 512)
//
// # Errors
//
// Storage errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrOverflow) {
//	    // Address arithmetic would wrap
//	}
//
// Backend read/write/erase failures are not wrapped; they propagate
// verbatim so callers can match against the backend's own errors.
package pkg
