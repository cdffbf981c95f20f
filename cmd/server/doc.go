// Package main is the entry point for the filesystem gateway server.
//
// The server exposes a capability-scoped view of the local filesystem
// over a structured tool API: callers may only list and read within the
// configured allowed directories, and only files whose extension is on
// the allow-list.
//
// Configuration precedence:
//   - CLI flags (highest)
//   - Environment variables
//   - Allow-list file (config.json / .yaml / .toml)
//
// Usage:
//
//	# Production mode
//	./server -port 8090 -config /etc/fsgateway/config.json
//
//	# Development mode (colored logs, debug level)
//	./server -dev -roots /data -extensions .txt,.md
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
