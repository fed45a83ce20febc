// Package main is the entry point for the sandboxed file server.
//
// The binary seeds the sandbox directory and the file registry, then
// runs the interactive console against the provider registry. There is
// no network surface; the only caller is the local console.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Default sandbox under /tmp/fileserver
//	./fileserver serve
//
//	# Custom sandbox, capacity and delete delay
//	./fileserver serve --root /tmp/fs --capacity 8 --delay 250ms
//
// Signals:
//   - SIGINT, SIGTERM: stop the console loop
package main
