// Package httpserver wraps net/http's server with functional options,
// environment-driven configuration, and graceful shutdown on SIGINT/SIGTERM.
package httpserver
