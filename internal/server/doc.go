// Package server runs the optional control API.
//
// It owns the HTTP server lifecycle: startup, shutdown when the client's
// context ends, and a bounded graceful drain of in-flight requests.
package server
