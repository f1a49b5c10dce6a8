// Package http implements the light wallet control API.
//
// It exposes route wiring, request handlers and middleware for session
// lifecycle, command dispatch, build info, health and metrics. Request
// tracing, access logging and bearer-token authentication are handled in
// this package before requests reach the service layer.
package http
