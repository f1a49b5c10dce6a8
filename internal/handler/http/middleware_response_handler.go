// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

// responseWriter is a thin decorator around [http.ResponseWriter] that
// captures the status code and body size for access logging.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int

	// ctx is the request context as seen by the innermost handler that
	// called setContext; the auth middleware publishes the operator here.
	ctx context.Context
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends 200 when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *responseWriter) setContext(ctx context.Context) {
	w.ctx = ctx
}

// publishContext hands ctx to the logging middleware when w is ours.
func publishContext(w http.ResponseWriter, ctx context.Context) {
	if rw, ok := w.(*responseWriter); ok {
		rw.setContext(ctx)
	}
}
