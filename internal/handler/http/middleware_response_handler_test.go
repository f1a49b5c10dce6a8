package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_FirstWriteHeaderWins(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{"single", []int{http.StatusCreated}, http.StatusCreated},
		{"double call", []int{http.StatusAccepted, http.StatusBadRequest}, http.StatusAccepted},
		{"triple call", []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	_, _ = w.Write([]byte("world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestPublishContext_IgnoresForeignWriters(t *testing.T) {
	assert.NotPanics(t, func() {
		publishContext(httptest.NewRecorder(), t.Context())
	})
}
