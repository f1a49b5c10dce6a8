package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-light-wallet/internal/utils"
)

// makeRequest creates a test request with a buffer-backed logger in
// context, the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "POST command 200",
			method:          http.MethodPost,
			path:            "/api/commands/balance",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/api/commands/balance"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "DELETE session no body",
			method:        http.MethodDelete,
			path:          "/api/session",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/api/version?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"uri":"/api/version?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rec := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	})

	rec := httptest.NewRecorder()
	withLogging(next).ServeHTTP(rec, makeRequest(http.MethodGet, "/live", &logBuf))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_LogsOperator(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		publishContext(w, context.WithValue(r.Context(), utils.OperatorCtxKey, "ops"))
		w.WriteHeader(http.StatusOK)
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/api/session", &logBuf))

	assert.Contains(t, logBuf.String(), `"operator":"ops"`)
}
