package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		target        string
		handlerStatus int
		handlerBody   string
	}{
		{
			name:          "listing response passes through",
			method:        http.MethodGet,
			target:        "/api/v1/houses?noise=quiet",
			handlerStatus: http.StatusOK,
			handlerBody:   `{"status":"success","count":0,"data":[]}`,
		},
		{
			name:          "error response passes through",
			method:        http.MethodPost,
			target:        "/api/v1/reviews",
			handlerStatus: http.StatusNotFound,
			handlerBody:   `{"status":"error","message":"house not found"}`,
		},
		{
			name:          "empty body",
			method:        http.MethodDelete,
			target:        "/api/v1/saved_houses?house=12+Fairview+Ave",
			handlerStatus: http.StatusOK,
			handlerBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			req := httptest.NewRequest(tt.method, tt.target, nil)
			rr := httptest.NewRecorder()

			LoggingMiddleware(next).ServeHTTP(rr, req)

			// The middleware must be transparent to the response.
			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.handlerBody, rr.Body.String())

			// Every response is tagged with a request id.
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestLoggingMiddleware_UniqueRequestIDs(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(next)

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/forum", nil))
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/forum", nil))

	assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
}
