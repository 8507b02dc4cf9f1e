package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	SetRequestID(c, "from-echo")
	assert.Equal(t, "from-echo", GetRequestID(c))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "from-ctx", GetRequestID(c))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := uuid.Parse(GetRequestID(c))
	assert.NoError(t, err)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.Default().With("request_id", "x")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
