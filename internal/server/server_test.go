package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server:        config.ServerConfig{Port: "0"},
		Completion:    config.CompletionConfig{Provider: "gemini", Timeout: time.Second},
		Media:         config.MediaConfig{ImageSearchURL: "http://127.0.0.1:1"},
		CORS:          config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit:     config.RateLimitConfig{RPS: 10, Burst: 10},
		Observability: config.ObservabilityConfig{ServiceName: "travelmind-test"},
	}
}

func TestCrashedRouter(t *testing.T) {
	h := CrashedRouter(errors.New("invalid COMPLETION_PROVIDER \"llamafile\""))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(method, "/api/ai/plan", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code, method)
		assert.JSONEq(t, `{
			"status": "CRASHED",
			"error": "Backend crashed during startup import",
			"debug_info": {"message": "invalid COMPLETION_PROVIDER \"llamafile\""}
		}`, w.Body.String())
	}
}

func TestSetupRouter(t *testing.T) {
	h, err := SetupRouter(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"active","system":"TravelMind AI Core"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_UnknownRoute(t *testing.T) {
	h, err := SetupRouter(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := New(testConfig(), zap.NewNop())
	srv.SetRouter(http.NotFoundHandler())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestShutdown_NoServers(t *testing.T) {
	assert.NoError(t, Shutdown(zap.NewNop(), time.Second))
}
