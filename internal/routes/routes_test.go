package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/travelmind/internal/app/domain/completion"
	"github.com/FACorreiaa/travelmind/internal/pkg/config"
)

const jwtSecret = "routes-test-secret-with-enough-length-1234"

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Completion: config.CompletionConfig{Provider: "gemini"},
		Identity:   config.IdentityConfig{JWTSecret: jwtSecret},
		Media:      config.MediaConfig{ImageSearchURL: "http://127.0.0.1:1"},
		RateLimit:  config.RateLimitConfig{RPS: 100, Burst: 100},
	}
}

func newEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	r := gin.New()
	require.NoError(t, Setup(context.Background(), r, cfg, zap.NewNop()))
	return r
}

func bearer(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":           "u-1",
		"email":         "ana@example.com",
		"user_metadata": map[string]any{"full_name": "Ana"},
		"exp":           time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func request(r http.Handler, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthRoutes(t *testing.T) {
	r := newEngine(t, testConfig())

	w := request(r, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"active","system":"TravelMind AI Core"}`, w.Body.String())

	w = request(r, http.MethodGet, "/api/test", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"API Router is working"}`, w.Body.String())
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	r := newEngine(t, testConfig())

	for _, path := range []string{"/api/ai/chat", "/api/ai/plan", "/api/ai/replan", "/api/ai/insight", "/api/media/videos", "/api/media/image"} {
		w := request(r, http.MethodPost, path, `{}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, request(r, http.MethodGet, "/api/auth/me", "", "").Code)
}

func TestChatWithoutProviderCredential(t *testing.T) {
	r := newEngine(t, testConfig())

	w := request(r, http.MethodPost, "/api/ai/chat", `{"message":"Best time to visit Kyoto?"}`, bearer(t))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, completion.ServiceUnavailableMessage, body["response"])
}

func TestPlanWithoutProviderCredentialServesFallback(t *testing.T) {
	r := newEngine(t, testConfig())
	body := `{"destination":"Hyderabad","dates":"Mar 1-4","duration_days":4,"budget":"$800","group_size":2,
		"preferences":{"pace":"moderate","travel_style":["food"]}}`

	w := request(r, http.MethodPost, "/api/ai/plan", body, bearer(t))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Itinerary-Fallback"))

	var envelope struct {
		ItineraryJSON string `json:"itinerary_json"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	var doc struct {
		TripSummary struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"trip_summary"`
		Days []struct {
			Activities []json.RawMessage `json:"activities"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal([]byte(envelope.ItineraryJSON), &doc))
	assert.Equal(t, "Discovery of Hyderabad", doc.TripSummary.Title)
	assert.Contains(t, doc.TripSummary.Description, "Hyderabad")
	require.Len(t, doc.Days, 1)
	assert.Len(t, doc.Days[0].Activities, 2)
}

func TestMeAndLogout(t *testing.T) {
	r := newEngine(t, testConfig())

	w := request(r, http.MethodGet, "/api/auth/me", "", bearer(t))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"ana@example.com","full_name":"Ana","disabled":false}`, w.Body.String())

	w = request(r, http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully logged out"}`, w.Body.String())
}

func TestVideosWithoutKeyReturnsEmptyList(t *testing.T) {
	r := newEngine(t, testConfig())

	w := request(r, http.MethodPost, "/api/media/videos", `{"query":"Kyoto"}`, bearer(t))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"videos":[]}`, w.Body.String())
}

func TestAIRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
	r := newEngine(t, cfg)

	first := request(r, http.MethodPost, "/api/ai/chat", `{"message":"hi"}`, bearer(t))
	second := request(r, http.MethodPost, "/api/ai/chat", `{"message":"hi"}`, bearer(t))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestPlanAcceptsEmptyBudget(t *testing.T) {
	r := newEngine(t, testConfig())
	body := `{"destination":"Hyderabad","dates":"Mar 1-4","duration_days":4,"budget":"","group_size":2,
		"preferences":{"pace":"moderate","travel_style":["food"]}}`

	w := request(r, http.MethodPost, "/api/ai/plan", body, bearer(t))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Discovery of Hyderabad")
}

func TestInsightAcceptsEmptyCategory(t *testing.T) {
	r := newEngine(t, testConfig())

	w := request(r, http.MethodPost, "/api/ai/insight", `{"destination":"Paris","category":""}`, bearer(t))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"insight":{}}`, w.Body.String())
}

func TestExpiredTokenDetailNamesReason(t *testing.T) {
	r := newEngine(t, testConfig())
	claims := jwt.MapClaims{"sub": "u-1", "email": "ana@example.com", "exp": time.Now().Add(-time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)

	w := request(r, http.MethodGet, "/api/auth/me", "", "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body["detail"], "Could not validate credentials: "), body["detail"])
	assert.Contains(t, body["detail"], "token is expired")
}
