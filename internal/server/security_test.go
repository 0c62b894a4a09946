package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftplanner/internal/crafting"
	"github.com/osse101/craftplanner/internal/logger"
)

const testAPIKey = "planner-secret"

func serve(h http.Handler, method, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_SessionRoutes(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	tests := []struct {
		name           string
		method         string
		path           string
		key            string
		expectedStatus int
	}{
		{"create session with key", http.MethodPost, APIPrefix + "/sessions", testAPIKey, http.StatusCreated},
		{"create session wrong key", http.MethodPost, APIPrefix + "/sessions", "guess", http.StatusUnauthorized},
		{"create session missing key", http.MethodPost, APIPrefix + "/sessions", "", http.StatusUnauthorized},
		{"list items with key", http.MethodGet, APIPrefix + "/items", testAPIKey, http.StatusOK},
		{"list items missing key", http.MethodGet, APIPrefix + "/items", "", http.StatusUnauthorized},
		{"healthz is public", http.MethodGet, "/healthz", "", http.StatusOK},
		{"readyz is public", http.MethodGet, "/readyz", "", http.StatusOK},
		{"version is public", http.MethodGet, "/version", "", http.StatusOK},
		{"metrics is public", http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path, tt.key)
			assert.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_SessionFlowWithKey(t *testing.T) {
	router := newTestRouter(t, testAPIKey)

	rec := serve(router, http.MethodPost, APIPrefix+"/sessions", testAPIKey)
	require.Equal(t, http.StatusCreated, rec.Code)
	var info crafting.SessionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	require.NotEmpty(t, info.ID)

	materials := APIPrefix + "/sessions/" + info.ID + "/materials"
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, materials, testAPIKey).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, materials, "").Code)
}

func TestAuthMiddleware_EmptyKeyDisablesAuth(t *testing.T) {
	router := newTestRouter(t, "")

	rec := serve(router, http.MethodPost, APIPrefix+"/sessions", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAuthMiddleware_CountsFailedAttempts(t *testing.T) {
	svc, cat := newTestService(t)
	detector := NewSuspiciousActivityDetector()
	router := AuthMiddleware(testAPIKey, nil, detector)(NewRouter(testOptions("", cat), svc))

	for range FailedAuthAlertCount {
		rec := serve(router, http.MethodPost, APIPrefix+"/sessions", "wrong")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	serve(router, http.MethodPost, APIPrefix+"/sessions", testAPIKey)

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, FailedAuthAlertCount, detector.failedAuthByIP["192.0.2.1"])
}

func TestSecurityLoggingMiddleware_RateLimitsPlannerRoutes(t *testing.T) {
	const limit = 3
	router := SecurityLoggingMiddleware(nil, newDetector(time.Minute, limit))(newTestRouter(t, ""))

	for i := range limit {
		rec := serve(router, http.MethodGet, APIPrefix+"/items", "")
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := serve(router, http.MethodGet, APIPrefix+"/items", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgTooManyRequests)

	other := httptest.NewRequest(http.MethodGet, APIPrefix+"/items", nil)
	other.RemoteAddr = "198.51.100.9:4000"
	otherRec := httptest.NewRecorder()
	router.ServeHTTP(otherRec, other)
	assert.Equal(t, http.StatusOK, otherRec.Code, "limits are per client IP")
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	d := newDetector(time.Minute, 1)

	assert.True(t, d.RecordRequest("203.0.113.7"))
	assert.False(t, d.RecordRequest("203.0.113.7"))
	d.RecordFailedAuth("203.0.113.7")

	d.mu.Lock()
	d.lastResetTime = time.Now().Add(-2 * time.Minute)
	d.mu.Unlock()

	assert.True(t, d.RecordRequest("203.0.113.7"))
	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Zero(t, d.failedAuthByIP["203.0.113.7"])
}

func TestSecurityHeaders_OnPlannerResponses(t *testing.T) {
	router := newTestRouter(t, "")

	for _, path := range []string{APIPrefix + "/items", "/healthz"} {
		rec := serve(router, http.MethodGet, path, "")
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType), path)
		assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions), path)
		assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection), path)
		assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy), path)
	}
}

func TestLoggingMiddleware_RedactsCredentials(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger.InitLoggerWithWriter(logger.Config{Level: logger.LevelDebug, Format: logger.FormatText}, &buf)

	router := newTestRouter(t, testAPIKey)
	req := httptest.NewRequest(http.MethodGet, APIPrefix+"/items", nil)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set(HeaderAuthorization, "Bearer planner-token")
	req.Header.Set("User-Agent", "plan-client")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, testAPIKey)
	assert.NotContains(t, out, "planner-token")
	assert.Contains(t, out, RedactedValue)
	assert.Contains(t, out, "plan-client")
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct connection", "203.0.113.7:5000", "", nil, "203.0.113.7"},
		{"untrusted proxy header ignored", "203.0.113.7:5000", "198.51.100.1", nil, "203.0.113.7"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "198.51.100.1, 192.0.2.4", []string{"10.0.0.1"}, "192.0.2.4"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
