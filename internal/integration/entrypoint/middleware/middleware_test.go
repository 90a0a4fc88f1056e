package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/care-for-plants/backend/internal/application/adapter/adaptertest"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()
	resolver := &adaptertest.MockTokenService{}
	resolver.On("ResolveUser", mock.Anything, "good").Return(userID, nil)
	resolver.On("ResolveUser", mock.Anything, "stale").Return(uuid.Nil, domainerror.NewAuthError(
		domainerror.ErrCodeExpiredToken, "token has expired", domainerror.ErrUnauthenticated,
	))

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(resolver).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name   string
		header string
		status int
		code   domainerror.AuthErrorCode
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, code: domainerror.ErrCodeMissingToken},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized, code: domainerror.ErrCodeInvalidToken},
		{name: "scheme only", header: "Bearer", status: http.StatusUnauthorized, code: domainerror.ErrCodeInvalidToken},
		{name: "empty token", header: "Bearer  ", status: http.StatusUnauthorized, code: domainerror.ErrCodeMissingToken},
		{name: "expired token", header: "Bearer stale", status: http.StatusUnauthorized, code: domainerror.ErrCodeExpiredToken},
		{name: "valid token", header: "Bearer good", status: http.StatusOK},
		{name: "scheme is case insensitive", header: "bearer good", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.code), body.Code)
		})
	}
}

func loginFrom(router *gin.Engine, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", http.NoBody)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		last = loginFrom(router, "203.0.113.7:4000")
		codes = append(codes, last.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "30", last.Header().Get("Retry-After"))

	// buckets are per client address
	assert.Equal(t, http.StatusOK, loginFrom(router, "203.0.113.8:4000").Code)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	const clients = 500
	limiter := NewRateLimiter(5, 20*time.Millisecond)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := range clients {
		loginFrom(router, fmt.Sprintf("10.0.%d.%d:5000", i/256, i%256))
	}
	assert.Positive(t, limiter.clients.ItemCount())

	assert.Eventually(t, func() bool {
		return limiter.clients.ItemCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRateLimiterDefaults(t *testing.T) {
	limiter := NewRateLimiter(0, 0)
	assert.Equal(t, defaultMaxAttempts, limiter.burst)
	assert.Equal(t, rate.Every(defaultWindowDuration/defaultMaxAttempts), limiter.limit)
}

type recordedRequest struct {
	method, path string
	status       int
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method, path, status})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}
	router := gin.New()
	router.Use(Metrics(recorder))
	router.GET("/plants/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/plants/1", "/plants/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequestWithContext(context.Background(), http.MethodGet, path, http.NoBody))
	}

	assert.Equal(t, []recordedRequest{
		{http.MethodGet, "/plants/:id", http.StatusNoContent},
		{http.MethodGet, "/plants/:id", http.StatusNoContent},
		{http.MethodGet, unmatchedRoute, http.StatusNotFound},
	}, recorder.requests)
}
