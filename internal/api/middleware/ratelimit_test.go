package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsroom-backend/internal/api/middleware"
	"newsroom-backend/internal/mocks"
	"newsroom-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRateLimitRouter(limiter ratelimit.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RateLimit(limiter))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return router
}

func TestRateLimitAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockLimiter(ctrl)
	resetAt := time.Now().Add(time.Minute)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{
		Allowed:   true,
		Limit:     100,
		Remaining: 99,
		ResetAt:   resetAt,
	}, nil).Times(1)
	router := setupRateLimitRouter(limiter)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "99", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimitExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{
		Allowed:   false,
		Limit:     100,
		Remaining: 0,
		ResetAt:   time.Now().Add(time.Minute),
	}, nil).Times(1)
	router := setupRateLimitRouter(limiter)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitBackendFailureLetsRequestThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mocks.NewMockLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{}, errors.New("redis down")).Times(1)
	router := setupRateLimitRouter(limiter)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
