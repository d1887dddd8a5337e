package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/weberkan/mevatur-backend/internal/middleware"
)

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rate := limiter.Rate{Period: time.Minute, Limit: 2}
	r := gin.New()
	r.POST("/login", middleware.RateLimit(limiter.New(memory.NewStore(), rate)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_CountsPerClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rate := limiter.Rate{Period: time.Minute, Limit: 1}
	r := gin.New()
	r.POST("/login", middleware.RateLimit(limiter.New(memory.NewStore(), rate)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	req1, _ := http.NewRequest(http.MethodPost, "/login", nil)
	req1.RemoteAddr = "203.0.113.7:1234"
	r.ServeHTTP(first, req1)

	other := httptest.NewRecorder()
	req2, _ := http.NewRequest(http.MethodPost, "/login", nil)
	req2.RemoteAddr = "203.0.113.8:1234"
	r.ServeHTTP(other, req2)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, other.Code)
}
