package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func loginRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/login", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": "stub"})
	})
	return r
}

func postLogin(r *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/login", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_AllowsLoginAttemptsWithinBudget(t *testing.T) {
	r := loginRouter(NewRateLimiter(10, 10))

	for i := 0; i < 5; i++ {
		w := postLogin(r, "203.0.113.10:52100")
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected status 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimit_ThrottlesLoginBursts(t *testing.T) {
	// Same budget shape as the live login endpoint: small burst, slow refill.
	r := loginRouter(NewRateLimiter(1, 2))

	limited := 0
	for i := 0; i < 5; i++ {
		if w := postLogin(r, "203.0.113.20:52100"); w.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	if limited == 0 {
		t.Error("expected repeated login attempts to hit the rate limit")
	}
}

func TestRateLimit_TracksClientsIndependently(t *testing.T) {
	r := loginRouter(NewRateLimiter(1, 1))

	if w := postLogin(r, "203.0.113.30:52100"); w.Code != http.StatusOK {
		t.Fatalf("first client: expected 200, got %d", w.Code)
	}
	if w := postLogin(r, "203.0.113.30:52100"); w.Code != http.StatusTooManyRequests {
		t.Errorf("first client retry: expected 429, got %d", w.Code)
	}

	// A different couple logging in from their own network is unaffected.
	if w := postLogin(r, "198.51.100.7:41000"); w.Code != http.StatusOK {
		t.Errorf("second client: expected 200, got %d", w.Code)
	}
}
