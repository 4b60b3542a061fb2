package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(limiter *RateLimiter, submit RateLimitRule) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		GroupFor: SubmitGroupFor,
		Limiter:  limiter,
		Rules:    map[string]RateLimitRule{SubmitGroup: submit},
	}))
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.POST("/api/v1/diagnostics", ok)
	r.POST("/api/v1/diagnostics/preview", ok)
	r.GET("/api/v1/sectors", ok)
	return r
}

func TestRateLimitOnlySubmitGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	r := newLimitedRouter(NewRateLimiter(func() time.Time { return now }), PerMinute(2))

	for i := 0; i < 5; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/sectors", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("catalog request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	paths := []string{"/api/v1/diagnostics", "/api/v1/diagnostics/preview"}
	for i, p := range paths {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, p, nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("submit request %d expected 200, got %d", i+1, resp.Code)
		}
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/v1/diagnostics", nil))
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
}

func TestRateLimit429IncludesRetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	r := newLimitedRouter(limiter, RateLimitRule{Rate: 1, Burst: 1})

	resp1 := httptest.NewRecorder()
	r.ServeHTTP(resp1, httptest.NewRequest(http.MethodPost, "/api/v1/diagnostics", nil))
	if resp1.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", resp1.Code)
	}

	resp2 := httptest.NewRecorder()
	r.ServeHTTP(resp2, httptest.NewRequest(http.MethodPost, "/api/v1/diagnostics", nil))
	if resp2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp2.Code)
	}
	if resp2.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After 1, got %q", resp2.Header().Get("Retry-After"))
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" {
		t.Fatalf("expected rate_limited, got %q", payload.Error.Code)
	}
	if _, ok := payload.Error.Details["retryAfterMs"]; !ok {
		t.Fatalf("expected retryAfterMs in details")
	}

	now = now.Add(time.Second)
	resp3 := httptest.NewRecorder()
	r.ServeHTTP(resp3, httptest.NewRequest(http.MethodPost, "/api/v1/diagnostics", nil))
	if resp3.Code != http.StatusOK {
		t.Fatalf("expected refill after 1s, got %d", resp3.Code)
	}
}

func TestPerMinuteDisabledForNonPositive(t *testing.T) {
	if rule := PerMinute(0); rule.Rate != 0 || rule.Burst != 0 {
		t.Fatalf("expected zero rule, got %+v", rule)
	}
	allowed, _ := NewRateLimiter(nil).Allow("k", PerMinute(0))
	if !allowed {
		t.Fatalf("expected disabled rule to allow")
	}
}
