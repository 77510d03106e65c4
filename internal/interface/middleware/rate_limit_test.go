package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRemainingAfterClampsAtZero(t *testing.T) {
	cases := []struct {
		max, count, want int
	}{
		{10, 1, 9},
		{10, 10, 0},
		{10, 11, 0},
		{10, 500, 0},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := remainingAfter(tc.max, tc.count); got != tc.want {
			t.Errorf("remainingAfter(%d, %d) = %d, want %d", tc.max, tc.count, got, tc.want)
		}
	}
}

func TestKeyFuncs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/login", nil)
	c.Set("real_ip", "203.0.113.7")

	if got := KeyByIP()(c); got != "rl:ip:203.0.113.7" {
		t.Errorf("KeyByIP = %q", got)
	}
	if got := KeyByIPAndPath()(c); got != "rl:path:/api/login:ip:203.0.113.7" {
		t.Errorf("KeyByIPAndPath = %q", got)
	}
}

func TestRateLimitDisabledWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/ping", RateLimit(nil, 1, 0, KeyByIP()), func(c *gin.Context) {
		c.Status(200)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("POST", "/ping", nil))
		if w.Code != 200 {
			t.Fatalf("request %d: got %d, want pass-through 200", i+1, w.Code)
		}
	}
}
