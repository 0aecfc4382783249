package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RequestIDMiddleware()(c)

	if GetRequestID(c) == "" {
		t.Fatalf("expected generated request id")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID response header")
	}
}

func TestRequestIDMiddleware_PreservesInboundID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Request-ID", "req-123")

	RequestIDMiddleware()(c)

	if got := GetRequestID(c); got != "req-123" {
		t.Fatalf("expected req-123, got %q", got)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodOptions, "/chat", nil)

	CORSMiddleware()(c)

	if w.Code != 204 {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected wildcard CORS origin")
	}
}

func TestRecoveryMiddleware_Panic(t *testing.T) {
	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	logger := logrus.New()

	engine.Use(RecoveryMiddleware(logger))
	engine.GET("/boom", func(*gin.Context) { panic("boom") })
	c.Request = httptest.NewRequest(http.MethodGet, "/boom", nil)
	engine.ServeHTTP(w, c.Request)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", w.Code)
	}
}
