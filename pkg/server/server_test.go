package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tom-damari/pharmacy-ai-agent/pkg/monitoring"
)

func TestSetupRouterHealthEndpoint(t *testing.T) {
	logger := logrus.New()
	health := monitoring.NewHealthChecker("agent", "test")
	router := SetupRouter(logger, health, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", w.Code)
	}
}
