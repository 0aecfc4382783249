package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckHealth_AllHealthy(t *testing.T) {
	hc := NewHealthChecker("agent", "test")
	hc.AddCheck("always", func() CheckResult {
		return CheckResult{Status: StatusHealthy}
	})

	status := hc.CheckHealth()
	if status.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s", status.Status)
	}
	if status.Service != "agent" {
		t.Fatalf("unexpected service name %s", status.Service)
	}
}

func TestCheckHealth_UnhealthyWins(t *testing.T) {
	hc := NewHealthChecker("agent", "test")
	hc.AddCheck("ok", func() CheckResult {
		return CheckResult{Status: StatusHealthy}
	})
	hc.AddCheck("bad", func() CheckResult {
		return CheckResult{Status: StatusUnhealthy, Message: "down"}
	})

	status := hc.CheckHealth()
	if status.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %s", status.Status)
	}
}

func TestConfigurationHealthCheck(t *testing.T) {
	check := ConfigurationHealthCheck(map[string]string{"LLM_API_KEY": ""})
	if got := check(); got.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy for missing config, got %s", got.Status)
	}

	check = ConfigurationHealthCheck(map[string]string{"LLM_API_KEY": "set"})
	if got := check(); got.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s", got.Status)
	}
}

func TestHTTPServiceHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	check := HTTPServiceHealthCheck("ollama", srv.URL)
	if got := check(); got.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s: %s", got.Status, got.Message)
	}

	srv.Close()
	if got := check(); got.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy after shutdown, got %s", got.Status)
	}
}
