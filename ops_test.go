package sundowner

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newOpsTestApp() *App {
	return &App{
		Config:     SiteConfig{OpsKey: "correct-horse-battery"},
		Echo:       echo.New(),
		keyLimiter: NewKeyLimiter(3, time.Minute),
	}
}

// opsProbe sends a request through requireOpsKey with a trivial next
// handler and returns the recorded response.
func opsProbe(t *testing.T, a *App, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)

	handler := a.requireOpsKey(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestRequireOpsKeyAcceptsHeader(t *testing.T) {
	a := newOpsTestApp()
	rec := opsProbe(t, a, "/ops/api/subscribers", map[string]string{"X-Ops-Key": "correct-horse-battery"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid header key, got %d", rec.Code)
	}
}

func TestRequireOpsKeyAcceptsQueryParam(t *testing.T) {
	a := newOpsTestApp()
	rec := opsProbe(t, a, "/ops/export.csv?key=correct-horse-battery", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid query key, got %d", rec.Code)
	}
}

func TestRequireOpsKeyRejectsMissingKey(t *testing.T) {
	a := newOpsTestApp()
	rec := opsProbe(t, a, "/ops/api/subscribers", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ops key required") {
		t.Fatalf("expected missing-key error, got %q", rec.Body.String())
	}
}

func TestRequireOpsKeyRejectsWrongKey(t *testing.T) {
	a := newOpsTestApp()
	rec := opsProbe(t, a, "/ops/api/subscribers", map[string]string{"X-Ops-Key": "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong key, got %d", rec.Code)
	}
}

func TestRequireOpsKeyLimitsFailedAttempts(t *testing.T) {
	a := newOpsTestApp()
	for i := 0; i < 3; i++ {
		rec := opsProbe(t, a, "/ops/api/subscribers", map[string]string{"X-Ops-Key": "wrong"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, rec.Code)
		}
	}

	// Once the IP is over the limit even the correct key is refused.
	rec := opsProbe(t, a, "/ops/api/subscribers", map[string]string{"X-Ops-Key": "correct-horse-battery"})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after repeated failures, got %d", rec.Code)
	}

	rec = opsProbe(t, a, "/ops/api/subscribers", map[string]string{
		"X-Ops-Key": "correct-horse-battery",
		"X-Real-Ip": "203.0.113.77",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected a different ip to pass, got %d", rec.Code)
	}
}

func TestRequireOpsKeyMissingKeyIsNotAFailedAttempt(t *testing.T) {
	a := newOpsTestApp()
	for i := 0; i < 10; i++ {
		opsProbe(t, a, "/ops/api/subscribers", nil)
	}
	rec := opsProbe(t, a, "/ops/api/subscribers", map[string]string{"X-Ops-Key": "correct-horse-battery"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after keyless probes, got %d", rec.Code)
	}
}

func TestCheckOpsKeyExactMatchOnly(t *testing.T) {
	a := newOpsTestApp()
	cases := []struct {
		candidate string
		want      bool
	}{
		{"correct-horse-battery", true},
		{"correct-horse", false},
		{"correct-horse-battery-staple", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := a.checkOpsKey(tc.candidate); got != tc.want {
			t.Fatalf("checkOpsKey(%q) = %v, want %v", tc.candidate, got, tc.want)
		}
	}
}
