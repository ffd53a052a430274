package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohouse/internal/config"
	"github.com/alexiusacademia/gohouse/internal/logger"
	"github.com/alexiusacademia/gohouse/internal/presets"
)

func newTestServer() *Server {
	cfg := config.Default()
	cfg.RateLimit = 1000
	cfg.RateBurst = 1000
	return NewServer(cfg)
}

func do(t *testing.T, s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestSizes(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/api/v1/sizes", "")
	var all []presets.SizeOptions
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 roof types, got %d", len(all))
	}

	rec = do(t, s, http.MethodGet, "/api/v1/sizes?roof_type=gable", "")
	var one presets.SizeOptions
	if err := json.Unmarshal(rec.Body.Bytes(), &one); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if one.RoofType != "double" || len(one.Widths) != 8 {
		t.Errorf("unexpected sizes: %+v", one)
	}

	rec = do(t, s, http.MethodGet, "/api/v1/sizes?roof_type=dome", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown roof type, got %d", rec.Code)
	}
}

func TestCalculate(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/calculate",
		`{"width": 8, "length": 10, "roof_type": "multi", "has_overhang": true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(resp.Result.Slopes) != 2 || resp.Result.Slopes[0].Width != 5 || resp.Result.Slopes[1].Width != 3 {
		t.Errorf("unexpected slopes: %+v", resp.Result.Slopes)
	}
	if resp.Result.Totals.Floor != 80 {
		t.Errorf("expected floor 80, got %v", resp.Result.Totals.Floor)
	}
	if !resp.Standard {
		t.Error("8x10 multi-level is a catalogue size")
	}
}

func TestCalculateKeepsNegativeEave(t *testing.T) {
	var logs bytes.Buffer
	logger.Setup("text", &logs)
	defer logger.Setup("text", os.Stderr)

	rec := do(t, newTestServer(), http.MethodPost, "/api/v1/calculate",
		`{"width": 40, "length": 10, "roof_type": "gable"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp CalculateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	for i, s := range resp.Result.Slopes {
		if math.Abs(s.MinHeight-(-0.6)) > 1e-9 {
			t.Errorf("slope %d: expected min height -0.6, got %v", i+1, s.MinHeight)
		}
	}
	if resp.Standard {
		t.Error("40 m gable is not a catalogue size")
	}
	if !strings.Contains(logs.String(), "non-positive eave height") {
		t.Errorf("expected eave warning in logs, got:\n%s", logs.String())
	}
}

func TestCalculateInvalid(t *testing.T) {
	s := newTestServer()
	bodies := []string{
		`{"width": 0, "length": 5, "roof_type": "single"}`,
		`{"width": 5, "length": 5, "roof_type": "unknown"}`,
		`{"width": "wide"}`,
		`{"width": 5, "length": 5, "roof_type": "single", "color": "red"}`,
	}
	for _, body := range bodies {
		rec := do(t, s, http.MethodPost, "/api/v1/calculate", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("%s: expected error body, got %s", body, rec.Body.String())
		}
	}
}

func TestReports(t *testing.T) {
	s := newTestServer()
	body := `{"name": "Village", "buildings": [{"name": "A", "width": 6, "length": 8, "roof_type": "single"}]}`

	rec := do(t, s, http.MethodPost, "/api/v1/report.pdf", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("pdf: expected PDF body")
	}
	if rec.Header().Get("X-Report-ID") == "" {
		t.Error("pdf: expected report ID header")
	}

	rec = do(t, s, http.MethodPost, "/api/v1/report.xlsx", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("xlsx: expected 200, got %d", rec.Code)
	}
	// xlsx is a zip archive
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("xlsx: expected zip body")
	}

	rec = do(t, s, http.MethodPost, "/api/v1/report.pdf", `{"buildings": []}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty project, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 1
	s := NewServer(cfg)

	body := `{"width": 6, "length": 8, "roof_type": "single"}`
	if rec := do(t, s, http.MethodPost, "/api/v1/calculate", body); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}
	if rec := do(t, s, http.MethodPost, "/api/v1/calculate", body); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", rec.Code)
	}
	// Health is not rate limited
	if rec := do(t, s, http.MethodGet, "/api/v1/health", ""); rec.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", rec.Code)
	}
}
