package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rogierslag/lingua/internal/httpapi"
	phttp "github.com/rogierslag/lingua/internal/platform/net/http"
)

func newTestRouter() phttp.Router {
	r := phttp.AdaptChi(chi.NewMux())
	httpapi.Register(r, time.Unix(0, 0).UTC())
	return r
}

func postJSON(t *testing.T, r phttp.Router, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	return rec
}

func TestDetectReturnsLanguage(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	rec := postJSON(t, r, "/v1/detect", httpapi.DetectRequest{
		Text: "Ein Sonnenstrahl durchflutete das Fenster.",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %#v", env.Data)
	}
	if data["language"] == "" || data["language"] == nil {
		t.Fatalf("expected a non-empty language, got %#v", data["language"])
	}
}

func TestDetectRejectsEmptyText(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	rec := postJSON(t, r, "/v1/detect", httpapi.DetectRequest{Text: ""})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestDetectRejectsUnknownLanguageCode(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	rec := postJSON(t, r, "/v1/detect", httpapi.DetectRequest{
		Text:      "hello",
		Languages: []string{"not-a-real-code"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d; body = %s", rec.Code, http.StatusUnprocessableEntity, rec.Body.String())
	}
}

func TestConfidenceRanksEveryActiveLanguage(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	rec := postJSON(t, r, "/v1/confidence", httpapi.DetectRequest{
		Text:      "Das ist ein Satz in deutscher Sprache.",
		Languages: []string{"en", "de", "fr"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %#v", env.Data)
	}
	confidences, ok := data["confidences"].([]any)
	if !ok || len(confidences) != 3 {
		t.Fatalf("expected 3 ranked confidences, got %#v", data["confidences"])
	}
}

func TestHealthReportsStartedAndNow(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["ok"] != true {
		t.Fatalf("expected ok=true, got %#v", env.Data)
	}
}

func TestVersionReportsBuildInfo(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/v1/version", nil)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, ok := env.Data.(map[string]any)
	if !ok || data["service"] != "lingua" {
		t.Fatalf("expected service=lingua, got %#v", env.Data)
	}
}
