// Package httpapi exposes the detector over HTTP: request binding and
// struct validation via go-playground/validator/v10, responses shaped by
// internal/platform/net/http's envelope, grounded on the teacher's
// internal/services/api handler layout.
package httpapi

import (
	"net/http"
	"time"

	"github.com/rogierslag/lingua"
	"github.com/rogierslag/lingua/internal/core/version"
	perr "github.com/rogierslag/lingua/internal/platform/errors"
	phttp "github.com/rogierslag/lingua/internal/platform/net/http"
)

// Register mounts every lingua-api route on r.
func Register(r phttp.Router, startedAt time.Time) {
	h := &handlers{startedAt: startedAt}

	phttp.PostJSON(r, "/v1/detect", h.detect)
	phttp.PostJSON(r, "/v1/confidence", h.confidence)
	r.Get("/v1/health", phttp.Handle(h.health))
	r.Get("/v1/version", phttp.Handle(h.version))
}

type handlers struct {
	startedAt time.Time
}

// DetectRequest is the body of POST /v1/detect and /v1/confidence.
// swagger:model
type DetectRequest struct {
	// Text to classify. Required, non-empty after trimming.
	Text string `json:"text" validate:"required"`
	// Languages restricts the active set to these ISO 639-1 or 639-3
	// codes. Omit or leave empty to consider every supported language.
	Languages []string `json:"languages,omitempty"`
	// MinimumRelativeDistance is the minimum gap the top two confidence
	// values must clear before a verdict is returned instead of UNKNOWN.
	MinimumRelativeDistance float64 `json:"minimum_relative_distance,omitempty" validate:"gte=0,lt=0.99"`
	// LowAccuracyMode restricts statistical scoring to trigrams.
	LowAccuracyMode bool `json:"low_accuracy_mode,omitempty"`
}

// DetectResponse is the body of a successful POST /v1/detect.
// swagger:model
type DetectResponse struct {
	Language string `json:"language" example:"ENGLISH"`
}

// ConfidenceEntry is one ranked candidate in a ConfidenceResponse.
// swagger:model
type ConfidenceEntry struct {
	Language string  `json:"language" example:"ENGLISH"`
	Value    float64 `json:"value" example:"1"`
}

// ConfidenceResponse is the body of a successful POST /v1/confidence.
// swagger:model
type ConfidenceResponse struct {
	Confidences []ConfidenceEntry `json:"confidences"`
}

// HealthResponse is the body of GET /v1/health.
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok" example:"true"`
	Started string `json:"started" example:"2026-08-01T00:00:00Z"`
	Now     string `json:"now" example:"2026-08-01T00:05:00Z"`
}

func resolveLanguages(codes []string) ([]lingua.Language, error) {
	langs := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		if l, ok := lingua.LanguageFromISOCode639_1(code); ok {
			langs = append(langs, l)
			continue
		}
		if l, ok := lingua.LanguageFromISOCode639_3(code); ok {
			langs = append(langs, l)
			continue
		}
		return nil, invalidLanguageCode(code)
	}
	return langs, nil
}

// swagger:route POST /v1/detect Detect detectLanguage
// @Summary Detect the most likely language of a piece of text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body DetectRequest true "text and options"
// @Success 200 {object} DetectResponse
// @Router /v1/detect [post]
func (h *handlers) detect(_ *http.Request, req DetectRequest) (any, error) {
	d, err := buildWithAccuracy(req)
	if err != nil {
		return nil, err
	}
	return DetectResponse{Language: d.DetectLanguageOf(req.Text).String()}, nil
}

// swagger:route POST /v1/confidence Detect confidenceValues
// @Summary Rank every active language by confidence for a piece of text
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body DetectRequest true "text and options"
// @Success 200 {object} ConfidenceResponse
// @Router /v1/confidence [post]
func (h *handlers) confidence(_ *http.Request, req DetectRequest) (any, error) {
	d, err := buildWithAccuracy(req)
	if err != nil {
		return nil, err
	}
	ranking := d.ComputeLanguageConfidenceValues(req.Text)
	entries := make([]ConfidenceEntry, len(ranking))
	for i, c := range ranking {
		entries[i] = ConfidenceEntry{Language: c.Language.String(), Value: c.Value}
	}
	return ConfidenceResponse{Confidences: entries}, nil
}

func buildWithAccuracy(req DetectRequest) (*lingua.Detector, error) {
	b := lingua.NewBuilderFromAllLanguages()
	if len(req.Languages) > 0 {
		langs, err := resolveLanguages(req.Languages)
		if err != nil {
			return nil, err
		}
		b = lingua.NewBuilder(langs...)
	}
	b = b.WithMinimumRelativeDistance(req.MinimumRelativeDistance)
	if req.LowAccuracyMode {
		b = b.WithLowAccuracyMode()
	}
	return b.Build()
}

// swagger:route GET /v1/health Detect health
// @Summary Liveness probe
// @Tags Detect
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/health [get]
func (h *handlers) health(_ *http.Request) phttp.Response {
	return phttp.OK(HealthResponse{
		OK:      true,
		Started: h.startedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	})
}

// swagger:route GET /v1/version Detect version
// @Summary Build and version info
// @Tags Detect
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /v1/version [get]
func (h *handlers) version(_ *http.Request) phttp.Response {
	return phttp.OK(version.Info())
}

func invalidLanguageCode(code string) error {
	return perr.InvalidArgf("unrecognized language code %q", code)
}
