package gemini

import (
	"context"
	"net/http"
	"time"
)

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent runs one generateContent call. A non-200 answer is an *APIError.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg and builds a client. Timeout is used only when no HTTPClient is given.
func New(cfg Config) (IGemini, error) {
	if cfg.HTTPClient == nil && cfg.Timeout != "" {
		if d, err := time.ParseDuration(cfg.Timeout); err == nil && d > 0 {
			cfg.HTTPClient = &http.Client{Timeout: d}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
