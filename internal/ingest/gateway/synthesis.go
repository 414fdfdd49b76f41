package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type SynthesisConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// SynthesisClient asks the text-generation service for platform-ready copy
// built from a transcript. It keeps no state, so retrying is always safe.
type SynthesisClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewSynthesisClient(cfg SynthesisConfig) *SynthesisClient {
	return &SynthesisClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    newHTTPClient(cfg.HTTPClient),
	}
}

type synthesisRequest struct {
	Platform string `json:"platform"`
	Captions string `json:"captions"`
}

func (c *SynthesisClient) Synthesize(ctx context.Context, platform models.Platform, transcript string) (string, error) {
	payload, err := json.Marshal(synthesisRequest{
		Platform: string(platform),
		Captions: transcript,
	})
	if err != nil {
		return "", fmt.Errorf("synthesis payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("synthesis call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("synthesis response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("synthesis status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	// The service answers with the generated text itself.
	return string(body), nil
}
