package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type TranscodeConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// TranscodeClient submits raw video bytes to the media-processing service,
// which stores an optimized mp4 rendition and reports its descriptor.
type TranscodeClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewTranscodeClient(cfg TranscodeConfig) *TranscodeClient {
	return &TranscodeClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    newHTTPClient(cfg.HTTPClient),
	}
}

type transcodeResponse struct {
	PublicID string  `json:"public_id"`
	Bytes    int64   `json:"bytes"`
	Duration float64 `json:"duration"`
}

func (c *TranscodeClient) Submit(ctx context.Context, data []byte, filename string) (*models.MediaDescriptor, error) {
	body, err := postFile(ctx, c.http, c.baseURL+"/v1/video/upload", c.apiKey, data, filename)
	if err != nil {
		return nil, fmt.Errorf("transcode submit: %w", err)
	}

	var resp transcodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("transcode response: %w", err)
	}
	if resp.PublicID == "" {
		return nil, fmt.Errorf("transcode response: missing public_id")
	}

	return &models.MediaDescriptor{
		ExternalID:      resp.PublicID,
		Bytes:           resp.Bytes,
		DurationSeconds: resp.Duration, // stays 0 when the service omits it
	}, nil
}
