package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type TranscriptionConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// TranscriptionClient sends raw bytes to the speech-to-text service and
// gets back a plain transcript plus a WebVTT rendering.
type TranscriptionClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewTranscriptionClient(cfg TranscriptionConfig) *TranscriptionClient {
	return &TranscriptionClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    newHTTPClient(cfg.HTTPClient),
	}
}

type transcriptionResponse struct {
	Transcript string `json:"transcript"`
	Subtitles  string `json:"subtitles"`
}

func (c *TranscriptionClient) Transcribe(ctx context.Context, data []byte, filename string) (*models.Transcription, error) {
	body, err := postFile(ctx, c.http, c.baseURL+"/v1/transcribe", c.apiKey, data, filename)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	var resp transcriptionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("transcribe response: %w", err)
	}
	if resp.Subtitles == "" {
		return nil, fmt.Errorf("transcribe response: empty subtitles")
	}

	return &models.Transcription{
		Transcript:   resp.Transcript,
		SubtitleText: resp.Subtitles,
	}, nil
}
