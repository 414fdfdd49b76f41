package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/clipforge/clipforge/internal/ingest/models"
)

type IdentityConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// IdentityClient resolves an external subject id to its profile at the
// identity provider, used once when an account is created on first sight.
type IdentityClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewIdentityClient(cfg IdentityConfig) *IdentityClient {
	return &IdentityClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    newHTTPClient(cfg.HTTPClient),
	}
}

type identityResponse struct {
	Email string `json:"email"`
}

func (c *IdentityClient) Lookup(ctx context.Context, externalID string) (*models.Identity, error) {
	endpoint := c.baseURL + "/v1/users/" + url.PathEscape(externalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity call: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("identity response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("identity status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var ir identityResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return nil, fmt.Errorf("identity response: %w", err)
	}

	return &models.Identity{ExternalID: externalID, Email: ir.Email}, nil
}
