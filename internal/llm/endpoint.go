package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Veraticus/po-classifier/internal/model"
)

// endpointClient posts the request to a dedicated classification service
// and hands back the response body untouched.
type endpointClient struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func newEndpointClient(cfg Config) (Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("classification endpoint is required")
	}

	return &endpointClient{
		httpClient: newHTTPClient(cfg.Timeout),
		url:        cfg.Endpoint,
		apiKey:     cfg.APIKey,
	}, nil
}

type endpointRequest struct {
	Description string `json:"description"`
	Supplier    string `json:"supplier"`
}

// Classify POSTs {"description","supplier"} and returns the body on any 2xx status.
func (c *endpointClient) Classify(ctx context.Context, req model.ClassificationRequest) (string, error) {
	jsonBody, err := json.Marshal(endpointRequest{
		Description: req.Description,
		Supplier:    req.Supplier,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", collaboratorError("http", 0, "request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", collaboratorError("http", resp.StatusCode, "failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", collaboratorError("http", resp.StatusCode, "service error: %s", string(body))
	}

	return string(body), nil
}
