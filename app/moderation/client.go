// Package moderation calls the OpenAI moderation API to screen post content.
package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Moderator returns whether free-text content is flagged by the moderation
// backend. Errors mean the check could not run at all.
type Moderator interface {
	Moderate(ctx context.Context, content string) (bool, error)
}

// Client is an HTTP Moderator backed by the OpenAI moderations endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// ClientConfig configures the moderation client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a moderation client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
	}
}

// Moderate submits content and reports the flagged verdict from the first
// moderation result.
func (c *Client) Moderate(ctx context.Context, content string) (bool, error) {
	if c.apiKey == "" {
		return false, errors.New("moderation API key not configured")
	}

	body, err := json.Marshal(map[string]string{"input": content})
	if err != nil {
		return false, fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/moderations", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("moderation request failed: %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return false, fmt.Errorf("failed to read moderation response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("moderation request failed with status %d", resp.StatusCode)
	}

	flagged := gjson.GetBytes(data, "results.0.flagged")
	if !flagged.Exists() {
		return false, errors.New("moderation response missing results")
	}
	return flagged.Bool(), nil
}
