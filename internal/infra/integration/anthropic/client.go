package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"

	// Haiku keeps the widget cheap.
	defaultModel = "claude-3-haiku-20240307"
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   defaultModel,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateMessage runs one completion and returns the first text block.
func (c *Client) CreateMessage(ctx context.Context, input CreateMessageInput) (*MessageOutput, error) {
	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	payload := createMessageRequest{
		Model:       c.model,
		MaxTokens:   input.MaxTokens,
		System:      input.System,
		Temperature: input.Temperature,
		Messages:    input.Messages,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("anthropic completion failed (status %d): %s", resp.StatusCode, string(body))
	}

	var response createMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode anthropic response: %w", err)
	}

	if len(response.Content) == 0 {
		return nil, fmt.Errorf("anthropic returned no content blocks")
	}

	return &MessageOutput{
		Text:  response.Content[0].Text,
		Usage: response.Usage,
	}, nil
}
