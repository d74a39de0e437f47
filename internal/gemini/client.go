// Package gemini wraps the Google GenAI SDK as the generation endpoint for
// the artifact pipeline. The client is constructed once per run and issues
// strictly sequential GenerateContent calls with the configured output bound
// and sampling temperature.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"eksgen/internal/config"
)

// Client calls the Gemini text-generation endpoint.
type Client struct {
	client          *genai.Client
	model           string
	maxOutputTokens int32
	temperature     float32
}

// New creates a Client from the Gemini section of the configuration.
// It fails when no API key is configured.
func New(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client:          client,
		model:           cfg.Model,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     cfg.Temperature,
	}, nil
}

// Generate sends a prompt and returns the raw response text. The response is
// untyped free text; extraction of the artifact body is the caller's job.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: c.maxOutputTokens,
		Temperature:     genai.Ptr(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	return text, nil
}

// Ping issues the connectivity-test prompt. A successful round trip verifies
// the API key, quota, and model name before the pipeline starts.
func (c *Client) Ping(ctx context.Context, prompt string) (string, error) {
	return c.Generate(ctx, prompt)
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Close releases the underlying client. The genai SDK client holds no
// resources that require explicit release, so this is a no-op.
func (c *Client) Close() error {
	return nil
}
