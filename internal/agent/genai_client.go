package agent

import (
	"context"
	"fmt"
	"strings"

	"bibliomate/internal/agent/deps"

	"google.golang.org/genai"
)

// GeminiLLMClient implements deps.LLMClient using the Gemini API
type GeminiLLMClient struct {
	client *genai.Client
	model  string
}

// NewGeminiLLMClient creates a new GeminiLLMClient
func NewGeminiLLMClient(client *genai.Client, model string) *GeminiLLMClient {
	return &GeminiLLMClient{
		client: client,
		model:  model,
	}
}

// NewGenaiClient creates a Gemini API client. baseURL overrides the API
// endpoint and is empty in production.
func NewGenaiClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

// Chat sends history plus message in a single GenerateContent call.
func (c *GeminiLLMClient) Chat(ctx context.Context, history []deps.Turn, message string, gen deps.GenerationConfig) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(gen.Temperature),
		TopP:             genai.Ptr(gen.TopP),
		TopK:             genai.Ptr(gen.TopK),
		MaxOutputTokens:  gen.MaxOutputTokens,
		ResponseMIMEType: gen.ResponseMIMEType,
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		contents = append(contents, &genai.Content{
			Role:  turn.Role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: message}},
	})

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", err
	}

	// Concatenate text parts of the first candidate
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
