package deps

import (
	"context"
)

// Turn is one message of a conversation sent to the model
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// GenerationConfig holds the sampling parameters sent with every request
type GenerationConfig struct {
	Temperature      float32
	TopP             float32
	TopK             float32
	MaxOutputTokens  int32
	ResponseMIMEType string
}

// LLMClient abstracts the chat call to the text generation service.
// It sends history followed by message and returns the reply text.
type LLMClient interface {
	Chat(ctx context.Context, history []Turn, message string, config GenerationConfig) (string, error)
}
