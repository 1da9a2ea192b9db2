package llm

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the minimal chat interface the judge needs. It mirrors
// CreateChatCompletion so any OpenAI-compatible server (or a test double)
// can back the evaluator.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to Client.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

// New builds a provider for an OpenAI-compatible endpoint. BaseURL may be
// empty for the public API. Returns nil when no API key is configured,
// which callers treat as "judgment capability absent".
func New(baseURL, apiKey string) *OpenAIProvider {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg)}
}
