package llm

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider adapts any OpenAI-compatible chat backend to the Client
// interface. It lets the same pipeline run against local servers that speak
// the chat completions API instead of the hosted Gemini endpoint.
type OpenAIProvider struct {
	Inner *openai.Client
	Model string
}

// NewOpenAIProvider builds a provider for the given base URL, key and model.
// An empty base URL keeps the library default.
func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{Inner: openai.NewClientWithConfig(cfg), Model: model}
}

// Generate issues one chat completion with the prompt as the sole user
// message and returns the first choice's content.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.Inner == nil || strings.TrimSpace(p.Model) == "" {
		return "", errors.New("openai provider not configured")
	}
	resp, err := p.Inner.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.1,
		N:           1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
