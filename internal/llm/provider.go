package llm

import "context"

// Client is the minimal interface the pipeline needs to obtain a free-text
// reply for a prompt. It is deliberately a single method so that tests and
// alternate backends (a hosted Gemini endpoint, any OpenAI-compatible local
// server) can stand in for one another.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
