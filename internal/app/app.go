package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/buildsight/bluebook/internal/analyze"
	"github.com/buildsight/bluebook/internal/llm"
	"github.com/buildsight/bluebook/internal/pdftext"
	"github.com/buildsight/bluebook/internal/report"
)

// ErrNoReply is returned when the model backend fails to produce any reply
// (transport error, bad status, malformed body). Per the exit code policy
// the CLI maps this to a nonzero exit.
var ErrNoReply = errors.New("failed to get a valid response from the model")

// ErrUnparsableReply is returned when the reply came back empty or blank so
// no analysis record could be built. Kept distinct from ErrNoReply so the
// two user-visible messages stay separate.
var ErrUnparsableReply = errors.New("could not parse the analysis results")

// App wires the three pipeline stages together for one run.
type App struct {
	cfg    Config
	client llm.Client
}

// New builds the model client for the configured provider. Config must have
// been validated already.
func New(cfg Config) (*App, error) {
	var client llm.Client
	switch cfg.Provider {
	case "", ProviderGemini:
		client = &llm.Gemini{
			BaseURL:    cfg.GeminiBaseURL,
			Model:      cfg.GeminiModel,
			APIKey:     cfg.GeminiAPIKey,
			HTTPClient: newHTTPClient(),
		}
	case ProviderOpenAI:
		client = llm.NewOpenAIProvider(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	return &App{cfg: cfg, client: client}, nil
}

// Run executes one analysis pass: extract text from every input, send the
// combined prompt to the model, parse the reply, render the result. Data
// flows strictly forward; nothing is kept between runs.
func (a *App) Run(ctx context.Context) error {
	docs, pages, err := pdftext.ExtractAll(a.cfg.Inputs)
	if err != nil {
		return fmt.Errorf("extract input: %w", err)
	}
	log.Info().Int("documents", len(docs)).Int("pages", len(pages)).Msg("extracted input text")

	prompt := analyze.BuildPrompt(docs)
	reply, err := a.client.Generate(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("model call failed")
		return ErrNoReply
	}

	res := analyze.Parse(reply, pages)
	if res == nil {
		return ErrUnparsableReply
	}
	log.Info().Int("trades", len(res.TradeNames)).Msg("parsed analysis result")

	out := report.Render(res)
	if a.cfg.OutputPath == "" || a.cfg.OutputPath == "-" {
		fmt.Print(out)
	} else {
		if err := os.WriteFile(a.cfg.OutputPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPath).Msg("wrote report")
	}
	if a.cfg.OutputPDFPath != "" {
		if err := report.WritePDF(res, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf output: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote PDF report")
	}
	return nil
}
