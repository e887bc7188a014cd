package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/buildsight/bluebook/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		outputPath    string
		outputPDFPath string
		configPath    string
		provider      string
		geminiKey     string
		geminiModel   string
		geminiBase    string
		llmBase       string
		llmModel      string
		llmKey        string
		verbose       bool
	)

	flag.StringVar(&outputPath, "out", "-", "Path to write the plain-text report; '-' writes to stdout")
	flag.StringVar(&outputPDFPath, "out.pdf", "", "Optional path to additionally write the report as a PDF")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&provider, "llm.provider", "", "Model backend: gemini (default) or openai")
	flag.StringVar(&geminiKey, "gemini.key", "", "Gemini API key (or set GEMINI_API_KEY)")
	flag.StringVar(&geminiModel, "gemini.model", "", "Gemini model name")
	flag.StringVar(&geminiBase, "gemini.base", "", "Gemini API base URL override")
	flag.StringVar(&llmBase, "llm.base", "", "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", "", "Model name for the OpenAI-compatible backend")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible backend")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] file.pdf [file2.pdf ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		Inputs:        flag.Args(),
		OutputPath:    outputPath,
		OutputPDFPath: outputPDFPath,
		Provider:      provider,
		GeminiAPIKey:  geminiKey,
		GeminiModel:   geminiModel,
		GeminiBaseURL: geminiBase,
		LLMBaseURL:    llmBase,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		Verbose:       verbose,
	}

	// Precedence: flags > env > config file.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config failed")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 when the model produced no usable reply or the
		// reply could not be parsed, 1 for everything else (bad inputs).
		if errors.Is(err, app.ErrNoReply) || errors.Is(err, app.ErrUnparsableReply) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(context.Background())
}
