package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rmaltez/docfreq/internal/app"
	"github.com/rmaltez/docfreq/internal/corpus"
	"github.com/rmaltez/docfreq/internal/export"
	"github.com/rmaltez/docfreq/internal/source"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		dir        string
		language   string
		topN       int
		topGlobal  int
		stopWords  string
		outText    string
		outPDF     string
		outXLSX    string
		llmBaseURL string
		llmModel   string
		llmKey     string
		prompt     string
		configPath string
		verbose    bool
	)

	flag.StringVar(&dir, "dir", "", "Analyze every PDF directly inside this directory instead of a single source")
	flag.StringVar(&language, "lang", "", "Force a stop-word language (portugues, ingles, espanhol); empty detects")
	flag.IntVar(&topN, "top", app.DefaultTopN, "Per-document ranking size")
	flag.IntVar(&topGlobal, "top.global", app.DefaultTopGlobal, "Corpus-wide ranking size (also bounds each document's contribution)")
	flag.StringVar(&stopWords, "stopwords", app.DefaultStopWordsPath, "Path to the JSON stop-word store (created with defaults when missing)")
	flag.StringVar(&outText, "out.text", "", "Write the text report to this path as well as stdout")
	flag.StringVar(&outPDF, "out.pdf", "", "Render the report as a PDF at this path")
	flag.StringVar(&outXLSX, "out.xlsx", "", "Write the frequency spreadsheet to this path")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", "", "Model name for prompt analysis")
	flag.StringVar(&llmKey, "llm.key", "", "API key for prompt analysis (or set OPENAI_API_KEY)")
	flag.StringVar(&prompt, "prompt", "", "Optional prompt: send the extracted content to the model and append its answer to the report")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file; flags take precedence")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <pdf path or URL>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		Source:        flag.Arg(0),
		Dir:           dir,
		Language:      language,
		TopN:          topN,
		TopGlobal:     topGlobal,
		StopWordsPath: stopWords,
		OutputText:    outText,
		OutputPDF:     outPDF,
		OutputXLSX:    outXLSX,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		Prompt:        prompt,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 for the analysis-level failures callers are
		// expected to branch on, 1 for everything else.
		if errors.Is(err, source.ErrInvalidSource) ||
			errors.Is(err, corpus.ErrDirectoryNotFound) ||
			errors.Is(err, corpus.ErrNotADirectory) ||
			errors.Is(err, export.ErrEmptyCorpus) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
