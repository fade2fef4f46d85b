// Package app wires the analysis pipeline together: source classification,
// extraction, language detection, tokenization, frequency ranking and the
// report/export surfaces.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/rmaltez/docfreq/internal/corpus"
	"github.com/rmaltez/docfreq/internal/export"
	"github.com/rmaltez/docfreq/internal/extract"
	"github.com/rmaltez/docfreq/internal/fetch"
	"github.com/rmaltez/docfreq/internal/freq"
	"github.com/rmaltez/docfreq/internal/lang"
	"github.com/rmaltez/docfreq/internal/llm"
	"github.com/rmaltez/docfreq/internal/report"
	"github.com/rmaltez/docfreq/internal/source"
	"github.com/rmaltez/docfreq/internal/stopwords"
	"github.com/rmaltez/docfreq/internal/token"
)

// Analyzer runs the single-document pipeline. One Analyzer is safe to reuse
// across documents; the extraction chains hold no per-document state.
type Analyzer struct {
	cfg      Config
	stops    *stopwords.Store
	pdfChain *extract.Chain
	webChain *extract.Chain
	advisor  *llm.Advisor
}

// Analysis is the outcome of one document run.
type Analysis struct {
	Source    source.Source
	Info      source.Info
	Language  string
	Backend   string
	Synthetic bool
	Content   string
	Tokens    []string
	Counts    freq.Table
	Ranking   []freq.Entry
}

// TotalTokens counts every kept token, repeats included.
func (a *Analysis) TotalTokens() int { return len(a.Tokens) }

// UniqueTokens counts distinct kept tokens.
func (a *Analysis) UniqueTokens() int { return len(a.Counts) }

// Density is unique/total as a percentage; zero for an empty document.
func (a *Analysis) Density() float64 {
	if len(a.Tokens) == 0 {
		return 0
	}
	return float64(len(a.Counts)) / float64(len(a.Tokens)) * 100
}

// New builds an Analyzer from cfg: it loads (or seeds) the stop-word store
// and assembles the extraction chains. The LLM client is only constructed
// when an API key is configured.
func New(cfg Config) (*Analyzer, error) {
	if cfg.TopN < 1 {
		cfg.TopN = DefaultTopN
	}
	if cfg.TopGlobal < 1 {
		cfg.TopGlobal = DefaultTopGlobal
	}
	path := cfg.StopWordsPath
	if path == "" {
		path = DefaultStopWordsPath
	}
	stops, err := stopwords.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}

	a := &Analyzer{
		cfg:      cfg,
		stops:    stops,
		pdfChain: extract.NewPDFChain(),
		webChain: extract.NewWebChain(&fetch.Client{}),
	}

	if strings.TrimSpace(cfg.LLMAPIKey) != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		client := openai.NewClientWithConfig(transportCfg)
		a.advisor = &llm.Advisor{Client: &llm.OpenAIProvider{Inner: client}, Model: cfg.LLMModel}
	}
	return a, nil
}

// Analyze runs the whole pipeline for one locator: classify, collect
// metadata, extract content, settle the language, tokenize and rank.
// Extraction never fails outright (the chain falls back to placeholder
// content), so errors here mean an invalid source.
func (a *Analyzer) Analyze(ctx context.Context, locator string) (*Analysis, error) {
	src, err := source.Classify(locator)
	if err != nil {
		return nil, err
	}
	chain := a.pdfChain
	if src.Kind == source.KindWeb {
		chain = a.webChain
	}

	info := chain.Metadata(ctx, src)
	content := chain.Content(ctx, src)

	language := a.cfg.Language
	if language == "" {
		language = lang.Detect(content.Text)
	}

	tokens := token.Tokenize(content.Text, a.stops.Words(language))
	counts := freq.Count(tokens)
	ranking, err := freq.Rank(tokens, a.cfg.TopN)
	if err != nil {
		// Placeholder fallback guarantees content, so an empty ranking
		// means the stop-word set swallowed everything. Report it empty.
		log.Warn().Str("source", locator).Msg("no tokens survived filtering")
		ranking = nil
	}

	res := &Analysis{
		Source:    src,
		Info:      info,
		Language:  language,
		Backend:   content.Backend,
		Synthetic: content.Synthetic,
		Content:   content.Text,
		Tokens:    tokens,
		Counts:    counts,
		Ranking:   ranking,
	}
	log.Info().
		Str("source", locator).
		Str("kind", string(src.Kind)).
		Str("language", language).
		Str("backend", content.Backend).
		Int("tokens", len(tokens)).
		Msg("document analyzed")
	return res, nil
}

// AnalyzeWithModel sends the extracted content to the configured chat model
// with the user's prompt.
func (a *Analyzer) AnalyzeWithModel(ctx context.Context, an *Analysis, prompt string) (string, error) {
	if a.advisor == nil {
		return "", fmt.Errorf("llm analysis requested but no API key configured")
	}
	return a.advisor.Analyze(ctx, prompt, string(an.Source.Kind), an.Content)
}

// document folds an Analysis into the per-document summary the corpus
// aggregator merges. Only the document's own top ranking travels onward.
func (a *Analysis) document() corpus.Document {
	return corpus.Document{
		Name:         filepath.Base(a.Source.Locator),
		Locator:      a.Source.Locator,
		Language:     a.Language,
		Backend:      a.Backend,
		Synthetic:    a.Synthetic,
		TotalTokens:  a.TotalTokens(),
		UniqueTokens: a.UniqueTokens(),
		Density:      a.Density(),
		Top:          a.Ranking,
	}
}

// RunCorpus analyzes every PDF directly inside dir and aggregates.
func (a *Analyzer) RunCorpus(ctx context.Context, dir string) (*corpus.Result, error) {
	agg := &corpus.Aggregator{
		Analyze: func(ctx context.Context, path string) (corpus.Document, error) {
			an, err := a.Analyze(ctx, path)
			if err != nil {
				return corpus.Document{}, err
			}
			return an.document(), nil
		},
		TopPerDocument: a.cfg.TopN,
		TopGlobal:      a.cfg.TopGlobal,
	}
	return agg.Run(ctx, dir)
}

// Run is the top-level entry: it executes single-source or corpus mode per
// cfg, writes the text report to out and produces the optional file outputs.
// The returned error decides the process exit code.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	analyzer, err := New(cfg)
	if err != nil {
		return err
	}
	cfg = analyzer.cfg
	if cfg.Dir != "" {
		return runCorpus(ctx, analyzer, cfg, out)
	}
	return runSingle(ctx, analyzer, cfg, out)
}

func runSingle(ctx context.Context, analyzer *Analyzer, cfg Config, out io.Writer) error {
	an, err := analyzer.Analyze(ctx, cfg.Source)
	if err != nil {
		return err
	}

	text := report.Document(report.DocumentData{
		Info:         an.Info,
		Language:     an.Language,
		Backend:      an.Backend,
		Synthetic:    an.Synthetic,
		ContentChars: len(an.Content),
		TotalTokens:  an.TotalTokens(),
		UniqueTokens: an.UniqueTokens(),
		Density:      an.Density(),
		Ranking:      an.Ranking,
	})

	if strings.TrimSpace(cfg.Prompt) != "" {
		answer, err := analyzer.AnalyzeWithModel(ctx, an, cfg.Prompt)
		if err != nil {
			log.Error().Err(err).Msg("model analysis failed")
		} else {
			text += "\nMODEL ANALYSIS:\n" + answer + "\n"
		}
	}

	if err := writeOutputs(text, cfg); err != nil {
		return err
	}
	if cfg.OutputXLSX != "" {
		res := singleResult(an)
		if err := writeXLSX(res, cfg); err != nil {
			return err
		}
	}
	_, err = io.WriteString(out, text)
	return err
}

func runCorpus(ctx context.Context, analyzer *Analyzer, cfg Config, out io.Writer) error {
	res, err := analyzer.RunCorpus(ctx, cfg.Dir)
	if err != nil {
		return err
	}

	text := report.Corpus(res)
	if err := writeOutputs(text, cfg); err != nil {
		return err
	}
	if _, err := io.WriteString(out, text); err != nil {
		return err
	}
	if res.TotalDocuments == 0 {
		return export.ErrEmptyCorpus
	}
	if cfg.OutputXLSX != "" {
		if err := writeXLSX(res, cfg); err != nil {
			return err
		}
	}
	return nil
}

// singleResult projects one analysis into a one-document corpus result so
// the spreadsheet export works in both modes.
func singleResult(an *Analysis) *corpus.Result {
	doc := an.document()
	return &corpus.Result{
		Directory:      filepath.Dir(an.Source.Locator),
		TotalDocuments: 1,
		TotalTokens:    doc.TotalTokens,
		UniqueTokens:   doc.UniqueTokens,
		Density:        doc.Density,
		Top:            doc.Top,
		Documents:      []corpus.Document{doc},
	}
}

func writeOutputs(text string, cfg Config) error {
	if cfg.OutputText != "" {
		if err := os.WriteFile(cfg.OutputText, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("path", cfg.OutputText).Msg("text report written")
	}
	if cfg.OutputPDF != "" {
		if err := report.WritePDF(text, cfg.OutputPDF); err != nil {
			return fmt.Errorf("write pdf report: %w", err)
		}
		log.Info().Str("path", cfg.OutputPDF).Msg("pdf report written")
	}
	return nil
}

func writeXLSX(res *corpus.Result, cfg Config) error {
	table := export.BuildTable(res, cfg.TopGlobal)
	summary := []export.KV{
		{Key: "Directory", Value: res.Directory},
		{Key: "Documents analyzed", Value: res.TotalDocuments},
		{Key: "Total tokens", Value: res.TotalTokens},
		{Key: "Unique tokens", Value: res.UniqueTokens},
		{Key: "Vocabulary density %", Value: res.Density},
	}
	if err := export.WriteXLSX(table, summary, cfg.OutputXLSX); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	log.Info().Str("path", cfg.OutputXLSX).Msg("spreadsheet written")
	return nil
}
