package app

import "github.com/rmaltez/docfreq/internal/stopwords"

// Config holds runtime configuration for the application.
type Config struct {
	// Source is a single document locator: a local PDF path or a web URL.
	Source string
	// Dir switches to corpus mode: every .pdf directly inside it is analyzed.
	Dir string

	// Language forces a stop-word language instead of detecting one.
	Language string
	// TopN is the per-document ranking size.
	TopN int
	// TopGlobal is the corpus-wide ranking size.
	TopGlobal int

	// StopWordsPath is the JSON stop-word store location.
	StopWordsPath string

	// Outputs. Empty paths disable the corresponding writer; the text
	// report always goes to stdout.
	OutputText string
	OutputPDF  string
	OutputXLSX string

	// LLM analysis (optional; runs only when Prompt is set)
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	Prompt     string

	Verbose bool
}

// DefaultTopN matches the original report's ranking size.
const DefaultTopN = 25

// DefaultTopGlobal bounds both the per-document contribution to the corpus
// tally and the corpus-wide ranking length.
const DefaultTopGlobal = 20

// DefaultStopWordsPath is where the stop-word store lives unless configured.
const DefaultStopWordsPath = stopwords.DefaultFile
