// Package corpus drives the single-document pipeline over every recognized
// file in a directory and merges the per-document rankings into one
// consolidated view.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/rmaltez/docfreq/internal/freq"
	"github.com/rmaltez/docfreq/internal/source"
)

var (
	ErrDirectoryNotFound = errors.New("corpus directory not found")
	ErrNotADirectory     = errors.New("corpus path is not a directory")
)

// Document is the per-document summary the aggregator collects. Top carries
// the document's own top-N ranking; it is the only slice of the document's
// vocabulary that reaches the global tally.
type Document struct {
	Name         string
	Locator      string
	Language     string
	Backend      string
	Synthetic    bool
	TotalTokens  int
	UniqueTokens int
	// Density is unique/total as a percentage.
	Density float64
	Top     []freq.Entry
}

// Result is the consolidated outcome over all successfully analyzed
// documents. Built once, read-only afterwards.
type Result struct {
	Directory      string
	TotalDocuments int
	TotalTokens    int
	UniqueTokens   int
	Density        float64
	// Top is the global top-K ranking over the combined per-document
	// tallies, ties broken by order of first discovery.
	Top       []freq.Entry
	Documents []Document
}

// AnalyzeFunc runs the single-document pipeline for one local file. The
// aggregator only depends on this signature, not on the pipeline itself.
type AnalyzeFunc func(ctx context.Context, path string) (Document, error)

// Aggregator enumerates a directory and folds every document into a Result.
type Aggregator struct {
	Analyze AnalyzeFunc
	// TopPerDocument bounds each document's contribution to the global
	// tally: only a document's own top-N terms are merged, never its full
	// vocabulary. This keeps the merge cost flat per document.
	TopPerDocument int
	// TopGlobal is the length of the final combined ranking.
	TopGlobal int
}

// Run processes every recognized-extension file directly inside dir, in name
// order, one document fully to completion before the next. A document that
// fails to analyze is logged and excluded; it contributes nothing to any
// aggregate. A corpus where nothing succeeds is an empty Result, not an
// error.
func (a *Aggregator) Run(ctx context.Context, dir string) (*Result, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	result := &Result{Directory: dir}
	counts := map[string]int{}
	discovered := map[string]int{}
	var order []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), source.Extension) {
			continue
		}
		// Callers may abort between documents; a started document always
		// runs to completion.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := a.Analyze(ctx, path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("document analysis failed, skipping")
			continue
		}

		result.TotalDocuments++
		result.TotalTokens += doc.TotalTokens
		result.UniqueTokens += doc.UniqueTokens
		result.Documents = append(result.Documents, doc)

		for _, e := range doc.Top {
			if _, seen := counts[e.Token]; !seen {
				discovered[e.Token] = len(order)
				order = append(order, e.Token)
			}
			counts[e.Token] += e.Count
		}
		log.Info().Str("file", entry.Name()).Int("tokens", doc.TotalTokens).Msg("document aggregated")
	}

	if result.TotalTokens > 0 {
		result.Density = float64(result.UniqueTokens) / float64(result.TotalTokens) * 100
	}
	result.Top = topK(counts, discovered, order, a.TopGlobal)
	log.Info().Int("documents", result.TotalDocuments).Int("tokens", result.TotalTokens).
		Msg("corpus aggregation complete")
	return result, nil
}

func topK(counts map[string]int, discovered map[string]int, order []string, k int) []freq.Entry {
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(a, b int) bool {
		ca, cb := counts[ranked[a]], counts[ranked[b]]
		if ca != cb {
			return ca > cb
		}
		return discovered[ranked[a]] < discovered[ranked[b]]
	})
	if k < 1 {
		k = 1
	}
	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]freq.Entry, 0, k)
	for _, tok := range ranked[:k] {
		out = append(out, freq.Entry{Token: tok, Count: counts[tok]})
	}
	return out
}
