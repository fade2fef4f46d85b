// Package freq counts token occurrences and produces the ranked term lists
// the reports and the corpus aggregation are built from.
package freq

import (
	"errors"
	"sort"
)

// ErrEmptyInput reports a ranking request over an empty token stream.
var ErrEmptyInput = errors.New("no tokens to rank")

// Entry is one ranked term.
type Entry struct {
	Token string
	Count int
}

// Table maps token -> occurrence count for one document.
type Table map[string]int

// Count builds the exact frequency table for a token stream.
func Count(tokens []string) Table {
	t := make(Table, len(tokens))
	for _, tok := range tokens {
		t[tok]++
	}
	return t
}

// Rank returns up to topN entries ordered by descending count. Equal counts
// keep the order in which the tokens first appeared in the stream, so ranking
// the same stream twice yields the same list.
func Rank(tokens []string, topN int) ([]Entry, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}
	if topN < 1 {
		topN = 1
	}

	counts := make(map[string]int, len(tokens))
	first := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			first[tok] = i
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		ca, cb := counts[order[a]], counts[order[b]]
		if ca != cb {
			return ca > cb
		}
		return first[order[a]] < first[order[b]]
	})

	if topN > len(order) {
		topN = len(order)
	}
	out := make([]Entry, 0, topN)
	for _, tok := range order[:topN] {
		out = append(out, Entry{Token: tok, Count: counts[tok]})
	}
	return out, nil
}
