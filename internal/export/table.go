// Package export builds the tabular view of a corpus result and hands it to
// the spreadsheet writer. Presentation belongs entirely to the writer; the
// table itself is plain data.
package export

import (
	"errors"

	"github.com/rmaltez/docfreq/internal/corpus"
)

// ErrEmptyCorpus reports an export request over a corpus with no analyzed
// documents.
var ErrEmptyCorpus = errors.New("nothing to export: corpus has no analyzed documents")

// Row is one document line: the fixed summary fields followed by this
// document's count for each global term (zero when the term is absent from
// the document's own ranking).
type Row struct {
	Document     string
	Locator      string
	Language     string
	Backend      string
	Synthetic    bool
	TotalTokens  int
	UniqueTokens int
	Density      float64
	Counts       []int
}

// Table is the export structure: Terms gives the column order for the
// per-term counts in every Row.
type Table struct {
	Terms []string
	Rows  []Row
}

// BuildTable projects a corpus result into the export table. Terms are the
// global top-topNWords terms by combined frequency, in the ranking's order
// (ties already resolved by first discovery). Cells hold each document's own
// bounded count for the term.
func BuildTable(res *corpus.Result, topNWords int) Table {
	if topNWords < 1 || topNWords > len(res.Top) {
		topNWords = len(res.Top)
	}
	terms := make([]string, 0, topNWords)
	for _, e := range res.Top[:topNWords] {
		terms = append(terms, e.Token)
	}

	rows := make([]Row, 0, len(res.Documents))
	for _, doc := range res.Documents {
		own := make(map[string]int, len(doc.Top))
		for _, e := range doc.Top {
			own[e.Token] = e.Count
		}
		counts := make([]int, len(terms))
		for i, term := range terms {
			counts[i] = own[term]
		}
		rows = append(rows, Row{
			Document:     doc.Name,
			Locator:      doc.Locator,
			Language:     doc.Language,
			Backend:      doc.Backend,
			Synthetic:    doc.Synthetic,
			TotalTokens:  doc.TotalTokens,
			UniqueTokens: doc.UniqueTokens,
			Density:      doc.Density,
			Counts:       counts,
		})
	}
	return Table{Terms: terms, Rows: rows}
}
