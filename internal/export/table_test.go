package export

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/rmaltez/docfreq/internal/corpus"
	"github.com/rmaltez/docfreq/internal/freq"
)

func sampleResult() *corpus.Result {
	return &corpus.Result{
		Directory:      "docs",
		TotalDocuments: 2,
		TotalTokens:    20,
		UniqueTokens:   8,
		Density:        40,
		Top: []freq.Entry{
			{Token: "model", Count: 7}, {Token: "data", Count: 5}, {Token: "test", Count: 2},
		},
		Documents: []corpus.Document{
			{Name: "a.pdf", Locator: "docs/a.pdf", Language: "ingles",
				Backend: "pdf-native", TotalTokens: 10, UniqueTokens: 4, Density: 40,
				Top: []freq.Entry{{Token: "data", Count: 5}, {Token: "model", Count: 3}}},
			{Name: "b.pdf", Locator: "docs/b.pdf", Language: "ingles",
				Backend: "pdf-native", TotalTokens: 10, UniqueTokens: 4, Density: 40,
				Top: []freq.Entry{{Token: "model", Count: 4}, {Token: "test", Count: 2}}},
		},
	}
}

func TestBuildTable_TermColumnsAndCells(t *testing.T) {
	table := BuildTable(sampleResult(), 2)
	if !reflect.DeepEqual(table.Terms, []string{"model", "data"}) {
		t.Fatalf("expected top-2 global terms, got %v", table.Terms)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected one row per document, got %d", len(table.Rows))
	}
	// a.pdf: model=3, data=5; b.pdf: model=4, data absent -> 0.
	if !reflect.DeepEqual(table.Rows[0].Counts, []int{3, 5}) {
		t.Fatalf("unexpected counts for a.pdf: %v", table.Rows[0].Counts)
	}
	if !reflect.DeepEqual(table.Rows[1].Counts, []int{4, 0}) {
		t.Fatalf("absent term must be zero, got %v", table.Rows[1].Counts)
	}
}

func TestBuildTable_TopNWordsClamped(t *testing.T) {
	table := BuildTable(sampleResult(), 99)
	if len(table.Terms) != 3 {
		t.Fatalf("expected all global terms when topN exceeds them, got %v", table.Terms)
	}
}

func TestWriteXLSX_EmptyCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	err := WriteXLSX(Table{}, nil, path)
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	table := BuildTable(sampleResult(), 2)
	summary := []KV{
		{Key: "Documents", Value: 2},
		{Key: "Total tokens", Value: 20},
	}
	if err := WriteXLSX(table, summary, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Summary", "A1")
	if err != nil || got != "Documents" {
		t.Fatalf("expected summary key, got %q (%v)", got, err)
	}
	header, err := f.GetCellValue("Frequencies", "A1")
	if err != nil || header != "Document" {
		t.Fatalf("expected header row, got %q (%v)", header, err)
	}
	// First term column sits right after the fixed summary columns.
	cell, _ := excelize.CoordinatesToCellName(9, 1)
	term, err := f.GetCellValue("Frequencies", cell)
	if err != nil || term != "model" {
		t.Fatalf("expected first term column 'model', got %q (%v)", term, err)
	}
}
