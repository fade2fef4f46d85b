package app

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/rmaltez/docfreq/internal/export"
	"github.com/rmaltez/docfreq/internal/source"
)

func newAnalyzer(t *testing.T, cfg Config) *Analyzer {
	t.Helper()
	if cfg.StopWordsPath == "" {
		cfg.StopWordsPath = filepath.Join(t.TempDir(), "stop_words.json")
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new analyzer: %v", err)
	}
	return a
}

func writeCorpusPDF(t *testing.T, dir, name, text string) {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.MultiCell(0, 8, text, "", "L", false)
	if err := doc.OutputFileAndClose(filepath.Join(dir, name)); err != nil {
		t.Fatalf("write corpus pdf: %v", err)
	}
}

const englishPage = `<html><head><title>Frequency Notes</title></head><body>
<p>The frequency analysis pipeline counts frequency tables for documents and
the ranking orders tokens with their counts from that analysis.</p>
</body></html>`

func TestAnalyze_WebSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(englishPage))
	}))
	defer srv.Close()

	a := newAnalyzer(t, Config{})
	an, err := a.Analyze(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if an.Source.Kind != source.KindWeb {
		t.Fatalf("expected web kind, got %q", an.Source.Kind)
	}
	if an.Language != "ingles" {
		t.Fatalf("expected english detection, got %q", an.Language)
	}
	if an.Synthetic {
		t.Fatal("live page must not be synthetic")
	}
	if len(an.Ranking) == 0 || an.Ranking[0].Token != "frequency" {
		t.Fatalf("unexpected ranking head: %+v", an.Ranking)
	}
	if an.Info.Title == source.Unavailable {
		t.Fatal("expected page title in metadata")
	}
	if an.TotalTokens() == 0 || an.UniqueTokens() == 0 || an.Density() <= 0 {
		t.Fatalf("statistics not populated: total=%d unique=%d density=%f",
			an.TotalTokens(), an.UniqueTokens(), an.Density())
	}
}

func TestAnalyze_LanguageOverrideSkipsDetection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(englishPage))
	}))
	defer srv.Close()

	a := newAnalyzer(t, Config{Language: "portugues"})
	an, err := a.Analyze(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if an.Language != "portugues" {
		t.Fatalf("override ignored, got %q", an.Language)
	}
	// Portuguese stop words leave English articles alone.
	if _, ok := an.Counts["the"]; !ok {
		t.Fatal("expected 'the' to survive with the portuguese stop list")
	}
}

func TestAnalyze_InvalidSource(t *testing.T) {
	a := newAnalyzer(t, Config{})
	_, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, source.ErrInvalidSource) {
		t.Fatalf("expected ErrInvalidSource, got %v", err)
	}
}

func TestRun_SingleSourceWritesOutputs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(englishPage))
	}))
	defer srv.Close()

	dir := t.TempDir()
	cfg := Config{
		Source:        srv.URL,
		StopWordsPath: filepath.Join(dir, "stop_words.json"),
		OutputText:    filepath.Join(dir, "report.txt"),
		OutputPDF:     filepath.Join(dir, "report.pdf"),
		OutputXLSX:    filepath.Join(dir, "report.xlsx"),
	}

	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "DOCUMENT ANALYSIS REPORT") {
		t.Fatalf("report missing from output:\n%s", out.String())
	}
	for _, p := range []string{cfg.OutputText, cfg.OutputPDF, cfg.OutputXLSX} {
		if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
			t.Fatalf("expected non-empty output at %s (err=%v)", p, err)
		}
	}
}

func TestRunCorpus_AggregatesFixtures(t *testing.T) {
	dir := t.TempDir()
	writeCorpusPDF(t, dir, "a.pdf", "dados dados dados processo processo modelo")
	writeCorpusPDF(t, dir, "b.pdf", "dados modelo modelo modelo")

	a := newAnalyzer(t, Config{Language: "portugues"})
	res, err := a.RunCorpus(context.Background(), dir)
	if err != nil {
		t.Fatalf("run corpus: %v", err)
	}
	if res.TotalDocuments != 2 {
		t.Fatalf("expected 2 documents, got %d", res.TotalDocuments)
	}
	if res.TotalTokens != 10 {
		t.Fatalf("expected 10 combined tokens, got %d", res.TotalTokens)
	}
	if len(res.Top) == 0 || res.Top[0].Token != "dados" || res.Top[0].Count != 4 {
		t.Fatalf("unexpected global head: %+v", res.Top)
	}
}

func TestRun_EmptyCorpusIsAnError(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Dir:           dir,
		StopWordsPath: filepath.Join(t.TempDir(), "stop_words.json"),
	}
	var out bytes.Buffer
	err := Run(context.Background(), cfg, &out)
	if !errors.Is(err, export.ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
	if !strings.Contains(out.String(), "Nothing to report") {
		t.Fatalf("empty-corpus report still expected:\n%s", out.String())
	}
}
