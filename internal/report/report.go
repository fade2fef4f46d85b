// Package report renders analysis results as plain-text reports. File
// writing and spreadsheet export are other components' business.
package report

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rmaltez/docfreq/internal/corpus"
	"github.com/rmaltez/docfreq/internal/freq"
	"github.com/rmaltez/docfreq/internal/source"
)

var titleCase = cases.Title(language.Und)

const rule = "================================================================================"

// DocumentData is everything the single-document report needs.
type DocumentData struct {
	Info         source.Info
	Language     string
	Backend      string
	Synthetic    bool
	ContentChars int
	TotalTokens  int
	UniqueTokens int
	Density      float64
	Ranking      []freq.Entry
}

// Document renders the full single-document report.
func Document(d DocumentData) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("DOCUMENT ANALYSIS REPORT\n")
	b.WriteString(rule + "\n")

	b.WriteString("SOURCE:\n")
	if d.Info.Kind == source.KindPDF {
		writeField(&b, "Type", "PDF")
		writeField(&b, "Name", d.Info.Name)
		writeField(&b, "Path", d.Info.Path)
		writeField(&b, "Size", FormatSize(d.Info.SizeBytes))
		writeField(&b, "Modified", d.Info.Modified)
		writeField(&b, "Pages", d.Info.Pages)
		writeField(&b, "PDF version", d.Info.Version)
		writeField(&b, "Encrypted", d.Info.Encrypted)
	} else {
		writeField(&b, "Type", "Web page")
		writeField(&b, "URL", d.Info.URL)
		writeField(&b, "Title", d.Info.Title)
		writeField(&b, "Size", FormatSize(d.Info.SizeBytes))
		writeField(&b, "Accessed", d.Info.Accessed)
		writeField(&b, "Status", d.Info.StatusCode)
		writeField(&b, "Content-Type", d.Info.ContentType)
		writeField(&b, "Encoding", d.Info.Encoding)
	}

	if len(d.Info.Meta) > 0 {
		b.WriteString("\nMETADATA:\n")
		keys := make([]string, 0, len(d.Info.Meta))
		for k := range d.Info.Meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeField(&b, titleCase.String(k), d.Info.Meta[k])
		}
	}

	b.WriteString("\nSTATISTICS:\n")
	fmt.Fprintf(&b, "- Total tokens: %d\n", d.TotalTokens)
	fmt.Fprintf(&b, "- Unique tokens: %d\n", d.UniqueTokens)
	fmt.Fprintf(&b, "- Vocabulary density: %.2f%%\n", d.Density)
	fmt.Fprintf(&b, "- Content length: %d characters\n", d.ContentChars)
	writeField(&b, "Language", d.Language)
	writeField(&b, "Extraction backend", d.Backend)
	if d.Synthetic {
		b.WriteString("- Note: no extraction backend succeeded; placeholder content was analyzed\n")
	}

	fmt.Fprintf(&b, "\nTOP %d TERMS:\n", len(d.Ranking))
	for i, e := range d.Ranking {
		fmt.Fprintf(&b, "%2d. %-25s - %5d occurrences\n", i+1, e.Token, e.Count)
	}
	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Corpus renders the consolidated corpus report. An empty corpus gets an
// explicit nothing-to-report body rather than a bare page.
func Corpus(res *corpus.Result) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("CORPUS ANALYSIS REPORT\n")
	b.WriteString(rule + "\n")
	writeField(&b, "Directory", res.Directory)

	if res.TotalDocuments == 0 {
		b.WriteString("\nNothing to report: no documents were successfully analyzed.\n")
		b.WriteString(rule + "\n")
		return b.String()
	}

	b.WriteString("\nTOTALS:\n")
	fmt.Fprintf(&b, "- Documents analyzed: %d\n", res.TotalDocuments)
	fmt.Fprintf(&b, "- Total tokens: %d\n", res.TotalTokens)
	fmt.Fprintf(&b, "- Unique tokens: %d\n", res.UniqueTokens)
	fmt.Fprintf(&b, "- Vocabulary density: %.2f%%\n", res.Density)

	fmt.Fprintf(&b, "\nTOP %d TERMS (corpus-wide):\n", len(res.Top))
	for i, e := range res.Top {
		fmt.Fprintf(&b, "%2d. %-25s - %5d occurrences\n", i+1, e.Token, e.Count)
	}

	b.WriteString("\nDOCUMENTS:\n")
	for _, doc := range res.Documents {
		flag := ""
		if doc.Synthetic {
			flag = " [placeholder]"
		}
		fmt.Fprintf(&b, "- %-30s %6d tokens, %4d unique, %s%s\n",
			doc.Name, doc.TotalTokens, doc.UniqueTokens, doc.Language, flag)
	}
	b.WriteString("\n" + rule + "\n")
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

// FormatSize renders a byte count as a human-readable figure.
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.1f TB", size)
}
