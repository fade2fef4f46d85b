package report

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders a plain-text report into a simple A4 PDF. Section
// headings (all-caps lines ending in a colon) get a bold face; everything
// else flows as body text.
func WritePDF(text string, outPath string) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Courier", "", 9)
	doc.AddPage()
	// Report text is UTF-8; the core fonts want cp1252.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		s := strings.TrimRight(line, " ")
		if s == "" {
			doc.Ln(4)
			continue
		}
		if isHeading(s) {
			doc.SetFont("Courier", "B", 10)
			doc.CellFormat(0, 6, tr(s), "", 1, "L", false, 0, "")
			doc.SetFont("Courier", "", 9)
			continue
		}
		doc.MultiCell(0, 4.5, tr(s), "", "L", false)
	}
	return doc.OutputFileAndClose(outPath)
}

func isHeading(s string) bool {
	if !strings.HasSuffix(s, ":") {
		return false
	}
	return strings.ToUpper(s) == s
}
