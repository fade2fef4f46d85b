package export

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// KV is one line of the summary sheet.
type KV struct {
	Key   string
	Value any
}

const (
	summarySheet = "Summary"
	freqSheet    = "Frequencies"
)

// leading column headers before the per-term columns.
var rowHeaders = []string{
	"Document", "Locator", "Language", "Backend", "Placeholder",
	"Total tokens", "Unique tokens", "Density %",
}

// WriteXLSX renders the export table and a key/value summary into a
// two-sheet workbook. All styling and sizing live here, never in the table.
func WriteXLSX(table Table, summary []KV, path string) error {
	if len(table.Rows) == 0 {
		return ErrEmptyCorpus
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	// Summary sheet.
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	for i, kv := range summary {
		row := i + 1
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), kv.Key)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), kv.Value)
		_ = f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), headerStyle)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)

	// Frequencies sheet: documents as rows, summary fields then term columns.
	if _, err := f.NewSheet(freqSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}
	headers := append(append([]string{}, rowHeaders...), table.Terms...)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("xlsx cell: %w", err)
		}
		_ = f.SetCellValue(freqSheet, cell, h)
		_ = f.SetCellStyle(freqSheet, cell, cell, headerStyle)
	}
	for i, row := range table.Rows {
		values := []any{
			row.Document, row.Locator, row.Language, row.Backend,
			row.Synthetic, row.TotalTokens, row.UniqueTokens, row.Density,
		}
		for _, c := range row.Counts {
			values = append(values, c)
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("xlsx cell: %w", err)
			}
			_ = f.SetCellValue(freqSheet, cell, v)
		}
	}
	_ = f.SetColWidth(freqSheet, "A", "B", 30)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	log.Info().Str("path", path).Int("documents", len(table.Rows)).
		Int("terms", len(table.Terms)).Msg("export workbook written")
	return nil
}
