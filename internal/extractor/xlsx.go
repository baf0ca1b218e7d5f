package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXExtractor handles spreadsheet manuscripts. Each sheet becomes a
// chapter-level heading followed by its rows as text.
type XLSXExtractor struct{}

func (e *XLSXExtractor) Extract(r io.Reader, filename string) (string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var out []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		out = append(out, "## "+sheet)
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, " | "))
			if line != "" {
				out = append(out, line)
			}
		}
	}

	return strings.Join(out, "\n\n"), nil
}
