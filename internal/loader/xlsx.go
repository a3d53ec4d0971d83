package loader

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// parseXLSX reads the first sheet of a workbook; the first row is the header.
func parseXLSX(source string, data []byte) (*match.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, loadErr(source, "opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, loadErr(source, "workbook has no sheets")
	}

	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, loadErr(source, "reading sheet %s: %w", sheets[0], err)
	}

	// skip leading blank rows, as the text format trims leading blank lines
	for len(all) > 0 && isBlank(all[0]) {
		all = all[1:]
	}
	if len(all) == 0 {
		return nil, loadErr(source, "resource is empty")
	}

	width := len(all[0])
	rows := make([]row, 0, len(all)-1)
	for i, cells := range all[1:] {
		if isBlank(cells) {
			continue
		}
		// GetRows drops trailing empty cells
		for len(cells) < width {
			cells = append(cells, "")
		}
		rows = append(rows, row{line: i + 2, tokens: cells})
	}

	return build(source, all[0], rows)
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
