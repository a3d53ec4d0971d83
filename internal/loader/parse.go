package loader

import (
	"strings"

	"github.com/pfrederiksen/fixture-viewer/internal/logger"
	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// row is one body row and the 1-based source line it came from
type row struct {
	line   int
	tokens []string
}

// ParseCSV parses comma-separated fixture text. The text is trimmed before
// splitting into lines so surrounding blank lines produce no records. Fields
// are split on every comma; quoting is not interpreted.
func ParseCSV(source, text string) (*match.Dataset, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, loadErr(source, "resource is empty")
	}

	lines := strings.Split(text, "\n")
	header := strings.Split(lines[0], ",")

	rows := make([]row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			logger.IncrCounter("fixture.rows_skipped")
			continue
		}
		rows = append(rows, row{line: i + 2, tokens: strings.Split(line, ",")})
	}

	return build(source, header, rows)
}

// build maps rows onto the header and assembles the dataset. Shared by every
// input format.
func build(source string, rawHeader []string, rows []row) (*match.Dataset, error) {
	header := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, loadErr(source, "header is missing required columns: %s", strings.Join(missing, ", "))
	}

	records := make([]*match.Record, 0, len(rows))
	for _, r := range rows {
		if len(r.tokens) != len(header) {
			logger.Warn("Row column count does not match header", logger.Fields{
				"source":   source,
				"line":     r.line,
				"expected": len(header),
				"got":      len(r.tokens),
			})
		}

		rec := match.NewRecord(header, r.tokens)
		if _, ok := match.ParseRound(rec.Round()); !ok {
			logger.Warn("Non-numeric round left out of round options", logger.Fields{
				"source": source,
				"line":   r.line,
				"record": rec,
			})
		}
		records = append(records, rec)
	}

	return match.NewDataset(source, header, records), nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, col := range match.RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
