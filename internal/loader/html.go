package loader

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// parseHTML reads the first <table> of a page. The header comes from the
// first row's cells (th or td); each later row with td cells is a record.
func parseHTML(source string, data []byte) (*match.Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, loadErr(source, "parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, loadErr(source, "no table found")
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil, loadErr(source, "resource is empty")
	}

	header := cellTexts(trs.First().Find("th, td"))

	var rows []row
	trs.Slice(1, goquery.ToEnd).Each(func(i int, tr *goquery.Selection) {
		cells := cellTexts(tr.Find("td"))
		if isBlank(cells) {
			return
		}
		rows = append(rows, row{line: i + 2, tokens: cells})
	})

	return build(source, header, rows)
}

func cellTexts(sel *goquery.Selection) []string {
	texts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}
