package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// parseJSON reads the generator's fixture_output.json: an array of objects
// with competencia, fecha, local, visitante and optional extra keys such as
// estadio. Extra keys follow the required columns in sorted order.
func parseJSON(source string, data []byte) (*match.Dataset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, loadErr(source, "resource is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var objects []map[string]interface{}
	if err := dec.Decode(&objects); err != nil {
		return nil, loadErr(source, "parsing JSON: %w", err)
	}

	header := append([]string{}, match.RequiredColumns...)
	known := make(map[string]bool, len(header))
	for _, h := range header {
		known[h] = true
	}

	var extra []string
	for _, obj := range objects {
		for k := range obj {
			if !known[k] {
				known[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)
	header = append(header, extra...)

	rows := make([]row, 0, len(objects))
	for i, obj := range objects {
		tokens := make([]string, len(header))
		for j, col := range header {
			tokens[j] = jsonValue(obj[col])
		}
		rows = append(rows, row{line: i + 1, tokens: tokens})
	}

	return build(source, header, rows)
}

func jsonValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
