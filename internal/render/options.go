package render

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/fixture-viewer/internal/filter"
)

// WriteOptions writes the filter selection controls as text or JSON
func WriteOptions(w io.Writer, opts filter.Options, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, opts)
	case FormatText:
		fmt.Fprintln(w, "Competencias:")
		for _, o := range opts.Competitions {
			fmt.Fprintf(w, "  %-20s %s\n", o.Value, o.Label)
		}
		fmt.Fprintln(w, "Fechas:")
		for _, o := range opts.Rounds {
			fmt.Fprintf(w, "  %-20s %s\n", o.Value, o.Label)
		}
		return nil
	default:
		return fmt.Errorf("unsupported options format: %s", format)
	}
}
