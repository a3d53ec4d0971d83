package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format specifies the output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatText, FormatJSON, FormatHTML:
		return f, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'html')", name)
}

// Write writes the page in the given format
func Write(w io.Writer, page *Page, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, page.List)
	case FormatText:
		return writeText(w, page)
	case FormatHTML:
		return writeHTML(w, page)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText writes the cards as terminal text
func writeText(w io.Writer, page *Page) error {
	list := page.List

	if list.Error != "" {
		_, err := fmt.Fprintln(w, list.Error)
		return err
	}

	fmt.Fprintf(w, "%s\n", list.Filter.String())
	fmt.Fprintf(w, "Encuentros: %d\n", list.Count)

	if list.Empty() {
		_, err := fmt.Fprintf(w, "\n%s\n", list.Placeholder)
		return err
	}

	for _, card := range list.Cards {
		if err := WriteCard(w, card); err != nil {
			return err
		}
	}

	return nil
}

// WriteCard writes a single card as text
func WriteCard(w io.Writer, card Card) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n[%s] %s\n", card.Competition, card.RoundLabel)
	fmt.Fprintf(&b, "  %s %s\n", card.Home.Icon, card.Home.Name)
	b.WriteString("     VS\n")
	fmt.Fprintf(&b, "  %s %s\n", card.Away.Icon, card.Away.Name)
	if card.Stadium != "" {
		fmt.Fprintf(&b, "  🏟️ %s\n", card.Stadium)
	}
	for _, c := range card.Extra {
		fmt.Fprintf(&b, "  %s: %s\n", c.Name, c.Value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
