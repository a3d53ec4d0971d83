package render

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
	"time"

	"github.com/pfrederiksen/fixture-viewer/internal/filter"
	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

//go:embed page.html.tmpl
var pageTemplate string

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Page is everything a view of the fixture needs: the selection controls,
// the rendered list and, for the HTML page, the cards of every record so the
// page can refilter on its own.
type Page struct {
	Title    string
	Source   string
	Options  filter.Options
	List     *RenderedList
	AllCards []Card
	LoadedAt time.Time
}

// NewPage renders ds under st
func NewPage(ds *match.Dataset, st filter.State) *Page {
	all := make([]Card, 0, ds.Len())
	for _, r := range ds.Records {
		card := NewCard(r)
		card.Hidden = !st.Matches(r)
		all = append(all, card)
	}

	opts := filter.BuildOptions(ds)
	opts.Competitions = ensureOption(opts.Competitions, st.Competition, st.Competition)
	opts.Rounds = ensureOption(opts.Rounds, st.Round, filter.RoundLabel(st.Round))

	return &Page{
		Title:    "Fixture",
		Source:   ds.Source,
		Options:  opts,
		LoadedAt: ds.LoadedAt,
		List:     Build(ds, st),
		AllCards: all,
	}
}

// ensureOption appends the current selection when the dataset does not offer
// it, so the select control shows what the cards were filtered by.
func ensureOption(opts []filter.Option, value, label string) []filter.Option {
	for _, o := range opts {
		if o.Value == value {
			return opts
		}
	}
	return append(opts, filter.Option{Value: value, Label: label})
}

// ErrorPage is shown when the fixture could not be loaded
func ErrorPage(source string, err error) *Page {
	return &Page{
		Title:   "Fixture",
		Source:  source,
		Options: filter.Options{},
		List:    Failed(err),
	}
}

// SelectedCompetition reports whether an option value is the current competition selection
func (p *Page) SelectedCompetition(value string) bool {
	return p.List.Filter.Competition == value
}

// SelectedRound reports whether an option value is the current round selection
func (p *Page) SelectedRound(value string) bool {
	return p.List.Filter.Round == value
}

// Placeholder returns the text shown when no card is visible
func (p *Page) Placeholder() string {
	return Placeholder
}

func writeHTML(w io.Writer, page *Page) error {
	// render fully before writing so a template error leaves no partial page
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, page); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
