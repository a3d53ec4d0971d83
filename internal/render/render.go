// Package render turns a filtered fixture into display units and writes
// them as terminal text, JSON or a standalone HTML page.
//
// Every render recomputes the full visible list from the dataset and the
// filter state; nothing is updated incrementally.
package render

import (
	"fmt"

	"github.com/pfrederiksen/fixture-viewer/internal/filter"
	"github.com/pfrederiksen/fixture-viewer/internal/logger"
	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// Placeholder is shown instead of an empty card list
const Placeholder = "No se encontraron encuentros para los filtros seleccionados."

// Team is a team name with its decorative icon
type Team struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Column is a named value from a source column without a dedicated card field
type Column struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// cardColumns have their own place on a card
var cardColumns = map[string]bool{
	match.ColCompetition: true,
	match.ColRound:       true,
	match.ColHome:        true,
	match.ColAway:        true,
	match.ColStadium:     true,
}

// Card is the display unit of one match
type Card struct {
	Competition string   `json:"competencia"`
	Round       string   `json:"fecha"`
	RoundLabel  string   `json:"fecha_label"`
	Home        Team     `json:"local"`
	Away        Team     `json:"visitante"`
	Stadium     string   `json:"estadio,omitempty"`
	Extra       []Column `json:"extra,omitempty"`

	// Hidden marks cards outside the current filter on the HTML page
	Hidden bool `json:"-"`
}

// RenderedList is the result of rendering a filter state
type RenderedList struct {
	Filter      filter.State `json:"filter"`
	Count       int          `json:"count"`
	Cards       []Card       `json:"cards"`
	Placeholder string       `json:"placeholder,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// NewCard builds the display unit for a record. Non-empty values of any
// other source columns are carried in header order.
func NewCard(r *match.Record) Card {
	card := Card{
		Competition: r.Competition(),
		Round:       r.Round(),
		RoundLabel:  filter.RoundLabel(r.Round()),
		Home:        Team{Name: r.Home(), Icon: match.Icon(r.Home())},
		Away:        Team{Name: r.Away(), Icon: match.Icon(r.Away())},
		Stadium:     r.Stadium(),
	}

	for _, col := range r.Columns() {
		if cardColumns[col] {
			continue
		}
		if v, _ := r.Get(col); v != "" {
			card.Extra = append(card.Extra, Column{Name: col, Value: v})
		}
	}

	return card
}

// Build filters the dataset with st and renders the visible records in order.
// When nothing matches, the list carries the placeholder instead of cards.
func Build(ds *match.Dataset, st filter.State) *RenderedList {
	logger.IncrCounter("render.build")

	visible := st.Apply(ds.Records)

	list := &RenderedList{
		Filter: st,
		Count:  len(visible),
		Cards:  make([]Card, 0, len(visible)),
	}
	for _, r := range visible {
		list.Cards = append(list.Cards, NewCard(r))
	}

	if list.Count == 0 {
		list.Placeholder = Placeholder
	}

	logger.Debug("Rendered fixture", logger.Fields{
		"filter": st.String(),
		"count":  list.Count,
	})

	return list
}

// Failed renders a load failure in place of the results
func Failed(err error) *RenderedList {
	return &RenderedList{
		Filter: filter.NewState(),
		Cards:  []Card{},
		Error:  ErrorMessage(err),
	}
}

// ErrorMessage formats an error for display in the results area
func ErrorMessage(err error) string {
	return fmt.Sprintf("⚠️ Error: %v", err)
}

// Empty reports whether the list has no cards to show
func (l *RenderedList) Empty() bool {
	return l.Count == 0
}
