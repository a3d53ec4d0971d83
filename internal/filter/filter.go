// Package filter selects the visible subset of a fixture.
//
// A State holds the two user selections, competition and round, each either a
// concrete value or All. Applying a state keeps the records that match both
// selections, in their original order.
//
// Example usage:
//
//	st := filter.NewState().WithCompetition("Liga")
//	visible := st.Apply(ds.Records)
//	opts := filter.BuildOptions(ds)
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// All is the sentinel selection meaning "no filter"
const All = "ALL"

// State represents the active competition and round selections
type State struct {
	Competition string `json:"competencia"`
	Round       string `json:"fecha"`
}

// NewState creates a state with no active selection
func NewState() State {
	return State{
		Competition: All,
		Round:       All,
	}
}

// Normalize trims typed input and maps any casing of "all" to All.
// Selections stored in a State are compared verbatim; only the exact All
// string disables a filter.
func Normalize(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, All) {
		return All
	}
	return value
}

// WithCompetition returns a copy of the state with the competition selection replaced
func (s State) WithCompetition(competition string) State {
	s.Competition = competition
	return s
}

// WithRound returns a copy of the state with the round selection replaced
func (s State) WithRound(round string) State {
	s.Round = round
	return s
}

// IsEmpty reports whether neither selection is active.
// The zero State is not empty: it selects records whose competencia and
// fecha are both blank.
func (s State) IsEmpty() bool {
	return s.Competition == All && s.Round == All
}

// Matches reports whether a record passes both selections. The round is
// compared in its stored string form, so "01" does not match a selection of "1".
func (s State) Matches(r *match.Record) bool {
	if s.Competition != All && r.Competition() != s.Competition {
		return false
	}
	if s.Round != All && r.Round() != s.Round {
		return false
	}
	return true
}

// Apply returns the records that match the state, in their original order.
// An empty state returns the input slice unchanged.
func (s State) Apply(records []*match.Record) []*match.Record {
	if s.IsEmpty() {
		return records
	}

	filtered := make([]*match.Record, 0)
	for _, r := range records {
		if s.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// String returns a human-readable description of the active selections.
// Format: "Competencia: Liga | Fecha 3"
func (s State) String() string {
	if s.IsEmpty() {
		return "Sin filtros"
	}

	var parts []string
	if s.Competition != All {
		parts = append(parts, fmt.Sprintf("Competencia: %s", s.Competition))
	}
	if s.Round != All {
		parts = append(parts, fmt.Sprintf("Fecha %s", s.Round))
	}

	return strings.Join(parts, " | ")
}

// Option is one entry of a filter selection control
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options holds the entries of both selection controls. Each list starts
// with the All option, which is the default selection.
type Options struct {
	Competitions []Option `json:"competencias"`
	Rounds       []Option `json:"fechas"`
}

// Labels of the All options
const (
	AllCompetitionsLabel = "Todas"
	AllRoundsLabel       = "Todas las fechas"
)

// BuildOptions derives the selection controls from a dataset: competitions in
// lexicographic order and rounds in ascending numeric order.
func BuildOptions(ds *match.Dataset) Options {
	comps := ds.Competitions()
	rounds := ds.Rounds()

	opts := Options{
		Competitions: make([]Option, 0, len(comps)+1),
		Rounds:       make([]Option, 0, len(rounds)+1),
	}

	opts.Competitions = append(opts.Competitions, Option{Value: All, Label: AllCompetitionsLabel})
	for _, c := range comps {
		opts.Competitions = append(opts.Competitions, Option{Value: c, Label: c})
	}

	opts.Rounds = append(opts.Rounds, Option{Value: All, Label: AllRoundsLabel})
	for _, r := range rounds {
		v := strconv.Itoa(r)
		opts.Rounds = append(opts.Rounds, Option{Value: v, Label: RoundLabel(v)})
	}

	return opts
}

// RoundLabel formats a round for display
func RoundLabel(round string) string {
	return fmt.Sprintf("Fecha %s", round)
}
