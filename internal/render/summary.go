package render

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/fixture-viewer/internal/match"
)

// CompetitionSummary counts the matches, rounds and teams of one competition
type CompetitionSummary struct {
	Competition string `json:"competencia"`
	Matches     int    `json:"partidos"`
	Rounds      int    `json:"fechas"`
	Teams       int    `json:"equipos"`
}

// Summarize returns one summary per competition, sorted by competition name
func Summarize(ds *match.Dataset) []CompetitionSummary {
	type acc struct {
		matches int
		rounds  map[string]struct{}
		teams   map[string]struct{}
	}

	byComp := make(map[string]*acc)
	for _, r := range ds.Records {
		a, ok := byComp[r.Competition()]
		if !ok {
			a = &acc{rounds: make(map[string]struct{}), teams: make(map[string]struct{})}
			byComp[r.Competition()] = a
		}
		a.matches++
		a.rounds[r.Round()] = struct{}{}
		a.teams[r.Home()] = struct{}{}
		a.teams[r.Away()] = struct{}{}
	}

	comps := ds.Competitions()
	summaries := make([]CompetitionSummary, 0, len(comps))
	for _, c := range comps {
		a := byComp[c]
		summaries = append(summaries, CompetitionSummary{
			Competition: c,
			Matches:     a.matches,
			Rounds:      len(a.rounds),
			Teams:       len(a.teams),
		})
	}

	return summaries
}

// WriteSummary writes competition summaries as text or JSON
func WriteSummary(w io.Writer, summaries []CompetitionSummary, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summaries)
	case FormatText:
		total := 0
		fmt.Fprintln(w, "=== RESUMEN POR COMPETENCIA ===")
		for _, s := range summaries {
			fmt.Fprintf(w, "  %-12s: %4d partidos, %3d fechas, %3d equipos\n", s.Competition, s.Matches, s.Rounds, s.Teams)
			total += s.Matches
		}
		_, err := fmt.Fprintf(w, "\nTotal: %d partidos\n", total)
		return err
	default:
		return fmt.Errorf("unsupported summary format: %s", format)
	}
}
