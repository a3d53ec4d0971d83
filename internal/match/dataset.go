package match

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Dataset is the immutable result of loading a fixture source
type Dataset struct {
	Source   string
	Header   []string
	Records  []*Record
	LoadedAt time.Time

	competitions map[string]struct{}
	rounds       map[int]struct{}
}

// NewDataset builds a dataset and its derived competition and round sets.
// Rounds that do not parse as integers are left out of the round set; the
// records themselves are kept.
func NewDataset(source string, header []string, records []*Record) *Dataset {
	ds := &Dataset{
		Source:       source,
		Header:       header,
		Records:      records,
		LoadedAt:     time.Now().UTC(),
		competitions: make(map[string]struct{}),
		rounds:       make(map[int]struct{}),
	}

	for _, r := range records {
		ds.competitions[r.Competition()] = struct{}{}
		if n, ok := ParseRound(r.Round()); ok {
			ds.rounds[n] = struct{}{}
		}
	}

	return ds
}

// ParseRound parses a fecha value as an integer round number
func ParseRound(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Competitions returns the distinct competition names sorted lexicographically
func (d *Dataset) Competitions() []string {
	comps := make([]string, 0, len(d.competitions))
	for c := range d.competitions {
		comps = append(comps, c)
	}
	sort.Strings(comps)
	return comps
}

// Rounds returns the distinct round numbers in ascending order
func (d *Dataset) Rounds() []int {
	rounds := make([]int, 0, len(d.rounds))
	for r := range d.rounds {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	return rounds
}

// HasCompetition reports whether any record belongs to the competition
func (d *Dataset) HasCompetition(name string) bool {
	_, ok := d.competitions[name]
	return ok
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.Records)
}
