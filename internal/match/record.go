package match

import (
	"encoding/json"
	"strings"
)

// Column names every fixture source must provide.
const (
	ColCompetition = "competencia"
	ColRound       = "fecha"
	ColHome        = "local"
	ColAway        = "visitante"
	ColStadium     = "estadio"
)

// RequiredColumns lists the columns a header must contain, in canonical order.
var RequiredColumns = []string{ColCompetition, ColRound, ColHome, ColAway}

// Record represents one match row of a fixture
type Record struct {
	header []string
	values map[string]string
}

// NewRecord maps row tokens onto header columns by position. Values are
// trimmed. Missing tokens become empty strings and extra tokens are dropped.
func NewRecord(header, tokens []string) *Record {
	values := make(map[string]string, len(header))
	for i, col := range header {
		v := ""
		if i < len(tokens) {
			v = strings.TrimSpace(tokens[i])
		}
		values[col] = v
	}
	return &Record{
		header: header,
		values: values,
	}
}

// Get returns the value of a column and whether the column exists
func (r *Record) Get(column string) (string, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Competition returns the competencia column
func (r *Record) Competition() string { return r.values[ColCompetition] }

// Round returns the fecha column in its stored string form
func (r *Record) Round() string { return r.values[ColRound] }

// Home returns the local team name
func (r *Record) Home() string { return r.values[ColHome] }

// Away returns the visitante team name
func (r *Record) Away() string { return r.values[ColAway] }

// Stadium returns the estadio column, empty when the source has none
func (r *Record) Stadium() string { return r.values[ColStadium] }

// Columns returns the header the record was built from
func (r *Record) Columns() []string {
	cols := make([]string, len(r.header))
	copy(cols, r.header)
	return cols
}

// MarshalJSON encodes the record as an object of its columns
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.values)
}
