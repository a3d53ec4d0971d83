package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	summaries := Summarize(scenario())

	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	copa, liga := summaries[0], summaries[1]
	if copa.Competition != "Copa" || copa.Matches != 1 || copa.Rounds != 1 || copa.Teams != 2 {
		t.Errorf("unexpected Copa summary %+v", copa)
	}
	if liga.Competition != "Liga" || liga.Matches != 2 || liga.Rounds != 2 || liga.Teams != 3 {
		t.Errorf("unexpected Liga summary %+v", liga)
	}
}

func TestWriteSummary(t *testing.T) {
	summaries := Summarize(scenario())

	var text bytes.Buffer
	if err := WriteSummary(&text, summaries, FormatText); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if !strings.Contains(text.String(), "Total: 3 partidos") {
		t.Errorf("unexpected text summary:\n%s", text.String())
	}

	var js bytes.Buffer
	if err := WriteSummary(&js, summaries, FormatJSON); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	var decoded []CompetitionSummary
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(decoded) != 2 || decoded[1].Matches != 2 {
		t.Errorf("unexpected JSON summary %+v", decoded)
	}

	if err := WriteSummary(&bytes.Buffer{}, summaries, FormatHTML); err == nil {
		t.Error("expected error for html summary")
	}
}
