package filter

import (
	"fmt"
	"strings"
)

// Action is the kind of command entered in an interactive session
type Action int

const (
	ActionNone Action = iota
	ActionSetCompetition
	ActionSetRound
	ActionReset
	ActionOptions
	ActionHelp
	ActionQuit
)

// Command is a parsed interactive command
type Command struct {
	Action Action
	Value  string
}

// ParseCommand parses one line of interactive input.
//
// Supported forms:
//   - "competencia Liga", "c Liga", "competencia ALL"
//   - "fecha 3", "f 3", "fecha all"
//   - "reset", "opciones", "ayuda", "salir" (and English aliases)
//
// Blank lines parse to ActionNone. Competition names may contain spaces.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Action: ActionNone}, nil
	}

	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "competencia", "comp", "c":
		if rest == "" {
			return Command{}, fmt.Errorf("competencia requires a value (name or ALL)")
		}
		return Command{Action: ActionSetCompetition, Value: Normalize(rest)}, nil

	case "fecha", "f":
		if rest == "" {
			return Command{}, fmt.Errorf("fecha requires a value (number or ALL)")
		}
		if strings.Contains(rest, " ") {
			return Command{}, fmt.Errorf("invalid fecha: %q", rest)
		}
		return Command{Action: ActionSetRound, Value: Normalize(rest)}, nil

	case "reset", "r":
		return Command{Action: ActionReset}, nil

	case "opciones", "options", "o":
		return Command{Action: ActionOptions}, nil

	case "ayuda", "help", "h", "?":
		return Command{Action: ActionHelp}, nil

	case "salir", "quit", "exit", "q":
		return Command{Action: ActionQuit}, nil
	}

	return Command{}, fmt.Errorf("unknown command: %s", verb)
}

// Apply returns the state that results from running the command
func (c Command) Apply(s State) State {
	switch c.Action {
	case ActionSetCompetition:
		return s.WithCompetition(c.Value)
	case ActionSetRound:
		return s.WithRound(c.Value)
	case ActionReset:
		return NewState()
	}
	return s
}

// ChangesState reports whether the command modifies the filter state
func (c Command) ChangesState() bool {
	return c.Action == ActionSetCompetition || c.Action == ActionSetRound || c.Action == ActionReset
}
