// Package cli implements the command-line interface for the fixture viewer.
//
// The cli package provides the Cobra-based commands that load a fixture
// (loader), apply the competition and round selections (filter) and write the
// resulting cards as text, JSON or HTML (render). Settings come from the
// config package and can be overridden per invocation with flags.
package cli
