package loader

import "fmt"

// LoadError reports that a fixture source could not be retrieved or read
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading fixture %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErr(source string, format string, args ...interface{}) *LoadError {
	return &LoadError{Source: source, Err: fmt.Errorf(format, args...)}
}
