// Package errorutil provides error helpers shared across the module.
package errorutil

import "errors"

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

// IsGrammarErr returns true if the error is a grammar error.
func IsGrammarErr(err error) bool {
	var e interface{ Grammar() bool }
	return errors.As(err, &e) && e.Grammar()
}

// IsIncompleteErr returns true if the error reports truncated,
// not yet decidable input.
func IsIncompleteErr(err error) bool {
	var e interface{ Incomplete() bool }
	return errors.As(err, &e) && e.Incomplete()
}
