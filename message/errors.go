package message

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCommand  = errors.New("missing command")
	ErrMalformedTags   = errors.New("malformed tags")
	ErrMalformedPrefix = errors.New("malformed prefix")
)

// ParseError reports why a line could not be parsed. Kind is one of the
// sentinel errors above and Offset is the byte position in Line where the
// offending section starts.
type ParseError struct {
	Kind   error
	Offset int
	Line   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v at byte %d", e.Line, e.Kind, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Kind }

func parseErr(kind error, line string, off int) *ParseError {
	return &ParseError{Kind: kind, Offset: off, Line: line}
}
