package textio

import (
	"errors"
	"fmt"
)

// Errors returned by New and Decode.
var (
	ErrEmptyQuote          = errors.New("empty quote symbol")
	ErrEmptySeparator      = errors.New("empty separator")
	ErrAmbiguousSeparators = errors.New("ambiguous separators")
	ErrUnsupportedPattern  = errors.New("unsupported separator pattern")
	ErrUnterminatedQuote   = errors.New("unterminated quoted field")
)

// ParseError reports where decoding failed.
type ParseError struct {
	Offset int // byte offset of the offending field
	Line   int // 1-based row
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (offset %d): %v", e.Line, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
