package parsers

import (
	"fmt"

	"go.uber.org/multierr"
)

// ErrorCode identifies a specific kind of parse failure (spec §7).
type ErrorCode string

const (
	ErrUnexpectedEOF       ErrorCode = "unexpected-eof"
	ErrUnexpectedCharacter ErrorCode = "unexpected-character"
	ErrUnknownType         ErrorCode = "unknown-type"
	ErrMalformedLiteral    ErrorCode = "malformed-literal"
	ErrUnbalancedBraces    ErrorCode = "unbalanced-braces"
	ErrUnterminatedString  ErrorCode = "unterminated-string"
	ErrUnterminatedComment ErrorCode = "unterminated-comment"
	ErrDuplicatePropertyKey ErrorCode = "duplicate-property-key"
)

// ParseError is the single error type produced anywhere in this package.
// It always carries the position the failure was detected at, except for
// genuine end-of-buffer conditions where Position is the zero value and
// IsEOF is set.
type ParseError struct {
	Code     ErrorCode
	Message  string
	Position PositionRange
	IsEOF    bool
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.IsEOF {
		return fmt.Sprintf("%s: %s (at end of input)", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s at %s", e.Code, e.Message, e.Position.Start)
}

// newParseError builds a ParseError positioned at pos.
func newParseError(code ErrorCode, message string, pos PositionRange) *ParseError {
	return &ParseError{Code: code, Message: message, Position: pos}
}

// newParseErrorEOF builds a ParseError for an end-of-buffer condition.
func newParseErrorEOF(code ErrorCode, message string) *ParseError {
	return &ParseError{Code: code, Message: message, IsEOF: true}
}

// errorList accumulates parse errors in encounter order and exposes them
// both as a combined error (for Parse's return value) and as a slice (for
// callers who want to enumerate every problem found during recovery).
//
// go.uber.org/multierr already gives Append/Errors/Combine semantics
// without a hand-rolled accumulator.
type errorList struct {
	err error
}

func (l *errorList) add(e error) {
	if e == nil {
		return
	}
	l.err = multierr.Append(l.err, e)
}

func (l *errorList) combined() error {
	return l.err
}

// asErrors returns every accumulated error in the order it was added.
func (l *errorList) asErrors() []error {
	return multierr.Errors(l.err)
}
