package stl

import (
	"errors"
	"fmt"
)

// Sentinel targets for the four ways a parse can fail. Every error
// returned by this package matches exactly one of them under errors.Is.
var (
	// ErrMalformedNumber indicates a field expected to hold a
	// floating-point value did not parse as one.
	ErrMalformedNumber = errors.New("stl: malformed number")
	// ErrUnexpectedToken indicates a structural keyword appeared in a
	// position the grammar does not permit.
	ErrUnexpectedToken = errors.New("stl: unexpected token")
	// ErrTruncatedInput indicates the input ended before the document
	// was complete.
	ErrTruncatedInput = errors.New("stl: truncated input")
	// ErrSourceUnavailable indicates the chunk source itself failed
	// before the parse could finish.
	ErrSourceUnavailable = errors.New("stl: source unavailable")
)

// ParseError describes why a parse was aborted. Parses never recover:
// the first error is terminal and no partial Document is returned.
type ParseError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Token holds the offending field text, when there is one.
	Token string
	// Offset is the byte offset of the offending field in the overall
	// input, or -1 when no position applies.
	Offset int
	// Expected describes what the grammar allowed at this position.
	Expected string
	// Err is the underlying failure for source errors.
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error()
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at byte %d", e.Offset)
	}
	if e.Expected != "" {
		msg += ", expecting " + e.Expected
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is match the error's kind sentinel.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap exposes the underlying source failure, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformedNumber(token string, offset int) *ParseError {
	return &ParseError{Kind: ErrMalformedNumber, Token: token, Offset: offset, Expected: "a floating-point value"}
}

func unexpectedToken(token string, offset int, expected string) *ParseError {
	return &ParseError{Kind: ErrUnexpectedToken, Token: token, Offset: offset, Expected: expected}
}

func truncated(offset int, expected string) *ParseError {
	return &ParseError{Kind: ErrTruncatedInput, Offset: offset, Expected: expected}
}

func sourceUnavailable(err error) *ParseError {
	return &ParseError{Kind: ErrSourceUnavailable, Offset: -1, Err: err}
}
