package logbook

import (
	"errors"
	"fmt"
)

// ErrMalformedDate marks a date header that is not a real calendar date.
var ErrMalformedDate = errors.New("malformed date")

// ErrMalformedTime marks a time range with out-of-range or inverted components.
var ErrMalformedTime = errors.New("malformed time range")

// MalformedDateError reports which date token failed to parse.
type MalformedDateError struct {
	Token string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrMalformedDate, e.Token, e.Err)
}

func (e *MalformedDateError) Unwrap() []error {
	return []error{ErrMalformedDate, e.Err}
}

// MalformedTimeError reports an invalid time range token and where it appeared.
type MalformedTimeError struct {
	Token  string
	Line   int
	Reason string
}

func (e *MalformedTimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q: %s", e.Line, ErrMalformedTime, e.Token, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrMalformedTime, e.Token, e.Reason)
}

func (e *MalformedTimeError) Unwrap() error {
	return ErrMalformedTime
}
