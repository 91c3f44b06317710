package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidRange is returned for a date selection that is not exactly
	// two bounds in non-decreasing order.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrEmptyInput is returned by ArgmaxBy on an empty table.
	ErrEmptyInput = errors.New("empty input")
)

// RangeError describes a malformed date selection.
type RangeError struct {
	Bounds []time.Time
}

func (e *RangeError) Error() string {
	if len(e.Bounds) != 2 {
		return fmt.Sprintf("%s: expected 2 bounds, got %d", ErrInvalidRange, len(e.Bounds))
	}
	return fmt.Sprintf("%s: start %s is after end %s", ErrInvalidRange,
		e.Bounds[0].Format(DateLayout), e.Bounds[1].Format(DateLayout))
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// ParseError is a date bound that is not a YYYY-MM-DD day. It matches both
// ErrInvalidRange and the underlying time parse error.
type ParseError struct {
	Value   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q as %s", ErrInvalidRange, e.Value, DateLayout)
}

func (e *ParseError) Unwrap() []error { return []error{ErrInvalidRange, e.Wrapped} }
