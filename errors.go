package bookdex

import (
	"errors"
	"fmt"

	"github.com/bookdex/bookdex/filter"
	"github.com/bookdex/bookdex/model"
)

var (
	// ErrInvalidArgument is wrapped by every construction-time validation
	// failure, so callers can match the whole class with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrInvalidRange indicates a range filter whose lower bound exceeds its
// upper bound.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidRange struct {
	Field model.Field
	Min   float64
	Max   float64
	cause error
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid %s range: min %v greater than max %v", e.Field, e.Min, e.Max)
}

func (e *ErrInvalidRange) Unwrap() error { return e.cause }

// ErrInvalidRecord indicates a record rejected during construction.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidRecord struct {
	Index  int
	ID     string
	Reason string
	cause  error
}

func (e *ErrInvalidRecord) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid record at index %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid record %q at index %d: %s", e.ID, e.Index, e.Reason)
}

func (e *ErrInvalidRecord) Unwrap() error { return e.cause }

// ErrInvalidOption indicates a rejected configuration value.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidOption struct {
	Option string
	Reason string
	cause  error
}

func (e *ErrInvalidOption) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}

func (e *ErrInvalidOption) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Range normalization.
	var ir *filter.ErrInvalidRange
	if errors.As(err, &ir) {
		return &ErrInvalidRange{
			Field: ir.Field,
			Min:   ir.Min,
			Max:   ir.Max,
			cause: fmt.Errorf("%w: %w", ErrInvalidArgument, err),
		}
	}

	return err
}
