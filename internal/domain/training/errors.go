package training

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownWorkoutKind   = errors.New("unknown workout kind")
	ErrInvalidArgumentCount = errors.New("invalid argument count")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// UnknownKindError reports a sensor package code that maps to no workout kind.
type UnknownKindError struct {
	Code string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWorkoutKind, e.Code)
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownWorkoutKind }

// ArgumentCountError reports a package whose reading count does not match its kind.
type ArgumentCountError struct {
	Kind     Kind
	Expected int
	Got      int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s: %s expects %d readings, got %d", ErrInvalidArgumentCount, e.Kind, e.Expected, e.Got)
}

func (e *ArgumentCountError) Unwrap() error { return ErrInvalidArgumentCount }

// ArgumentError reports a reading that violates a record invariant.
type ArgumentError struct {
	Kind   Kind
	Field  string
	Value  float64
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s=%g %s", ErrInvalidArgument, e.Kind, e.Field, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }
