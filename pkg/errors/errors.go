// Package errors provides structured error reporting for the UI core.
//
// Recoverable failures (stylesheet parsing, option loading) are returned
// as wrapped errors. Contract violations (stale handle borrows, put-back
// into an occupied slot) are unrecoverable: they are reported to the
// global handler and then raised as a panic, since continuing would
// corrupt the widget tree.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindArena indicates a node arena contract violation.
	KindArena
	// KindLayout indicates a layout pass failure.
	KindLayout
	// KindDraw indicates a drawing context misuse.
	KindDraw
	// KindStyle indicates a stylesheet load or apply failure.
	KindStyle
	// KindConfig indicates an options load failure.
	KindConfig
	// KindInput indicates an input translation failure.
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindArena:
		return "arena"
	case KindLayout:
		return "layout"
	case KindDraw:
		return "draw"
	case KindStyle:
		return "style"
	case KindConfig:
		return "config"
	case KindInput:
		return "input"
	default:
		return "unknown"
	}
}

// UIError represents a structured error in the UI core.
type UIError struct {
	// Op is the operation that failed (e.g., "arena.Borrow").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// New constructs a UIError with the current stack trace attached.
func New(op string, kind Kind, err error) *UIError {
	return &UIError{
		Op:         op,
		Kind:       kind,
		Err:        err,
		StackTrace: captureStack(),
		Timestamp:  time.Now(),
	}
}

// Newf constructs a UIError from a format string.
func Newf(op string, kind Kind, format string, args ...any) *UIError {
	return New(op, kind, fmt.Errorf(format, args...))
}

// Fatal reports a contract violation to the global handler and panics
// with the structured error. It never returns.
func Fatal(op string, kind Kind, format string, args ...any) {
	err := Newf(op, kind, format, args...)
	Report(err)
	panic(err)
}
