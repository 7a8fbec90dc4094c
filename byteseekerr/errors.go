// Package byteseekerr defines the error kinds shared across byteseek's
// matcher, compiler, window and search packages.
//
// "No match" is never an error: Matches methods return bool and Search
// methods return an absent position. These sentinels are for construction
// and I/O failures only.
package byteseekerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, matched with errors.Is against wrapping errors
// returned by constructors across the module.
var (
	// ErrInvalidArgument indicates a nil/empty input, a negative repeat
	// count, or another argument a constructor refuses outright.
	ErrInvalidArgument = errors.New("byteseek: invalid argument")

	// ErrIndexOutOfBounds indicates an index-based accessor (matcher_at,
	// subsequence, ...) was called outside a matcher's valid range.
	ErrIndexOutOfBounds = errors.New("byteseek: index out of bounds")

	// ErrParse indicates malformed pattern text.
	ErrParse = errors.New("byteseek: parse error")

	// ErrCompile indicates a pattern tree the compiler cannot turn into a
	// matcher: an unknown node kind, an empty alternation, an
	// unquantifiable target.
	ErrCompile = errors.New("byteseek: compile error")

	// ErrIO indicates a WindowReader failure reaching the underlying
	// byte source.
	ErrIO = errors.New("byteseek: i/o error")
)

// ArgumentError wraps ErrInvalidArgument with the offending value's context.
type ArgumentError struct {
	What string
	Err  error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("byteseek: invalid argument: %s: %v", e.What, e.Err)
	}
	return fmt.Sprintf("byteseek: invalid argument: %s", e.What)
}

func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

// NewArgumentError builds an ArgumentError describing what was invalid.
func NewArgumentError(what string) error {
	return &ArgumentError{What: what}
}

// ParseError wraps ErrParse with the position in the source text where
// parsing failed.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("byteseek: parse error at position %d: %s", e.Pos, e.Message)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// CompileError wraps ErrCompile with the node that could not be compiled.
type CompileError struct {
	Node    string
	Message string
}

func (e *CompileError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("byteseek: compile error at %s: %s", e.Node, e.Message)
	}
	return fmt.Sprintf("byteseek: compile error: %s", e.Message)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// IOError wraps ErrIO with the underlying cause from a WindowReader.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("byteseek: i/o error during %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
