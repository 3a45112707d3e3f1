package parser

import (
	"errors"
	"fmt"
)

// ParseError represents a failure to parse an SVG transform attribute.
//
// Parse errors include:
//   - Unparseable input: no transform functions found, or leftover text
//     between or after functions
//   - Unknown transform type: function name outside the fixed set of six
//   - Arity violations: zero parameters, too many parameters, rotate
//     with two parameters, matrix with other than six
//
// ParseError includes structured fields for diagnostics.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the offending raw text (for unparseable input).
	Input string

	// Name is the transform function name involved, when known.
	Name string

	// Count is the offending parameter count, when relevant.
	Count int
}

// ParseErrorCode categorizes parse errors.
type ParseErrorCode string

const (
	// ErrCodeUnparseableInput indicates no transform functions were
	// recognized, or unmatched text remained between or after matches.
	ErrCodeUnparseableInput ParseErrorCode = "UNPARSEABLE_INPUT"

	// ErrCodeUnknownTransformType indicates a function name outside
	// scale, translate, rotate, skewX, skewY, matrix.
	ErrCodeUnknownTransformType ParseErrorCode = "UNKNOWN_TRANSFORM_TYPE"

	// ErrCodeNoParameters indicates a recognized function with zero
	// numeric arguments.
	ErrCodeNoParameters ParseErrorCode = "NO_PARAMETERS"

	// ErrCodeTooManyParameters indicates an argument count above the
	// function's maximum.
	ErrCodeTooManyParameters ParseErrorCode = "TOO_MANY_PARAMETERS"

	// ErrCodeInvalidRotateArity indicates rotate given exactly two
	// arguments (valid counts are 1 and 3).
	ErrCodeInvalidRotateArity ParseErrorCode = "INVALID_ROTATE_ARITY"

	// ErrCodeInvalidMatrixArity indicates matrix given other than six
	// arguments.
	ErrCodeInvalidMatrixArity ParseErrorCode = "INVALID_MATRIX_ARITY"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Name != "" && e.Count > 0:
		return fmt.Sprintf("%s: %s (name=%s, count=%d)", e.Code, e.Message, e.Name, e.Count)
	case e.Name != "":
		return fmt.Sprintf("%s: %s (name=%s)", e.Code, e.Message, e.Name)
	case e.Input != "":
		return fmt.Sprintf("%s: %s (input=%q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the parse error code of err, or "" if err is not a
// ParseError. Uses errors.As to handle wrapped errors.
func CodeOf(err error) ParseErrorCode {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsUnparseableError returns true if the error reports unrecognizable
// or leftover input.
func IsUnparseableError(err error) bool {
	return CodeOf(err) == ErrCodeUnparseableInput
}

// IsUnknownTypeError returns true if the error reports an unknown
// transform function name.
func IsUnknownTypeError(err error) bool {
	return CodeOf(err) == ErrCodeUnknownTransformType
}

// NewUnparseableInputError creates a ParseError for input with no
// recognizable transform functions or with unmatched leftover text.
func NewUnparseableInputError(input string) *ParseError {
	return &ParseError{
		Code:    ErrCodeUnparseableInput,
		Message: "unable to parse transform string",
		Input:   input,
	}
}

// NewUnknownTypeError creates a ParseError for an unrecognized
// transform function name.
func NewUnknownTypeError(name string) *ParseError {
	return &ParseError{
		Code:    ErrCodeUnknownTransformType,
		Message: "unknown transform type",
		Name:    name,
	}
}

// NewNoParametersError creates a ParseError for a function with zero
// numeric arguments.
func NewNoParametersError(name string) *ParseError {
	return &ParseError{
		Code:    ErrCodeNoParameters,
		Message: "transform has no parameters",
		Name:    name,
	}
}

// NewTooManyParametersError creates a ParseError for an argument count
// above the function's maximum.
func NewTooManyParametersError(count int, name string) *ParseError {
	return &ParseError{
		Code:    ErrCodeTooManyParameters,
		Message: fmt.Sprintf("too many parameters (%d)", count),
		Name:    name,
		Count:   count,
	}
}

// NewInvalidRotateArityError creates a ParseError for rotate with
// exactly two arguments.
func NewInvalidRotateArityError() *ParseError {
	return &ParseError{
		Code:    ErrCodeInvalidRotateArity,
		Message: "rotate takes 1 or 3 parameters, never 2",
		Name:    "rotate",
		Count:   2,
	}
}

// NewInvalidMatrixArityError creates a ParseError for matrix with other
// than six arguments.
func NewInvalidMatrixArityError(count int) *ParseError {
	return &ParseError{
		Code:    ErrCodeInvalidMatrixArity,
		Message: fmt.Sprintf("matrix takes exactly 6 parameters, got %d", count),
		Name:    "matrix",
		Count:   count,
	}
}
