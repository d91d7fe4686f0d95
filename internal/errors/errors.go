package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates client specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested rule entity was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to register an entity that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeInvalidDie indicates a die declared with zero or negative sides
	CodeInvalidDie Code = "invalid_die"

	// CodeDivisionByZero indicates an arithmetic modifier with a zero divisor
	CodeDivisionByZero Code = "division_by_zero"

	// CodeMissingAbilityScore indicates a creature has no score for the requested ability
	CodeMissingAbilityScore Code = "missing_ability_score"

	// CodeUnresolvedRollSet indicates no modifier in a roll set produced a total
	CodeUnresolvedRollSet Code = "unresolved_roll_set"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var ruleErr *Error
	if errors.As(err, &ruleErr) {
		return &Error{
			Code:    ruleErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(ruleErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// InvalidDie creates an error for a die with an unusable side count
func InvalidDie(sides int) *Error {
	return Newf(CodeInvalidDie, "die must have at least one side, got %d", sides).
		WithMeta("sides", sides)
}

// DivisionByZero creates an error for a modifier that would divide by zero
func DivisionByZero(modifier string) *Error {
	return Newf(CodeDivisionByZero, "%s: divisor must not be zero", modifier).
		WithMeta("modifier", modifier)
}

// MissingAbilityScore creates an error for an ability the creature has no score for
func MissingAbilityScore(abilityID string) *Error {
	return Newf(CodeMissingAbilityScore, "no score recorded for %s", abilityID).
		WithMeta("ability", abilityID)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var ruleErr *Error
	if errors.As(err, &ruleErr) {
		return ruleErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsInvalidDie checks if the error is an invalid die error
func IsInvalidDie(err error) bool {
	return Is(err, CodeInvalidDie)
}

// IsDivisionByZero checks if the error is a division by zero error
func IsDivisionByZero(err error) bool {
	return Is(err, CodeDivisionByZero)
}

// IsMissingAbilityScore checks if the error is a missing ability score error
func IsMissingAbilityScore(err error) bool {
	return Is(err, CodeMissingAbilityScore)
}

// IsUnresolvedRollSet checks if the error reports a roll set without a total
func IsUnresolvedRollSet(err error) bool {
	return Is(err, CodeUnresolvedRollSet)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var ruleErr *Error
	if errors.As(err, &ruleErr) {
		return ruleErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var ruleErr *Error
	if errors.As(err, &ruleErr) {
		return ruleErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
