package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired      = errors.New("value is required")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrObjectNotFound       = errors.New("object not found")
	ErrTransitionNotAllowed = errors.New("transition is not allowed")
	ErrGenerationExhausted  = errors.New("identifier generation exhausted")
	ErrPersistenceFailed    = errors.New("persistence failed")
)

// sanitize strips line breaks from values embedded in error messages so a
// single log line cannot be split by attacker-controlled input.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// TransitionNotAllowedError indicates that an order status transition is not
// permitted from the current status. The order is left untouched.
type TransitionNotAllowedError struct {
	From  string
	To    string
	Cause error
}

// NewTransitionNotAllowedError creates a TransitionNotAllowedError for the attempted transition.
func NewTransitionNotAllowedError(from, to string) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to}
}

// NewTransitionNotAllowedErrorWithCause creates a TransitionNotAllowedError wrapping an underlying cause.
func NewTransitionNotAllowedErrorWithCause(from, to string, cause error) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to, Cause: cause}
}

func (e *TransitionNotAllowedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrTransitionNotAllowed, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrTransitionNotAllowed, e.From, e.To)
}

func (e *TransitionNotAllowedError) Unwrap() error {
	return ErrTransitionNotAllowed
}

// GenerationExhaustedError indicates that identifier generation gave up after
// the configured number of attempts. With an 8-character base-36 space this is
// effectively unreachable; the bound exists so generation can never spin forever.
type GenerationExhaustedError struct {
	Attempts int
	Cause    error
}

// NewGenerationExhaustedError creates a GenerationExhaustedError for the given attempt count.
func NewGenerationExhaustedError(attempts int) *GenerationExhaustedError {
	return &GenerationExhaustedError{Attempts: attempts}
}

func (e *GenerationExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: after %d attempts (cause: %s)", ErrGenerationExhausted, e.Attempts, e.Cause)
	}
	return fmt.Sprintf("%s: after %d attempts", ErrGenerationExhausted, e.Attempts)
}

func (e *GenerationExhaustedError) Unwrap() error {
	return ErrGenerationExhausted
}

// PersistenceFailedError indicates that a write to the backing store did not
// complete. Callers must treat the store state as needing reconciliation and
// must not report the operation as successful.
type PersistenceFailedError struct {
	Op    string
	Cause error
}

// NewPersistenceFailedError creates a PersistenceFailedError for the named operation.
func NewPersistenceFailedError(op string) *PersistenceFailedError {
	return &PersistenceFailedError{Op: op}
}

// NewPersistenceFailedErrorWithCause creates a PersistenceFailedError wrapping an underlying cause.
func NewPersistenceFailedErrorWithCause(op string, cause error) *PersistenceFailedError {
	return &PersistenceFailedError{Op: op, Cause: cause}
}

func (e *PersistenceFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailed, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailed, e.Op)
}

func (e *PersistenceFailedError) Unwrap() error {
	return ErrPersistenceFailed
}
