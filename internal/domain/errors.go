package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for broad classification. OpError matches the sentinel of
// its Kind through errors.Is.
var (
	ErrInvalidIdentifier    = errors.New("invalid identifier")
	ErrNotFound             = errors.New("not found")
	ErrTransient            = errors.New("transient upstream failure")
	ErrMalformedResponse    = errors.New("malformed response")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrMalformedField       = errors.New("malformed field")
	ErrInvalidConfig        = errors.New("invalid config")
	ErrExecution            = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidIdentifier    ErrorKind = "invalid_identifier"
	KindNotFound             ErrorKind = "not_found"
	KindTransient            ErrorKind = "transient"
	KindMalformedResponse    ErrorKind = "malformed_response"
	KindMissingRequiredField ErrorKind = "missing_required_field"
	KindMalformedField       ErrorKind = "malformed_field"
	KindInvalidConfig        ErrorKind = "invalid_config"
	KindExecution            ErrorKind = "execution"
)

// ErrorClass groups kinds by the boundary that produced them.
type ErrorClass string

const (
	ClassIdentifier ErrorClass = "identifier"
	ClassFetch      ErrorClass = "fetch"
	ClassMapping    ErrorClass = "mapping"
	ClassOther      ErrorClass = "other"
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidIdentifier:    ErrInvalidIdentifier,
	KindNotFound:             ErrNotFound,
	KindTransient:            ErrTransient,
	KindMalformedResponse:    ErrMalformedResponse,
	KindMissingRequiredField: ErrMissingRequiredField,
	KindMalformedField:       ErrMalformedField,
	KindInvalidConfig:        ErrInvalidConfig,
	KindExecution:            ErrExecution,
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Field string // Optional: document field (mapping) or config key
	Path  string // Optional: relevant file path or identifier

	// Fetch details; zero when not applicable.
	Status   int
	Attempts int

	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Status != 0 {
		base += fmt.Sprintf(" (status=%d)", e.Status)
	}
	if e.Attempts > 1 {
		base += fmt.Sprintf(" (attempts=%d)", e.Attempts)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in the chain, or
// KindExecution for foreign errors.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindExecution
}

// ClassOf maps an error to the taxonomy branch a caller switches on.
func ClassOf(err error) ErrorClass {
	if err == nil {
		return ""
	}
	switch KindOf(err) {
	case KindInvalidIdentifier:
		return ClassIdentifier
	case KindNotFound, KindTransient, KindMalformedResponse:
		return ClassFetch
	case KindMissingRequiredField, KindMalformedField:
		return ClassMapping
	default:
		return ClassOther
	}
}

// IsRetryable reports whether a fetch error may succeed on another attempt.
// Caller cancellation is never retryable even though it surfaces as transient.
func IsRetryable(err error) bool {
	if !IsKind(err, KindTransient) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// InvalidIdentifier builds the Identifier Model failure.
func InvalidIdentifier(input, reason string) error {
	return &OpError{
		Op:   "identifier.parse",
		Kind: KindInvalidIdentifier,
		Path: input,
		Err:  errors.New(reason),
	}
}

// MissingField builds a mapping failure for a mandatory field that cannot be derived.
func MissingField(field string) error {
	return &OpError{
		Op:    "mapping.map",
		Kind:  KindMissingRequiredField,
		Field: field,
	}
}

// MalformedField builds a mapping failure for a field with an incompatible shape.
func MalformedField(field, reason string) error {
	return &OpError{
		Op:    "mapping.map",
		Kind:  KindMalformedField,
		Field: field,
		Err:   errors.New(reason),
	}
}
