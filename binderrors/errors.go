package binderrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnsupportedStyle indicates an unrecognized encoding style name.
	ErrUnsupportedStyle = errors.New("unsupported encoding style")

	// ErrEncoding indicates a style/explode/value-type combination that the
	// OpenAPI 3 serialization tables do not define.
	ErrEncoding = errors.New("invalid encoding combination")

	// ErrMissingPathParam indicates a path template placeholder with no
	// supplied value.
	ErrMissingPathParam = errors.New("missing path parameter")

	// ErrValidation indicates an object failed validation against a schema.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid configuration or input.
	ErrConfig = errors.New("configuration error")
)

// StyleError represents an unrecognized parameter encoding style.
// Style names are a closed set fixed by the OpenAPI 3 specification:
// simple/label/matrix for path parameters and
// form/spaceDelimited/pipeDelimited/deepObject for query parameters.
type StyleError struct {
	// Style is the unrecognized style name
	Style string
	// Location is the parameter location the style was used for ("path" or "query")
	Location string
}

// Error returns a human-readable error message.
func (e *StyleError) Error() string {
	msg := "unsupported encoding style"
	if e.Location != "" {
		msg = fmt.Sprintf("unsupported %s encoding style", e.Location)
	}
	if e.Style != "" {
		msg += fmt.Sprintf(": %q", e.Style)
	}
	return msg
}

// Unwrap returns nil as StyleError has no underlying cause.
func (e *StyleError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *StyleError) Is(target error) bool {
	return target == ErrUnsupportedStyle
}

// EncodingError represents a style/explode/value-type combination that the
// OpenAPI 3 serialization tables leave undefined, such as deepObject with a
// primitive value or pipeDelimited with an object.
type EncodingError struct {
	// Name is the parameter name being encoded
	Name string
	// Style is the requested encoding style
	Style string
	// Explode is the requested explode flag
	Explode bool
	// Message describes why the combination is invalid
	Message string
}

// Error returns a human-readable error message.
func (e *EncodingError) Error() string {
	msg := "invalid encoding combination"
	if e.Name != "" {
		msg += fmt.Sprintf(" for parameter %q", e.Name)
	}
	if e.Style != "" {
		msg += fmt.Sprintf(" (style: %s, explode: %t)", e.Style, e.Explode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as EncodingError has no underlying cause.
func (e *EncodingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// PathParamError represents a path template placeholder that has no supplied
// value at request-build time.
type PathParamError struct {
	// Template is the path template being formatted (e.g., "/users/{userId}")
	Template string
	// Name is the placeholder name with no value
	Name string
}

// Error returns a human-readable error message.
func (e *PathParamError) Error() string {
	msg := "missing path parameter"
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Template != "" {
		msg += " in template " + e.Template
	}
	return msg
}

// Unwrap returns nil as PathParamError has no underlying cause.
func (e *PathParamError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *PathParamError) Is(target error) bool {
	return target == ErrMissingPathParam
}

// ValidationError represents an object that failed validation against a
// composed operation schema or a type schema. The validator's structured
// violation is carried unchanged in Cause and reachable via errors.As.
type ValidationError struct {
	// ID is the descriptor id whose schema rejected the object
	ID string
	// Message provides additional context about the failure
	Message string
	// Cause is the validator's error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.ID != "" {
		msg += " for " + e.ID
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, unsupported
// document versions, and unresolved $ref pointers.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
