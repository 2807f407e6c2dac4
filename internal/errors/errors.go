// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidAsset indicates an asset definition that violates a
	// catalog invariant. Fatal at catalog construction.
	TypeInvalidAsset Type = "INVALID_ASSET"

	// TypeUnknownAsset indicates a serial number absent from the catalog
	TypeUnknownAsset Type = "UNKNOWN_ASSET"

	// TypeIncompatiblePairing indicates a camera rated against a drone
	// outside its compatibility set. A caller contract violation.
	TypeIncompatiblePairing Type = "INCOMPATIBLE_PAIRING"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidAsset creates an invalid asset definition error
func InvalidAsset(serial, reason string) *Error {
	return Newf(TypeInvalidAsset, "asset %s: %s", serial, reason).
		WithContext("serial_number", serial)
}

// UnknownAsset creates an unknown asset error
func UnknownAsset(kind, serial string) *Error {
	return Newf(TypeUnknownAsset, "%s not found: %s", kind, serial).
		WithContext("serial_number", serial)
}

// IncompatiblePairing creates an incompatible pairing error
func IncompatiblePairing(cameraSerial, droneSerial string) *Error {
	return Newf(TypeIncompatiblePairing, "camera %s is not compatible with drone %s", cameraSerial, droneSerial).
		WithContext("camera", cameraSerial).
		WithContext("drone", droneSerial)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
