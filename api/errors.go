// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-generics.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("container is empty")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeEmpty
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Is maps the code onto the package sentinels so errors.Is works on *Error.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return target == ErrInvalidArgument
	case ErrCodeOutOfRange:
		return target == ErrIndexOutOfRange
	case ErrCodeEmpty:
		return target == ErrEmpty
	}
	return false
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// OutOfRange builds the error returned by Container.At for a bad index.
func OutOfRange(index, length int) *Error {
	return NewError(ErrCodeOutOfRange, "index out of range").
		WithContext("index", index).
		WithContext("len", length)
}

// CheckIndex returns an OutOfRange error unless 0 <= index < length.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return OutOfRange(index, length)
	}
	return nil
}
