/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"fmt"
)

// ErrorCode is the stable code carried by every configuration error.
const ErrorCode = "LWC_CONFIG_ERROR"

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig matches every *Error via errors.Is.
	ErrInvalidConfig = errors.New("invalid LWC configuration")

	// ErrMalformedRecord indicates a module record that is not an object or
	// whose fields have the wrong types.
	ErrMalformedRecord = errors.New("malformed module record")

	// ErrUnknownRecord indicates a module record that matches none of the
	// alias, dir or npm shapes.
	ErrUnknownRecord = errors.New("unknown module record")
)

// Error is a configuration error. Scope is the directory whose configuration
// is at fault.
type Error struct {
	Scope   string
	Message string
	// Cause is the underlying error, if any (e.g. a JSON syntax error).
	Cause error
}

// NewError creates a configuration error for scope.
func NewError(scope, format string, args ...any) *Error {
	return &Error{Scope: scope, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates a configuration error for scope caused by cause.
func WrapError(scope string, cause error, format string, args ...any) *Error {
	return &Error{Scope: scope, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	return fmt.Sprintf(`Invalid LWC configuration in "%s". %s`, e.Scope, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidConfig.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Code returns ErrorCode.
func (e *Error) Code() string {
	return ErrorCode
}
