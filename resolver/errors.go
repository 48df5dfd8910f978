/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"
)

// NotFoundCode is the stable code carried by NotFoundError.
const NotFoundCode = "NO_LWC_MODULE_FOUND"

// Sentinel errors for resolution.
var (
	// ErrInvalidArgument matches every *ArgumentError via errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrModuleNotFound matches every *NotFoundError via errors.Is.
	ErrModuleNotFound = errors.New("no LWC module found")
)

// ArgumentError reports a malformed call, such as a relative importee.
// It is returned before the filesystem is touched.
type ArgumentError struct {
	Argument string
	Value    string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("The %s argument must be a valid LWC module name. Received %q", e.Argument, e.Value)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError is returned when every configured record was tried and none
// resolved the importee.
type NotFoundError struct {
	Importee string
	Importer string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(`Unable to resolve "%s" from "%s"`, e.Importee, e.Importer)
}

// Is reports whether target is ErrModuleNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}

// Code returns NotFoundCode.
func (e *NotFoundError) Code() string {
	return NotFoundCode
}
