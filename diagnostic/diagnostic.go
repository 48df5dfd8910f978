/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diagnostic defines the structured events the resolver emits for
// conditions that are not errors: a record that legitimately does not apply
// to a specifier, or a candidate directory that is absent.
//
// Diagnostics are delivered to an Observer injected by the caller. The
// resolver never writes to stdout or stderr itself.
package diagnostic

import (
	"fmt"
	"sync"
)

const (
	// SeverityInfo marks an expected miss, e.g. a module directory that does
	// not exist under one of several configured roots.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a condition that is tolerated but likely a
	// configuration mistake.
	SeverityWarning Severity = "warning"
)

const (
	// CodeModuleDirNotFound is emitted when a directory record applies to the
	// specifier's shape but the module subdirectory does not exist.
	CodeModuleDirNotFound Code = "module_dir_not_found"
	// CodeCandidateDirNotFound is emitted when one entry of a multi-directory
	// record does not exist on disk.
	CodeCandidateDirNotFound Code = "candidate_dir_not_found"
	// CodeNamespaceMismatch is emitted when a namespaced multi-directory
	// record is asked for a specifier in another namespace.
	CodeNamespaceMismatch Code = "namespace_mismatch"
	// CodeSpecifierNotExposed is emitted when an npm record's package does
	// not expose the requested specifier.
	CodeSpecifierNotExposed Code = "specifier_not_exposed"
	// CodeSpecifierShape is emitted when a directory record is skipped because
	// the specifier has no name segment or no namespace to resolve against.
	CodeSpecifierShape Code = "specifier_shape_unsupported"
)

type (
	// Severity represents diagnostic severity.
	Severity string

	// Code is a machine-readable diagnostic identifier.
	Code string

	// Diagnostic is a structured resolution event.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g. "module_dir_not_found").
		Code Code
		// Message is the human-readable description.
		Message string
		// Specifier is the specifier being resolved when the event occurred.
		Specifier string
		// Path is the filesystem path the event concerns (optional).
		Path string
		// Scope is the root directory of the configuration in use.
		Scope string
	}

	// Observer receives diagnostics as they are produced.
	Observer interface {
		Observe(d Diagnostic)
	}

	// ObserverFunc adapts a function to the Observer interface.
	ObserverFunc func(d Diagnostic)
)

// Observe calls f(d).
func (f ObserverFunc) Observe(d Diagnostic) {
	f(d)
}

// String renders the diagnostic on a single line.
func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s [%s] %s", d.Severity, d.Code, d.Message)
	if d.Path != "" {
		s += " (" + d.Path + ")"
	}
	return s
}

// Discard is an Observer that drops every diagnostic.
var Discard Observer = ObserverFunc(func(Diagnostic) {})

// Collector accumulates diagnostics. It is safe for concurrent use so a
// single collector can be shared between resolution calls.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Observe implements Observer.
func (c *Collector) Observe(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a copy of everything observed so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Codes returns the codes of everything observed so far, in order.
func (c *Collector) Codes() []Code {
	c.mu.Lock()
	defer c.mu.Unlock()
	codes := make([]Code, len(c.diagnostics))
	for i, d := range c.diagnostics {
		codes[i] = d.Code
	}
	return codes
}

// Reset drops everything observed so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = nil
}
