/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier parses LWC module specifiers and locates npm packages
// on the node_modules search path.
package specifier

import "strings"

// Specifier is a parsed "namespace/name" module specifier.
type Specifier struct {
	// Namespace is the first path segment (e.g. "c" in "c/card").
	Namespace string

	// Name is the second path segment (e.g. "card" in "c/card").
	// Empty when the specifier has a single segment.
	Name string

	// Raw is the original specifier string.
	Raw string
}

// Parse splits spec on "/" into namespace and name. Only the first two
// segments are used: "a/b/c" parses as namespace "a", name "b".
func Parse(spec string) Specifier {
	parts := strings.SplitN(spec, "/", 3)

	s := Specifier{Namespace: parts[0], Raw: spec}
	if len(parts) > 1 {
		s.Name = parts[1]
	}
	return s
}

// HasNamespace returns true if the specifier carries a namespace segment.
func (s Specifier) HasNamespace() bool {
	return s.Namespace != ""
}

// IsModuleName returns false for relative and absolute import paths, which
// are never resolved as LWC modules.
func IsModuleName(spec string) bool {
	return !strings.HasPrefix(spec, ".") && !strings.HasPrefix(spec, "/")
}
