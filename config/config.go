/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the LWC module resolution configuration model:
// module records, the on-disk lwc config, root discovery, normalization
// of caller-supplied config, and merging with file-discovered config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RootDirToken may prefix entries of a DirRecord's Dirs list. It is stripped
// before the entry is resolved against the root directory.
const RootDirToken = "$rootDir/"

// LwcConfig is the shape of lwc.config.json and of the "lwc" field of
// package.json.
type LwcConfig struct {
	Modules ModuleRecords `json:"modules,omitempty" yaml:"modules,omitempty"`

	// Expose lists the specifiers a package makes available to consumers
	// that reference it through an npm record.
	Expose []string `json:"expose,omitempty" yaml:"expose,omitempty"`
}

// Partial is caller-supplied configuration. Both fields are optional.
type Partial struct {
	// RootDir is the directory relative dir paths are resolved against.
	// Defaults to the working directory.
	RootDir string        `json:"rootDir,omitempty" yaml:"rootDir,omitempty"`
	Modules ModuleRecords `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// ResolverConfig is a normalized configuration: RootDir is absolute and
// every dir record path is absolute.
type ResolverConfig struct {
	RootDir string
	Modules []ModuleRecord
}

// Normalize resolves p against its root directory. Scope is the directory
// reported in errors. The input is not modified.
func Normalize(p *Partial, scope string) (*ResolverConfig, error) {
	if p == nil {
		p = &Partial{}
	}

	var rootDir string
	if p.RootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		rootDir = wd
	} else {
		abs, err := filepath.Abs(p.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path %s: %w", p.RootDir, err)
		}
		rootDir = abs
	}

	modules, err := NormalizeRecords(p.Modules, rootDir, scope)
	if err != nil {
		return nil, err
	}

	return &ResolverConfig{RootDir: rootDir, Modules: modules}, nil
}

// NormalizeRecords returns a copy of records with dir record paths resolved
// against rootDir. A nil record is a configuration error reported in scope.
func NormalizeRecords(records []ModuleRecord, rootDir, scope string) ([]ModuleRecord, error) {
	out := make([]ModuleRecord, 0, len(records))
	for _, rec := range records {
		switch Classify(rec) {
		case KindUnknown:
			return nil, NewError(scope, "Invalid module record. Module record must be an object, instead got %s.", RecordString(rec))
		case KindDir:
			out = append(out, normalizeDirRecord(rec.(*DirRecord), rootDir))
		default:
			out = append(out, rec)
		}
	}
	return out, nil
}

func normalizeDirRecord(rec *DirRecord, rootDir string) *DirRecord {
	normalized := &DirRecord{Namespace: rec.Namespace}
	if rec.Dir != "" {
		normalized.Dir = ResolvePath(rootDir, rec.Dir)
	}
	if rec.Dirs != nil {
		normalized.Dirs = make([]string, len(rec.Dirs))
		for i, d := range rec.Dirs {
			normalized.Dirs[i] = ResolvePath(rootDir, strings.TrimPrefix(d, RootDirToken))
		}
	}
	return normalized
}

// ResolvePath resolves p against base unless p is already absolute.
func ResolvePath(base, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

// NormalizeDirName appends a trailing slash so that "a/b" and "a/b/" compare
// equal.
func NormalizeDirName(dir string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir
	}
	return dir + "/"
}

// Merge combines user-supplied records with records discovered on disk.
// User records come first and keep full precedence: a file record is kept
// only when no user record has the same alias name, directory or npm
// package name. Records are never merged field by field.
func Merge(user, file []ModuleRecord) []ModuleRecord {
	modules := append([]ModuleRecord(nil), user...)

	aliases := make(map[string]bool)
	dirs := make(map[string]bool)
	packages := make(map[string]bool)

	for _, rec := range user {
		if Classify(rec) == KindUnknown {
			continue
		}
		switch r := rec.(type) {
		case *AliasRecord:
			aliases[r.Name] = true
		case *DirRecord:
			for _, d := range dirPaths(r) {
				dirs[NormalizeDirName(d)] = true
			}
		case *NPMRecord:
			packages[r.NPM] = true
		}
	}

	for _, rec := range file {
		if Classify(rec) == KindUnknown {
			modules = append(modules, rec)
			continue
		}
		switch r := rec.(type) {
		case *AliasRecord:
			if aliases[r.Name] {
				continue
			}
		case *DirRecord:
			if shadowed(r, dirs) {
				continue
			}
		case *NPMRecord:
			if packages[r.NPM] {
				continue
			}
		}
		modules = append(modules, rec)
	}

	return modules
}

func dirPaths(r *DirRecord) []string {
	var paths []string
	if r.Dir != "" {
		paths = append(paths, r.Dir)
	}
	return append(paths, r.Dirs...)
}

func shadowed(r *DirRecord, dirs map[string]bool) bool {
	for _, d := range dirPaths(r) {
		if dirs[NormalizeDirName(d)] {
			return true
		}
	}
	return false
}
