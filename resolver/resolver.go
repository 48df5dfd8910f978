/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver maps LWC module specifiers such as "c/card" to source
// files on disk.
//
// Resolution starts from the directory of the importing file, walks up to
// the nearest package.json, loads that package's LWC configuration and tries
// each module record in order. The first record that produces an entry wins.
//
// A record that does not apply to a specifier is not an error: it returns no
// entry and emits a diagnostic. A record that is broken (a missing directory,
// a module directory with no entry file, an npm package that does not expose
// what it claims to) fails the whole call with a *config.Error.
package resolver

import (
	"path/filepath"

	"github.com/lukethacoder/lwc-module-resolver/config"
	"github.com/lukethacoder/lwc-module-resolver/diagnostic"
	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
	"github.com/lukethacoder/lwc-module-resolver/specifier"
)

// RegistryType is how an entry was resolved.
type RegistryType string

const (
	// TypeAlias is an entry produced by an alias record, or by an npm record
	// whose map renamed the specifier.
	TypeAlias RegistryType = "alias"
	// TypeDir is an entry found in a directory layout.
	TypeDir RegistryType = "dir"
)

// RegistryEntry is a resolved module.
type RegistryEntry struct {
	// Entry is the absolute path of the module's entry file.
	Entry string `json:"entry"`
	// Specifier is the specifier as requested.
	Specifier string `json:"specifier"`
	// Type is how the entry was resolved.
	Type RegistryType `json:"type"`
	// Scope is the root directory of the configuration that produced the
	// entry. For npm records this is the package directory.
	Scope string `json:"scope"`
}

// Options configures a resolution call. The zero value resolves against the
// OS filesystem using only on-disk configuration.
type Options struct {
	// FS is the filesystem to read. Defaults to the OS filesystem.
	FS lwcfs.FileSystem

	// Config holds caller-supplied records. They are normalized and take
	// precedence over records with the same alias name, directory or npm
	// package in the on-disk configuration.
	Config *config.Partial

	// Observer receives diagnostics for records that did not apply.
	// Defaults to diagnostic.Discard.
	Observer diagnostic.Observer
}

func (o Options) filesystem() lwcfs.FileSystem {
	if o.FS == nil {
		return lwcfs.NewOSFileSystem()
	}
	return o.FS
}

func (o Options) observer() diagnostic.Observer {
	if o.Observer == nil {
		return diagnostic.Discard
	}
	return o.Observer
}

// ResolveModule resolves importee as imported from a file in fromDir.
//
// It returns an *ArgumentError for relative or absolute importees, a
// *config.Error when the configuration is invalid or a record is broken,
// and a *NotFoundError when no record resolves the importee.
func ResolveModule(importee, fromDir string, opts Options) (*RegistryEntry, error) {
	if !specifier.IsModuleName(importee) {
		return nil, &ArgumentError{Argument: "importee", Value: importee}
	}

	fsys := opts.filesystem()

	rootDir, modules, err := loadModules(fsys, fromDir, opts.Config)
	if err != nil {
		return nil, err
	}

	r := newResolution(fsys, opts.observer())
	for _, rec := range modules {
		entry, err := r.resolveRecord(importee, rec, rootDir)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return entry, nil
		}
	}

	return nil, &NotFoundError{Importee: importee, Importer: fromDir}
}

// loadModules finds the configuration root above fromDir and returns it with
// the merged, normalized module records.
func loadModules(fsys lwcfs.FileSystem, fromDir string, user *config.Partial) (string, []config.ModuleRecord, error) {
	absFrom, err := filepath.Abs(fromDir)
	if err != nil {
		return "", nil, err
	}

	rootDir, err := config.FindRoot(fsys, absFrom)
	if err != nil {
		return "", nil, err
	}

	lwcConfig, err := config.Load(fsys, rootDir)
	if err != nil {
		return "", nil, err
	}

	modules, err := config.NormalizeRecords(lwcConfig.Modules, rootDir, rootDir)
	if err != nil {
		return "", nil, err
	}

	if user != nil {
		userConfig, err := config.Normalize(user, rootDir)
		if err != nil {
			return "", nil, err
		}
		modules = config.Merge(userConfig.Modules, modules)
	}

	return rootDir, modules, nil
}

// resolution is the state of a single ResolveModule or List call.
type resolution struct {
	fs       lwcfs.FileSystem
	observer diagnostic.Observer

	// stack holds the npm packages on the current resolution path,
	// outermost first.
	stack []activePackage
}

type activePackage struct {
	dir  string
	name string
}

func newResolution(fsys lwcfs.FileSystem, observer diagnostic.Observer) *resolution {
	return &resolution{
		fs:       fsys,
		observer: observer,
	}
}

// findCycle returns the package names from the first visit of dir to name,
// or nil when dir is not on the resolution path.
func (r *resolution) findCycle(dir, name string) []string {
	for i, p := range r.stack {
		if p.dir != dir {
			continue
		}
		cycle := make([]string, 0, len(r.stack)-i+1)
		for _, q := range r.stack[i:] {
			cycle = append(cycle, q.name)
		}
		return append(cycle, name)
	}
	return nil
}

// resolveRecord dispatches to the strategy for rec's kind. A nil entry with
// a nil error means the record does not apply to spec.
func (r *resolution) resolveRecord(spec string, rec config.ModuleRecord, rootDir string) (*RegistryEntry, error) {
	switch config.Classify(rec) {
	case config.KindAlias:
		return r.resolveAlias(spec, rec.(*config.AliasRecord), rootDir)
	case config.KindDir:
		return r.resolveDir(spec, rec.(*config.DirRecord), rootDir)
	case config.KindNPM:
		return r.resolveNPM(spec, rec.(*config.NPMRecord), rootDir)
	}
	return nil, config.NewError(rootDir, `Unknown module record "%s"`, config.RecordString(rec))
}

func (r *resolution) observe(d diagnostic.Diagnostic) {
	r.observer.Observe(d)
}

func newEntry(entry, spec string, typ RegistryType, rootDir string) *RegistryEntry {
	return &RegistryEntry{
		Entry:     entry,
		Specifier: spec,
		Type:      typ,
		Scope:     rootDir,
	}
}
