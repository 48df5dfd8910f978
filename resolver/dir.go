/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lukethacoder/lwc-module-resolver/config"
	"github.com/lukethacoder/lwc-module-resolver/diagnostic"
	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
	"github.com/lukethacoder/lwc-module-resolver/specifier"
)

// EntryExtensions are the entry file suffixes tried, in priority order, inside
// a module directory.
var EntryExtensions = []string{".js", ".ts", ".html", ".css"}

// resolveDir resolves spec against a single or multi-directory layout.
func (r *resolution) resolveDir(spec string, rec *config.DirRecord, rootDir string) (*RegistryEntry, error) {
	parsed := specifier.Parse(spec)
	if parsed.Name == "" || (!parsed.HasNamespace() && rec.Namespace == "") {
		r.observe(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityInfo,
			Code:      diagnostic.CodeSpecifierShape,
			Message:   fmt.Sprintf("specifier %q has no namespace/name pair to resolve", spec),
			Specifier: spec,
			Scope:     rootDir,
		})
		return nil, nil
	}

	if rec.Dir != "" {
		return r.probeDir(spec, parsed, rec, rec.Dir, rootDir, true)
	}

	if rec.Namespace != "" && parsed.Namespace != rec.Namespace {
		r.observe(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityInfo,
			Code:      diagnostic.CodeNamespaceMismatch,
			Message:   fmt.Sprintf("namespace %q does not match configured namespace %q", parsed.Namespace, rec.Namespace),
			Specifier: spec,
			Scope:     rootDir,
		})
		return nil, nil
	}

	var matches []*RegistryEntry
	for _, dir := range rec.Dirs {
		entry, err := r.probeDir(spec, parsed, rec, strings.TrimPrefix(dir, config.RootDirToken), rootDir, false)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			matches = append(matches, entry)
		}
	}

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}

	entries := make([]string, len(matches))
	for i, m := range matches {
		entries[i] = m.Entry
	}
	return nil, config.NewError(rootDir, `Invalid dir module record "%s", specifier "%s" resolves in more than one directory: %s`,
		config.RecordString(rec), spec, strings.Join(entries, ", "))
}

// probeDir looks for the module directory of parsed under dir. A missing dir
// is a configuration error when required, otherwise a miss.
func (r *resolution) probeDir(spec string, parsed specifier.Specifier, rec *config.DirRecord, dir, rootDir string, required bool) (*RegistryEntry, error) {
	absDir := config.ResolvePath(rootDir, dir)
	if !lwcfs.IsDir(r.fs, absDir) {
		if required {
			return nil, config.NewError(rootDir, `Invalid dir module record "%s", directory %s doesn't exists`, config.RecordString(rec), absDir)
		}
		r.observe(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityWarning,
			Code:      diagnostic.CodeCandidateDirNotFound,
			Message:   fmt.Sprintf("directory %s does not exist", absDir),
			Specifier: spec,
			Path:      absDir,
			Scope:     rootDir,
		})
		return nil, nil
	}

	moduleDir := moduleDirFor(absDir, parsed, rec.Namespace)
	if !lwcfs.IsDir(r.fs, moduleDir) {
		r.observe(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityInfo,
			Code:      diagnostic.CodeModuleDirNotFound,
			Message:   fmt.Sprintf("module directory %s does not exist", moduleDir),
			Specifier: spec,
			Path:      moduleDir,
			Scope:     rootDir,
		})
		return nil, nil
	}

	entry, err := r.moduleEntry(moduleDir, parsed.Name, rootDir)
	if err != nil {
		return nil, err
	}
	return newEntry(entry, spec, TypeDir, rootDir), nil
}

// moduleDirFor returns dir/name for flat layouts (a namespace is configured)
// and dir/namespace/name otherwise.
func moduleDirFor(dir string, parsed specifier.Specifier, namespace string) string {
	if namespace != "" {
		return filepath.Join(dir, parsed.Name)
	}
	return filepath.Join(dir, parsed.Namespace, parsed.Name)
}

// moduleEntry returns the first existing entry file of moduleDir.
func (r *resolution) moduleEntry(moduleDir, name, rootDir string) (string, error) {
	for _, ext := range EntryExtensions {
		entry := filepath.Join(moduleDir, name+ext)
		if lwcfs.IsFile(r.fs, entry) {
			return entry, nil
		}
	}
	return "", config.NewError(rootDir, `Unable to find a valid entry point for "%s/%s"`, moduleDir, name)
}
