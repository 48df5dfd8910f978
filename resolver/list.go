/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lukethacoder/lwc-module-resolver/config"
	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
)

const (
	// namespacedPattern matches entry files in a dir/<namespace>/<name> layout.
	namespacedPattern = "*/*/*.{js,ts,html,css}"
	// flatPattern matches entry files in a dir/<name> layout.
	flatPattern = "*/*.{js,ts,html,css}"
)

// List returns an entry for every specifier the configuration above fromDir
// can resolve, sorted by specifier. When more than one record provides a
// specifier the first one wins, as it does in ResolveModule.
func List(fromDir string, opts Options) ([]RegistryEntry, error) {
	fsys := opts.filesystem()

	rootDir, modules, err := loadModules(fsys, fromDir, opts.Config)
	if err != nil {
		return nil, err
	}

	r := newResolution(fsys, opts.observer())
	seen := make(map[string]bool)
	var entries []RegistryEntry

	for _, rec := range modules {
		specs, err := r.candidates(rec, rootDir)
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if seen[spec] {
				continue
			}
			entry, err := r.resolveRecord(spec, rec, rootDir)
			if err != nil {
				return nil, err
			}
			if entry == nil {
				continue
			}
			seen[spec] = true
			entries = append(entries, *entry)
		}
	}

	slices.SortFunc(entries, func(a, b RegistryEntry) int {
		return strings.Compare(a.Specifier, b.Specifier)
	})
	return entries, nil
}

// candidates returns the specifiers rec might resolve.
func (r *resolution) candidates(rec config.ModuleRecord, rootDir string) ([]string, error) {
	switch rec := rec.(type) {
	case *config.AliasRecord:
		if rec != nil {
			return []string{rec.Name}, nil
		}
	case *config.DirRecord:
		if rec != nil {
			return r.dirCandidates(rec, rootDir)
		}
	case *config.NPMRecord:
		if rec != nil {
			pkg, err := r.loadPackage(rec, rootDir)
			if err != nil {
				return nil, err
			}
			return pkg.exposed, nil
		}
	}
	return nil, config.NewError(rootDir, `Unknown module record "%s"`, config.RecordString(rec))
}

func (r *resolution) dirCandidates(rec *config.DirRecord, rootDir string) ([]string, error) {
	dirs := rec.Dirs
	if rec.Dir != "" {
		dirs = []string{rec.Dir}
	}

	pattern := namespacedPattern
	if rec.Namespace != "" {
		pattern = flatPattern
	}

	var specs []string
	for _, dir := range dirs {
		absDir := config.ResolvePath(rootDir, strings.TrimPrefix(dir, config.RootDirToken))
		if !lwcfs.IsDir(r.fs, absDir) {
			if rec.Dir != "" {
				return nil, config.NewError(rootDir, `Invalid dir module record "%s", directory %s doesn't exists`, config.RecordString(rec), absDir)
			}
			continue
		}

		matches, err := r.globEntries(absDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if spec, ok := specifierFor(m, rec.Namespace); ok && !slices.Contains(specs, spec) {
				specs = append(specs, spec)
			}
		}
	}
	return specs, nil
}

// globEntries walks baseDir and returns the slash-separated paths, relative
// to baseDir, that match pattern. Directories deeper than the pattern are
// not descended into.
func (r *resolution) globEntries(baseDir, pattern string) ([]string, error) {
	maxDepth := strings.Count(pattern, "/")
	root := path.Clean(strings.ReplaceAll(baseDir, "\\", "/"))

	var matches []string
	err := fs.WalkDir(r.fs, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		if rel == "" {
			return nil
		}

		if d.IsDir() {
			if strings.Count(rel, "/")+1 > maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// specifierFor maps an entry file path such as "c/card/card.js" (namespaced)
// or "card/card.js" (flat) to its specifier. Files whose base name differs
// from their directory are not entries.
func specifierFor(rel, namespace string) (string, bool) {
	parts := strings.Split(rel, "/")
	file := parts[len(parts)-1]
	name := parts[len(parts)-2]
	if strings.TrimSuffix(file, path.Ext(file)) != name {
		return "", false
	}

	if namespace != "" {
		return namespace + "/" + name, true
	}
	return parts[0] + "/" + name, true
}
