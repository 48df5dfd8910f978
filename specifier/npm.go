/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
)

// NodeModules is the directory npm installs packages into.
const NodeModules = "node_modules"

// ErrPackageNotFound is returned when no node_modules directory on the search
// path contains the requested package.
var ErrPackageNotFound = errors.New("npm package not found")

// Package is an installed npm package.
type Package struct {
	// Name is the package name (e.g. "@scope/pkg" or "pkg").
	Name string

	// Dir is the package directory. Symlinks are preserved, so for a
	// linked package this is the path inside node_modules, not the target.
	Dir string

	// Manifest is the path of the package's package.json.
	Manifest string
}

// PackageLocator finds npm packages by walking up from a base directory,
// checking each ancestor's node_modules.
type PackageLocator struct {
	fs      lwcfs.FileSystem
	baseDir string
}

// NewPackageLocator creates a locator rooted at baseDir.
func NewPackageLocator(fs lwcfs.FileSystem, baseDir string) *PackageLocator {
	return &PackageLocator{
		fs:      fs,
		baseDir: baseDir,
	}
}

// Locate finds the nearest installed copy of the named package.
// It returns an error wrapping ErrPackageNotFound when the search path is
// exhausted; any other filesystem error is returned as is.
func (l *PackageLocator) Locate(name string) (*Package, error) {
	if !isPackageName(name) {
		return nil, fmt.Errorf("%w: invalid package name %q", ErrPackageNotFound, name)
	}

	dir := l.baseDir
	if !filepath.IsAbs(dir) {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = absDir
	}

	startDir := dir

	for {
		// node_modules/node_modules is never a valid search location
		if filepath.Base(dir) != NodeModules {
			pkgDir := filepath.Join(dir, NodeModules, filepath.FromSlash(name))
			manifest := filepath.Join(pkgDir, "package.json")

			_, err := l.fs.Stat(manifest)
			switch {
			case err == nil:
				return &Package{Name: name, Dir: pkgDir, Manifest: manifest}, nil
			case !errors.Is(err, fs.ErrNotExist) && !errors.Is(err, syscall.ENOTDIR):
				return nil, err
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, fmt.Errorf("%w: %s (looked in node_modules starting from %s)", ErrPackageNotFound, name, startDir)
}

// isPackageName rejects names that would escape node_modules.
func isPackageName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "/") {
		return false
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return false
		}
	}
	return true
}
