/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
	"github.com/lukethacoder/lwc-module-resolver/internal/mapfs"
)

func TestPackageLocator_ScopedPackage(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/@acme/ui/package.json", `{"name":"@acme/ui"}`, 0644)

	pkg, err := NewPackageLocator(mfs, "/project").Locate("@acme/ui")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.Name != "@acme/ui" {
		t.Errorf("Name = %q, want %q", pkg.Name, "@acme/ui")
	}
	if pkg.Dir != "/project/node_modules/@acme/ui" {
		t.Errorf("Dir = %q, want %q", pkg.Dir, "/project/node_modules/@acme/ui")
	}
	if pkg.Manifest != "/project/node_modules/@acme/ui/package.json" {
		t.Errorf("Manifest = %q, want %q", pkg.Manifest, "/project/node_modules/@acme/ui/package.json")
	}
}

func TestPackageLocator_UnscopedPackage(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/lwc-recipes/package.json", `{}`, 0644)

	pkg, err := NewPackageLocator(mfs, "/project").Locate("lwc-recipes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.Dir != "/project/node_modules/lwc-recipes" {
		t.Errorf("Dir = %q, want %q", pkg.Dir, "/project/node_modules/lwc-recipes")
	}
}

func TestPackageLocator_WalksUpDirectoryTree(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/workspace/node_modules/shared/package.json", `{}`, 0644)
	mfs.AddDir("/workspace/packages/app/src", 0755)

	pkg, err := NewPackageLocator(mfs, "/workspace/packages/app/src").Locate("shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.Dir != "/workspace/node_modules/shared" {
		t.Errorf("Dir = %q, want %q", pkg.Dir, "/workspace/node_modules/shared")
	}
}

func TestPackageLocator_NearestWins(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/workspace/node_modules/shared/package.json", `{}`, 0644)
	mfs.AddFile("/workspace/packages/app/node_modules/shared/package.json", `{}`, 0644)

	pkg, err := NewPackageLocator(mfs, "/workspace/packages/app").Locate("shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pkg.Dir != "/workspace/packages/app/node_modules/shared" {
		t.Errorf("Dir = %q, want nearest copy", pkg.Dir)
	}
}

func TestPackageLocator_DirectoryWithoutManifest(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/node_modules/shared/index.js", `export default {}`, 0644)

	_, err := NewPackageLocator(mfs, "/project").Locate("shared")
	if !errors.Is(err, ErrPackageNotFound) {
		t.Fatalf("expected ErrPackageNotFound, got %v", err)
	}
}

func TestPackageLocator_NotFound(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddDir("/project", 0755)

	_, err := NewPackageLocator(mfs, "/project").Locate("missing-pkg")
	if err == nil {
		t.Fatal("expected error for missing package")
	}
	if !errors.Is(err, ErrPackageNotFound) {
		t.Errorf("expected ErrPackageNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing-pkg") {
		t.Errorf("error should mention package name, got %q", err.Error())
	}
}

func TestPackageLocator_InvalidNames(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/package.json", `{}`, 0644)

	for _, name := range []string{"", "../project", "./x", "/abs", "@scope//pkg"} {
		t.Run(name, func(t *testing.T) {
			_, err := NewPackageLocator(mfs, "/project/node_modules").Locate(name)
			if !errors.Is(err, ErrPackageNotFound) {
				t.Errorf("Locate(%q) error = %v, want ErrPackageNotFound", name, err)
			}
		})
	}
}

// statErrorFS fails every Stat with err.
type statErrorFS struct {
	lwcfs.FileSystem
	err error
}

func (f statErrorFS) Stat(string) (fs.FileInfo, error) {
	return nil, f.err
}

func TestPackageLocator_PropagatesOtherErrors(t *testing.T) {
	boom := errors.New("permission denied")
	fsys := statErrorFS{FileSystem: mapfs.New(), err: boom}

	_, err := NewPackageLocator(fsys, "/project").Locate("shared")
	if !errors.Is(err, boom) {
		t.Fatalf("expected underlying error, got %v", err)
	}
	if errors.Is(err, ErrPackageNotFound) {
		t.Error("other lookup errors must not be reported as not found")
	}
}

func TestPackageLocator_PreservesSymlinks(t *testing.T) {
	root := t.TempDir()

	target := filepath.Join(root, "packages", "ui")
	if err := os.MkdirAll(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "package.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	project := filepath.Join(root, "app")
	if err := os.MkdirAll(filepath.Join(project, NodeModules), 0755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(project, NodeModules, "ui")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	pkg, err := NewPackageLocator(lwcfs.NewOSFileSystem(), project).Locate("ui")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Dir != link {
		t.Errorf("Dir = %q, want symlink path %q", pkg.Dir, link)
	}
}
