/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides fixture helpers shared by package tests.
package testutil

import (
	"flag"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/lukethacoder/lwc-module-resolver/internal/mapfs"
)

var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataCandidates lists where rel may live relative to a package under test.
func testdataCandidates(rel string) []string {
	return []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
}

// findTestdata returns the first candidate for rel that exists.
func findTestdata(rel string) (string, bool) {
	for _, path := range testdataCandidates(rel) {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// NewFixtureFS copies the files under testdata/<fixtureDir> into an in-memory
// filesystem rooted at rootPath. Empty directories are kept.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	src, ok := findTestdata(fixtureDir)
	if !ok {
		t.Fatalf("fixture %s not found", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(rootPath, rel)

		if d.IsDir() {
			mfs.AddDir(target, 0755)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		mfs.AddFile(target, string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixture %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile returns the content of testdata/<fixturePath>.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	path, ok := findTestdata(fixturePath)
	if !ok {
		t.Fatalf("fixture %s not found", fixturePath)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}
	return content
}

// UpdateGoldenFile overwrites testdata/<goldenPath> with actual when the
// tests run with -update.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	target := testdataCandidates(goldenPath)[0]
	for _, path := range testdataCandidates(goldenPath) {
		if _, err := os.Stat(filepath.Dir(path)); err == nil {
			target = path
			break
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("creating directory for golden file %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("writing golden file %s: %v", goldenPath, err)
	}
	t.Logf("updated golden file %s", target)
}

// WriteTree writes files, keyed by slash-separated path, below root on the
// OS filesystem.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for _, name := range slices.Sorted(maps.Keys(files)) {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			t.Fatal(err)
		}
	}
}
