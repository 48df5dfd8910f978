/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukethacoder/lwc-module-resolver/config"
	"github.com/lukethacoder/lwc-module-resolver/internal/mapfs"
	"github.com/lukethacoder/lwc-module-resolver/testutil"
)

func TestList_Fixture(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/workspace", "/ws")

	entries, err := List("/ws/src", Options{FS: mfs})
	require.NoError(t, err)

	specs := make([]string, len(entries))
	for i, e := range entries {
		specs[i] = e.Specifier
	}
	assert.Equal(t, []string{"acme/button", "c/card", "c/list", "shared", "ui/icon", "x/foo", "y/bar"}, specs)

	// every listed entry resolves to the same place
	for _, e := range entries {
		resolved, err := ResolveModule(e.Specifier, "/ws/src", Options{FS: mfs})
		require.NoError(t, err, e.Specifier)
		assert.Equal(t, e, *resolved)
	}
}

func TestList_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/workspace", "/ws")

	entries, err := List("/ws", Options{FS: mfs})
	require.NoError(t, err)

	actual, err := json.MarshalIndent(entries, "", "  ")
	require.NoError(t, err)
	actual = append(actual, '\n')

	testutil.UpdateGoldenFile(t, "golden/list/workspace.json", actual)
	expected := testutil.LoadFixtureFile(t, "golden/list/workspace.json")
	assert.JSONEq(t, string(expected), string(actual))
}

func TestList_FirstRecordWins(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddJSON("/proj/package.json", lwcManifest([]map[string]any{
		{"dir": "primary", "namespace": "c"},
		{"dir": "fallback", "namespace": "c"},
	}))
	mfs.AddFile("/proj/primary/card/card.js", "", 0644)
	mfs.AddFile("/proj/fallback/card/card.js", "", 0644)
	mfs.AddFile("/proj/fallback/tile/tile.css", "", 0644)

	entries, err := List("/proj", Options{FS: mfs})
	require.NoError(t, err)
	assert.Equal(t, []RegistryEntry{
		{Entry: "/proj/primary/card/card.js", Specifier: "c/card", Type: TypeDir, Scope: "/proj"},
		{Entry: "/proj/fallback/tile/tile.css", Specifier: "c/tile", Type: TypeDir, Scope: "/proj"},
	}, entries)
}

func TestList_UserConfig(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddJSON("/proj/package.json", lwcManifest([]map[string]any{
		{"name": "x", "path": "file.js"},
	}))
	mfs.AddFile("/proj/file.js", "", 0644)
	mfs.AddFile("/proj/user.js", "", 0644)

	entries, err := List("/proj", Options{
		FS: mfs,
		Config: &config.Partial{
			RootDir: "/proj",
			Modules: config.ModuleRecords{&config.AliasRecord{Name: "x", Path: "user.js"}},
		},
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/proj/user.js", entries[0].Entry)
}

func TestList_Errors(t *testing.T) {
	t.Run("missing single dir", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddJSON("/proj/package.json", lwcManifest([]map[string]any{{"dir": "nope"}}))

		_, err := List("/proj", Options{FS: mfs})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("single dir is a file", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddJSON("/proj/package.json", lwcManifest([]map[string]any{{"dir": "lwc"}}))
		mfs.AddFile("/proj/lwc", "not a directory", 0644)

		_, err := List("/proj", Options{FS: mfs})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("ambiguous multi dir", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddJSON("/proj/package.json", lwcManifest([]map[string]any{{"dirs": []string{"a", "b"}}}))
		mfs.AddFile("/proj/a/c/card/card.js", "", 0644)
		mfs.AddFile("/proj/b/c/card/card.js", "", 0644)

		_, err := List("/proj", Options{FS: mfs})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "more than one directory")
	})

	t.Run("missing candidate dir is skipped", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddJSON("/proj/package.json", lwcManifest([]map[string]any{{"dirs": []string{"gone", "here"}}}))
		mfs.AddFile("/proj/here/c/card/card.js", "", 0644)

		entries, err := List("/proj", Options{FS: mfs})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "c/card", entries[0].Specifier)
	})
}

func TestSpecifierFor(t *testing.T) {
	tests := []struct {
		rel       string
		namespace string
		want      string
		ok        bool
	}{
		{"c/card/card.js", "", "c/card", true},
		{"c/card/helper.js", "", "", false},
		{"card/card.html", "c", "c/card", true},
		{"card/card.test.js", "c", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, ok := specifierFor(tt.rel, tt.namespace)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
