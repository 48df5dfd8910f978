/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rec  ModuleRecord
		want RecordKind
	}{
		{"alias", &AliasRecord{Name: "x", Path: "x.js"}, KindAlias},
		{"dir", &DirRecord{Dir: "src"}, KindDir},
		{"multi dir", &DirRecord{Dirs: []string{"a", "b"}}, KindDir},
		{"npm", &NPMRecord{NPM: "pkg"}, KindNPM},
		{"nil interface", nil, KindUnknown},
		{"typed nil", (*DirRecord)(nil), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rec))
			assert.Equal(t, tt.want == KindAlias, IsAlias(tt.rec))
			assert.Equal(t, tt.want == KindDir, IsDir(tt.rec))
			assert.Equal(t, tt.want == KindNPM, IsNPM(tt.rec))
		})
	}
}

func TestParseRecord_Precedence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ModuleRecord
	}{
		{
			name: "alias wins over dir",
			raw:  `{"name": "x", "path": "x.js", "dir": "src"}`,
			want: &AliasRecord{Name: "x", Path: "x.js"},
		},
		{
			name: "dir wins over npm",
			raw:  `{"dir": "src", "npm": "pkg"}`,
			want: &DirRecord{Dir: "src"},
		},
		{
			name: "dir with stray name is still a dir",
			raw:  `{"dir": "src", "name": "c"}`,
			want: &DirRecord{Dir: "src"},
		},
		{
			name: "npm with map",
			raw:  `{"npm": "pkg", "map": {"a/b": "c/d"}}`,
			want: &NPMRecord{NPM: "pkg", Map: map[string]string{"a/b": "c/d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw any
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &raw))

			got, err := ParseRecord(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordString(t *testing.T) {
	assert.Equal(t, `{"name":"x","path":"x.js"}`, RecordString(&AliasRecord{Name: "x", Path: "x.js"}))
	assert.Equal(t, `{"dir":"src","namespace":"c"}`, RecordString(&DirRecord{Dir: "src", Namespace: "c"}))
	assert.Equal(t, `{"npm":"pkg"}`, RecordString(&NPMRecord{NPM: "pkg"}))
}

func TestNormalize_DirBecomesAbsolute(t *testing.T) {
	scope := filepath.FromSlash("/proj")
	cfg, err := Normalize(&Partial{
		RootDir: scope,
		Modules: ModuleRecords{&DirRecord{Dir: "rel/path"}},
	}, scope)
	require.NoError(t, err)
	require.Len(t, cfg.Modules, 1)

	require.True(t, IsDir(cfg.Modules[0]))
	dir := cfg.Modules[0].(*DirRecord).Dir
	assert.True(t, filepath.IsAbs(dir), "dir %q should be absolute", dir)
	assert.Equal(t, filepath.Join(scope, "rel", "path"), dir)
}

func TestNormalize_DefaultsToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := Normalize(&Partial{Modules: ModuleRecords{&DirRecord{Dir: "rel/path"}}}, "/scope")
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.RootDir)
	assert.Equal(t, filepath.Join(wd, "rel", "path"), cfg.Modules[0].(*DirRecord).Dir)
}

func TestNormalize_Dirs(t *testing.T) {
	root := filepath.FromSlash("/proj")
	in := &DirRecord{
		Dirs:      []string{"$rootDir/src/modules", "lib", filepath.FromSlash("/abs/modules")},
		Namespace: "x",
	}

	cfg, err := Normalize(&Partial{RootDir: root, Modules: ModuleRecords{in}}, root)
	require.NoError(t, err)

	got := cfg.Modules[0].(*DirRecord)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "modules"),
		filepath.Join(root, "lib"),
		filepath.FromSlash("/abs/modules"),
	}, got.Dirs)
	assert.Equal(t, "x", got.Namespace)
	assert.Empty(t, got.Dir)

	// input untouched
	assert.Equal(t, "$rootDir/src/modules", in.Dirs[0])
}

func TestNormalize_PassThrough(t *testing.T) {
	alias := &AliasRecord{Name: "x", Path: "x.js"}
	npm := &NPMRecord{NPM: "pkg"}

	cfg, err := Normalize(&Partial{RootDir: "/proj", Modules: ModuleRecords{alias, npm}}, "/proj")
	require.NoError(t, err)
	assert.Same(t, alias, cfg.Modules[0])
	assert.Same(t, npm, cfg.Modules[1])
}

func TestNormalize_NilRecord(t *testing.T) {
	_, err := Normalize(&Partial{RootDir: "/proj", Modules: ModuleRecords{nil}}, "/scope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "/scope", cfgErr.Scope)
	assert.Contains(t, cfgErr.Message, "Module record must be an object")
}

func TestMerge_UserAliasWins(t *testing.T) {
	user := &AliasRecord{Name: "x", Path: "user.js"}
	other := &AliasRecord{Name: "y", Path: "y.js"}
	fileX := &AliasRecord{Name: "x", Path: "file.js"}

	orders := map[string][]ModuleRecord{
		"file x first": {fileX, other},
		"file x last":  {other, fileX},
	}

	for name, file := range orders {
		t.Run(name, func(t *testing.T) {
			for _, userRecords := range [][]ModuleRecord{
				{user},
				{&DirRecord{Dir: "/proj/src"}, user},
			} {
				merged := Merge(userRecords, file)

				var xs []*AliasRecord
				for _, rec := range merged {
					if a, ok := rec.(*AliasRecord); ok && a.Name == "x" {
						xs = append(xs, a)
					}
				}
				require.Len(t, xs, 1)
				assert.Same(t, user, xs[0])
				assert.Contains(t, merged, ModuleRecord(other))
			}
		})
	}
}

func TestMerge_Identities(t *testing.T) {
	user := []ModuleRecord{
		&DirRecord{Dir: "/proj/src"},
		&DirRecord{Dirs: []string{"/proj/a/", "/proj/b"}},
		&NPMRecord{NPM: "@acme/ui"},
	}
	file := []ModuleRecord{
		&DirRecord{Dir: "/proj/src/"},
		&DirRecord{Dir: "/proj/a"},
		&DirRecord{Dirs: []string{"/proj/c", "/proj/b/"}},
		&DirRecord{Dir: "/proj/d", Namespace: "d"},
		&NPMRecord{NPM: "@acme/ui", Map: map[string]string{}},
		&NPMRecord{NPM: "@acme/other"},
		&AliasRecord{Name: "x", Path: "x.js"},
	}

	// Trailing slashes and a single overlapping dirs entry are enough to
	// shadow a file record.
	merged := Merge(user, file)
	require.Len(t, merged, 6)
	assert.Equal(t, user, merged[:3])
	assert.Same(t, file[3], merged[3])
	assert.Same(t, file[5], merged[4])
	assert.Same(t, file[6], merged[5])
}

func TestMerge_NoUserRecords(t *testing.T) {
	file := []ModuleRecord{&DirRecord{Dir: "src"}, &AliasRecord{Name: "x", Path: "x.js"}}
	assert.Equal(t, file, Merge(nil, file))
}

func TestNormalizeDirName(t *testing.T) {
	assert.Equal(t, "a/b/", NormalizeDirName("a/b"))
	assert.Equal(t, "a/b/", NormalizeDirName("a/b/"))
}
