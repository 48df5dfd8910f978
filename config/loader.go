/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
)

// PackageJSON is the project manifest file name.
const PackageJSON = "package.json"

// ConfigFileName is the standalone resolver config file. It must sit next to
// a package.json and takes precedence over the manifest's "lwc" field.
const ConfigFileName = "lwc.config.json"

// Load reads the LWC configuration of the package rooted at dir:
// lwc.config.json when present, otherwise the "lwc" field of package.json.
// A package.json without an "lwc" field yields an empty config.
func Load(filesystem lwcfs.FileSystem, dir string) (*LwcConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	if filesystem.Exists(configPath) {
		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, WrapError(dir, err, "Unable to read %q", configPath)
		}
		cfg := &LwcConfig{}
		if err := parseJSON(data, cfg); err != nil {
			return nil, WrapError(dir, err, "Unable to parse %q: %v", configPath, err)
		}
		return cfg, nil
	}

	pkgPath := filepath.Join(dir, PackageJSON)
	data, err := filesystem.ReadFile(pkgPath)
	if err != nil {
		return nil, WrapError(dir, err, "Unable to read %q", pkgPath)
	}

	var manifest struct {
		Lwc *LwcConfig `json:"lwc"`
	}
	if err := parseJSON(data, &manifest); err != nil {
		return nil, WrapError(dir, err, "Unable to parse %q: %v", pkgPath, err)
	}
	if manifest.Lwc == nil {
		return &LwcConfig{}, nil
	}
	return manifest.Lwc, nil
}

// FindRoot walks up from startDir to the nearest directory containing a
// package.json. An lwc.config.json found without a package.json beside it is
// an error. The filesystem root itself is never considered.
func FindRoot(filesystem lwcfs.FileSystem, startDir string) (string, error) {
	sep := string(filepath.Separator)
	parts := strings.Split(filepath.Clean(startDir), sep)

	for len(parts) > 1 {
		dir := strings.Join(parts, sep)
		hasPkgJSON := filesystem.Exists(filepath.Join(dir, PackageJSON))
		hasConfig := filesystem.Exists(filepath.Join(dir, ConfigFileName))

		if hasConfig && !hasPkgJSON {
			return "", NewError(dir, `"%s" must be at the package root level along with the "%s"`, ConfigFileName, PackageJSON)
		}
		if hasPkgJSON {
			return dir, nil
		}

		parts = parts[:len(parts)-1]
	}

	return "", NewError(startDir, "Unable to find any LWC configuration file")
}

// overrideExtensions are the supported overrides file extensions.
var overrideExtensions = []string{".yaml", ".yml", ".json"}

// LoadOverrides reads caller-supplied configuration from a YAML or JSON file.
// A relative rootDir in the file is resolved against the file's directory;
// a missing one defaults to that directory.
func LoadOverrides(filesystem lwcfs.FileSystem, path string) (*Partial, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := &Partial{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if err := parseJSON(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (want one of %s)", ext, strings.Join(overrideExtensions, ", "))
	}

	base := filepath.Dir(path)
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	if p.RootDir == "" {
		p.RootDir = base
	} else {
		p.RootDir = ResolvePath(base, p.RootDir)
	}

	return p, nil
}

// parseJSON strips comments and trailing commas before decoding.
func parseJSON(data []byte, v any) error {
	return json.Unmarshal(jsonc.ToJSON(data), v)
}
