/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cliopts builds resolver options from the CLI's persistent flags,
// LWC_RESOLVE_* environment variables and the overrides file.
package cliopts

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lukethacoder/lwc-module-resolver/config"
	lwcfs "github.com/lukethacoder/lwc-module-resolver/fs"
	"github.com/lukethacoder/lwc-module-resolver/internal/logger"
	"github.com/lukethacoder/lwc-module-resolver/resolver"
)

// EnvPrefix is the prefix of environment variables read by the CLI.
const EnvPrefix = "LWC_RESOLVE"

// Viper keys.
const (
	KeyConfig  = "config"
	KeyVerbose = "verbose"
)

// ResolverOptions returns options that read from fsys, log diagnostics and
// apply the overrides file named by the config key, if any.
func ResolverOptions(fsys lwcfs.FileSystem) (resolver.Options, error) {
	logger.SetVerbose(viper.GetBool(KeyVerbose))

	opts := resolver.Options{
		FS:       fsys,
		Observer: logger.Observer(),
	}

	path := viper.GetString(KeyConfig)
	if path == "" {
		return opts, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return opts, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	overrides, err := config.LoadOverrides(fsys, abs)
	if err != nil {
		return opts, fmt.Errorf("error loading overrides: %w", err)
	}
	logger.Debug("loaded %d module records from %s", len(overrides.Modules), abs)

	opts.Config = overrides
	return opts, nil
}
