/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import "github.com/lukethacoder/lwc-module-resolver/config"

// resolveAlias matches spec against the record name exactly.
func (r *resolution) resolveAlias(spec string, rec *config.AliasRecord, rootDir string) (*RegistryEntry, error) {
	if spec != rec.Name {
		return nil, nil
	}

	entry := config.ResolvePath(rootDir, rec.Path)
	if !r.fs.Exists(entry) {
		return nil, config.NewError(rootDir, `Invalid alias module record "%s", file "%s" does not exist`, config.RecordString(rec), entry)
	}

	return newEntry(entry, spec, TypeAlias, rootDir), nil
}
