/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lukethacoder/lwc-module-resolver/config"
	"github.com/lukethacoder/lwc-module-resolver/diagnostic"
	"github.com/lukethacoder/lwc-module-resolver/specifier"
)

// npmPackage is an npm package's validated LWC configuration.
type npmPackage struct {
	dir     string
	config  *config.LwcConfig
	exposed []string
	// reverse maps a renamed specifier back to the one the package exposes.
	reverse map[string]string
}

// loadPackage locates rec's package from rootDir and validates its
// configuration and the record's map against it.
func (r *resolution) loadPackage(rec *config.NPMRecord, rootDir string) (*npmPackage, error) {
	pkg, err := specifier.NewPackageLocator(r.fs, rootDir).Locate(rec.NPM)
	if err != nil {
		if errors.Is(err, specifier.ErrPackageNotFound) {
			return nil, config.WrapError(rootDir, err, `Invalid npm module record "%s", "%s" npm module can't be resolved`, config.RecordString(rec), rec.NPM)
		}
		return nil, err
	}

	lwcConfig, err := config.Load(r.fs, pkg.Dir)
	if err != nil {
		return nil, err
	}
	if err := validateNPMConfig(lwcConfig, pkg.Dir); err != nil {
		return nil, err
	}

	p := &npmPackage{
		dir:     pkg.Dir,
		config:  lwcConfig,
		exposed: lwcConfig.Expose,
	}

	if rec.Map != nil {
		if err := validateNPMMap(lwcConfig.Expose, rec.Map, pkg.Dir); err != nil {
			return nil, err
		}
		p.exposed = remapList(lwcConfig.Expose, rec.Map)
		p.reverse = transpose(rec.Map)
	}

	return p, nil
}

// resolveNPM resolves spec through the LWC configuration of an installed
// npm package.
func (r *resolution) resolveNPM(spec string, rec *config.NPMRecord, rootDir string) (*RegistryEntry, error) {
	pkg, err := r.loadPackage(rec, rootDir)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(pkg.exposed, spec) {
		r.observe(diagnostic.Diagnostic{
			Severity:  diagnostic.SeverityInfo,
			Code:      diagnostic.CodeSpecifierNotExposed,
			Message:   fmt.Sprintf("npm package %q does not expose %q", rec.NPM, spec),
			Specifier: spec,
			Path:      pkg.dir,
			Scope:     rootDir,
		})
		return nil, nil
	}

	if cycle := r.findCycle(pkg.dir, rec.NPM); cycle != nil {
		return nil, config.NewError(pkg.dir, `Circular npm module record "%s": %s`, config.RecordString(rec), strings.Join(cycle, " -> "))
	}
	r.stack = append(r.stack, activePackage{dir: pkg.dir, name: rec.NPM})
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	target, aliased := pkg.reverse[spec]
	if !aliased || target == "" {
		target, aliased = spec, false
	}

	for _, inner := range pkg.config.Modules {
		entry, err := r.resolveRecord(target, inner, pkg.dir)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			continue
		}
		if aliased {
			entry.Specifier = spec
			entry.Type = TypeAlias
		}
		return entry, nil
	}

	return nil, config.NewError(pkg.dir, `Unable to find "%s" under npm package "%s"`, spec, rec.NPM)
}

func validateNPMConfig(cfg *config.LwcConfig, packageDir string) error {
	if len(cfg.Modules) == 0 {
		return config.NewError(packageDir, `Missing "modules" property for a npm config`)
	}
	if len(cfg.Expose) == 0 {
		return config.NewError(packageDir, `Missing "expose" attribute: An imported npm package must explicitly define all the modules that it contains`)
	}
	return nil
}

// validateNPMMap requires every key of mapping to be exposed. Keys are
// checked in sorted order so the reported key is stable.
func validateNPMMap(expose []string, mapping map[string]string, packageDir string) error {
	for _, k := range slices.Sorted(maps.Keys(mapping)) {
		if !slices.Contains(expose, k) {
			return config.NewError(packageDir, `Unable to apply mapping: The specifier "%s" is not exposed by the npm module`, k)
		}
	}
	return nil
}

// remapList replaces each item that has a non-empty mapping.
func remapList(items []string, mapping map[string]string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		if mapped := mapping[item]; mapped != "" {
			out[i] = mapped
		} else {
			out[i] = item
		}
	}
	return out
}

// transpose inverts m. Keys are visited in sorted order, so when two keys
// share a value the greatest key wins.
func transpose(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out[m[k]] = k
	}
	return out
}
