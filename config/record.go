/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RecordKind identifies which variant a ModuleRecord is.
type RecordKind int

const (
	// KindUnknown is returned by Classify for nil or foreign records.
	KindUnknown RecordKind = iota
	// KindAlias is an *AliasRecord.
	KindAlias
	// KindDir is a *DirRecord.
	KindDir
	// KindNPM is an *NPMRecord.
	KindNPM
)

func (k RecordKind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindDir:
		return "dir"
	case KindNPM:
		return "npm"
	default:
		return "unknown"
	}
}

// ModuleRecord is one entry of a "modules" list. It is implemented by
// exactly three types: *AliasRecord, *DirRecord and *NPMRecord.
type ModuleRecord interface {
	// Kind returns the record's variant.
	Kind() RecordKind

	isModuleRecord()
}

// AliasRecord maps an exact specifier to a file.
type AliasRecord struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// DirRecord maps namespace/name specifiers onto a directory layout.
// Exactly one of Dir and Dirs is expected to be set; Dir wins when both are.
type DirRecord struct {
	Dir  string   `json:"dir,omitempty" yaml:"dir,omitempty"`
	Dirs []string `json:"dirs,omitempty" yaml:"dirs,omitempty"`
	// Namespace, when set, makes the layout flat: dir/<name>/<name>.js
	// rather than dir/<namespace>/<name>/<name>.js.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// NPMRecord delegates resolution to the LWC configuration of an npm package.
type NPMRecord struct {
	NPM string `json:"npm" yaml:"npm"`
	// Map renames specifiers exposed by the package: key is the exposed
	// specifier, value is the name it is imported under.
	Map map[string]string `json:"map,omitempty" yaml:"map,omitempty"`
}

func (*AliasRecord) Kind() RecordKind { return KindAlias }
func (*DirRecord) Kind() RecordKind { return KindDir }
func (*NPMRecord) Kind() RecordKind { return KindNPM }

func (*AliasRecord) isModuleRecord() {}
func (*DirRecord) isModuleRecord() {}
func (*NPMRecord) isModuleRecord() {}

// Classify returns the kind of r. Nil records, including typed nil
// pointers, are KindUnknown.
func Classify(r ModuleRecord) RecordKind {
	switch r := r.(type) {
	case *AliasRecord:
		if r != nil {
			return KindAlias
		}
	case *DirRecord:
		if r != nil {
			return KindDir
		}
	case *NPMRecord:
		if r != nil {
			return KindNPM
		}
	}
	return KindUnknown
}

// IsAlias reports whether r is an alias record.
func IsAlias(r ModuleRecord) bool { return Classify(r) == KindAlias }

// IsDir reports whether r is a dir or multi-dir record.
func IsDir(r ModuleRecord) bool { return Classify(r) == KindDir }

// IsNPM reports whether r is an npm record.
func IsNPM(r ModuleRecord) bool { return Classify(r) == KindNPM }

// RecordString renders r as compact JSON for error messages.
func RecordString(r ModuleRecord) string {
	if Classify(r) == KindUnknown {
		return fmt.Sprintf("%#v", r)
	}
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", r)
	}
	return string(data)
}

// ParseRecord classifies a decoded JSON or YAML value into a ModuleRecord.
// Shapes are tested in order: alias ("name" and "path"), dir ("dir" or
// "dirs"), npm ("npm").
func ParseRecord(raw any) (ModuleRecord, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: module record must be an object, instead got %s", ErrMalformedRecord, describe(raw))
	}

	_, hasName := obj["name"]
	_, hasPath := obj["path"]
	_, hasDir := obj["dir"]
	_, hasDirs := obj["dirs"]
	_, hasNPM := obj["npm"]

	switch {
	case hasName && hasPath:
		rec := &AliasRecord{}
		var err error
		if rec.Name, err = stringField(obj, "name"); err != nil {
			return nil, err
		}
		if rec.Path, err = stringField(obj, "path"); err != nil {
			return nil, err
		}
		return rec, nil

	case hasDir || hasDirs:
		rec := &DirRecord{}
		var err error
		if hasDir {
			if rec.Dir, err = stringField(obj, "dir"); err != nil {
				return nil, err
			}
		}
		if hasDirs {
			if rec.Dirs, err = stringListField(obj, "dirs"); err != nil {
				return nil, err
			}
		}
		if _, ok := obj["namespace"]; ok {
			if rec.Namespace, err = stringField(obj, "namespace"); err != nil {
				return nil, err
			}
		}
		return rec, nil

	case hasNPM:
		rec := &NPMRecord{}
		var err error
		if rec.NPM, err = stringField(obj, "npm"); err != nil {
			return nil, err
		}
		if _, ok := obj["map"]; ok {
			if rec.Map, err = stringMapField(obj, "map"); err != nil {
				return nil, err
			}
		}
		return rec, nil
	}

	return nil, fmt.Errorf("%w %s", ErrUnknownRecord, describe(raw))
}

// ModuleRecords is a "modules" list that decodes each element into the
// matching ModuleRecord variant.
type ModuleRecords []ModuleRecord

// UnmarshalJSON decodes a JSON array of module records.
func (m *ModuleRecords) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return m.fromRaw(raw)
}

// UnmarshalYAML decodes a YAML sequence of module records.
func (m *ModuleRecords) UnmarshalYAML(node *yaml.Node) error {
	var raw []any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return m.fromRaw(raw)
}

func (m *ModuleRecords) fromRaw(raw []any) error {
	records := make(ModuleRecords, 0, len(raw))
	for _, item := range raw {
		rec, err := ParseRecord(item)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}
	*m = records
	return nil
}

func stringField(obj map[string]any, key string) (string, error) {
	s, ok := obj[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, instead got %s", ErrMalformedRecord, key, describe(obj[key]))
	}
	return s, nil
}

func stringListField(obj map[string]any, key string) ([]string, error) {
	items, ok := obj[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list of strings, instead got %s", ErrMalformedRecord, key, describe(obj[key]))
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a list of strings, instead got %s", ErrMalformedRecord, key, describe(obj[key]))
		}
		out = append(out, s)
	}
	return out, nil
}

func stringMapField(obj map[string]any, key string) (map[string]string, error) {
	items, ok := obj[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be an object of strings, instead got %s", ErrMalformedRecord, key, describe(obj[key]))
	}
	out := make(map[string]string, len(items))
	for k, v := range items {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be an object of strings, instead got %s", ErrMalformedRecord, key, describe(obj[key]))
		}
		out[k] = s
	}
	return out, nil
}

func describe(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
