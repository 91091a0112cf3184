// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package values loads named template values for the urifmt command from
// YAML, TOML or JSON files.
//
// A values file has two optional tables. Entries under "values" are encoded
// when substituted; entries under "raw" must be strings and are substituted
// verbatim:
//
//	values:
//	  group: admin/manager
//	raw:
//	  base: https://api.example.com/v1
package values

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/opentofu/urifmt"
)

// File is the decoded content of a values file.
type File struct {
	Values map[string]any    `yaml:"values" toml:"values" json:"values"`
	Raw    map[string]string `yaml:"raw" toml:"raw" json:"raw"`
}

// Load reads and decodes the values file at path. The format is chosen by
// the file extension: ".yaml" or ".yml", ".toml", or ".json".
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading values file: %w", err)
	}
	f, err := Decode(filepath.Ext(path), src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode decodes src in the format named by ext, which is a file extension
// including the leading dot.
func Decode(ext string, src []byte) (*File, error) {
	f := &File{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, f); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(src), f); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported values file extension %q; use .yaml, .toml or .json", ext)
	}
	return f, nil
}

// Vars merges the two tables into a single map suitable for
// [urifmt.Template.Expand], wrapping the raw entries with [urifmt.Raw].
// A name present in both tables is an error.
func (f *File) Vars() (map[string]any, error) {
	ret := make(map[string]any, len(f.Values)+len(f.Raw))
	for k, v := range f.Values {
		ret[k] = v
	}
	for k, v := range f.Raw {
		if _, exists := ret[k]; exists {
			return nil, fmt.Errorf("%q is declared both as a value and as a raw value", k)
		}
		ret[k] = urifmt.Raw(v)
	}
	return ret, nil
}
