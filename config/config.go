// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings that a build starts from,
// which can be loaded from TOML or YAML files.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/csg/base/iox/tomlx"
	"cogentcore.org/csg/base/iox/yamlx"
	"cogentcore.org/csg/render"
	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/value"
)

// Settings are the settings that a build starts from.
type Settings struct {

	// Includes are other settings files that are loaded before this one,
	// relative to the directory of this one, or to the home directory
	// if they start with ~. Settings in this file override settings in
	// the included files.
	Includes []string `toml:"includes" yaml:"includes"`

	// Resolution are the initial resolution settings, with the same
	// names and aliases as for [scope.Scope.Resolution].
	Resolution value.Map `toml:"resolution" yaml:"resolution"`

	// Defaults are the initial default named arguments of calls.
	Defaults value.Map `toml:"defaults" yaml:"defaults"`

	// Render are the rendering options.
	Render render.Options `toml:"render" yaml:"render"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Resolution: value.Map{},
		Defaults:   value.Map{"center": false},
		Render:     render.DefaultOptions,
	}
}

// Open returns the default settings overridden by those in the given file.
func Open(filename string) (*Settings, error) {
	s := Default()
	if err := s.Open(filename); err != nil {
		return nil, err
	}
	return s, nil
}

// Open loads the settings in the given file and its includes on top of
// the current settings. The file type is determined by its extension:
// .toml, or .yaml or .yml.
func (s *Settings) Open(filename string) error {
	return s.open(filename, map[string]bool{})
}

func (s *Settings) open(filename string, loading map[string]bool) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if loading[abs] {
		return fmt.Errorf("config: %q includes itself", filename)
	}
	loading[abs] = true
	defer delete(loading, abs)

	var inc struct {
		Includes []string `toml:"includes" yaml:"includes"`
	}
	if err := decode(&inc, filename); err != nil {
		return err
	}
	for _, in := range inc.Includes {
		in, err := homedir.Expand(in)
		if err != nil {
			return err
		}
		if !filepath.IsAbs(in) {
			in = filepath.Join(filepath.Dir(filename), in)
		}
		if err := s.open(in, loading); err != nil {
			return fmt.Errorf("config: including %q from %q: %w", in, filename, err)
		}
	}
	return decode(s, filename)
}

// Save saves the settings to the given file, whose type is
// determined by its extension as in [Settings.Open].
func (s *Settings) Save(filename string) error {
	switch ext(filename) {
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	}
	return fmt.Errorf("config: unsupported settings file type %q", filename)
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func decode(v any, filename string) error {
	switch ext(filename) {
	case ".toml":
		return tomlx.Open(v, filename)
	case ".yaml", ".yml":
		return yamlx.Open(v, filename)
	}
	return fmt.Errorf("config: unsupported settings file type %q", filename)
}

// State returns the initial [scope.State] for the settings.
func (s *Settings) State() (scope.State, error) {
	st := scope.DefaultState()
	res, redundant, err := scope.DefaultResolution.With(s.Resolution)
	if err != nil {
		return st, err
	}
	if redundant {
		slog.Warn("config: both fragments_per_turn and degrees_per_fragment set; using fragments_per_turn")
	}
	st.Resolution = res
	st.Defaults = value.NewArgs(s.Defaults)
	return st, nil
}
