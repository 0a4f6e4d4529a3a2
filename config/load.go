// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the contents of a configuration file. Nil pointers and empty
// strings mean the setting was not present, so Apply leaves it alone.
//
// A TOML file looks like this; YAML uses the same keys.
//
//	prompt = "> "
//	format = "%.4g"
//	history = 10
//	debug = ["parse"]
//
//	[keys]
//	clear = "C"
//	backspace = "<"
//	evaluate = "="
type File struct {
	Prompt  *string  `toml:"prompt" yaml:"prompt"`
	Format  *string  `toml:"format" yaml:"format"`
	History *int     `toml:"history" yaml:"history"`
	Debug   []string `toml:"debug" yaml:"debug"`
	Keys    struct {
		Clear     string `toml:"clear" yaml:"clear"`
		Backspace string `toml:"backspace" yaml:"backspace"`
		Evaluate  string `toml:"evaluate" yaml:"evaluate"`
	} `toml:"keys" yaml:"keys"`
}

// ParseError reports a configuration file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the configuration file at path. The format is chosen by
// the extension: .toml, .yaml or .yml. A file that does not exist is
// not an error; Load returns a nil File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Decode(path, data)
}

// Decode decodes data, using the extension of name to choose the format.
func Decode(name string, data []byte) (*File, error) {
	f := new(File)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		err := toml.Unmarshal(data, f)
		if err != nil {
			return nil, &ParseError{Path: name, Err: err}
		}
	case ".yaml", ".yml":
		err := yaml.Unmarshal(data, f)
		if err != nil {
			return nil, &ParseError{Path: name, Err: err}
		}
	default:
		return nil, fmt.Errorf("config file %s: unknown format %q", name, ext)
	}
	if f.History != nil && *f.History <= 0 {
		return nil, &ParseError{Path: name, Err: fmt.Errorf("history must be positive; got %d", *f.History)}
	}
	if f.Format != nil {
		if err := CheckFormat(*f.Format); err != nil {
			return nil, &ParseError{Path: name, Err: err}
		}
	}
	return f, nil
}

// Apply copies the settings present in f into c.
// Debug flags named in the file are turned on.
func (f *File) Apply(c *Config) {
	if f == nil {
		return
	}
	if f.Prompt != nil {
		c.SetPrompt(*f.Prompt)
	}
	if f.Format != nil {
		c.SetFormat(*f.Format)
	}
	if f.History != nil {
		c.SetHistory(*f.History)
	}
	for _, name := range f.Debug {
		c.SetDebug(name, true)
	}
	keys := c.keys
	if f.Keys.Clear != "" {
		keys.Clear = f.Keys.Clear
	}
	if f.Keys.Backspace != "" {
		keys.Backspace = f.Keys.Backspace
	}
	if f.Keys.Evaluate != "" {
		keys.Evaluate = f.Keys.Evaluate
	}
	c.SetKeys(keys)
}
