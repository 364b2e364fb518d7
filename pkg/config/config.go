// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/fnr/pkg/errkind"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for defaults file parsers
type Parser interface {
	// 📝 Parse parses the defaults from bytes. name is used in error messages.
	Parse(ctx context.Context, name string, data []byte) (*Defaults, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultFileNames are looked up in the root directory, in order
var DefaultFileNames = []string{".fnr.yaml", ".fnr.yml", ".fnr.hcl", ".fnr.json"}

// 📚 Defaults are the values a defaults file can provide
type Defaults struct {
	Hidden     bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	IgnoreCase bool     `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
	Verbose    bool     `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	Omit       []string `json:"omit,omitempty" yaml:"omit,omitempty"`
	Type       []string `json:"type,omitempty" yaml:"type,omitempty"`
	TypeNot    []string `json:"type_not,omitempty" yaml:"type_not,omitempty"`

	location string
}

// Location returns the file the defaults were loaded from
func (d *Defaults) Location() string {
	return d.location
}

// 🔍 Discover returns the first defaults file present in dir. A root that
// is a file is looked up in its directory.
func Discover(dir string) (string, bool) {
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// 🎯 Load loads a defaults file. Every failure is a Config error.
func Load(ctx context.Context, path string) (*Defaults, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading defaults")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errkind.WithPath(errkind.Config, path, errors.Errorf("reading defaults file: %w", err))
	}

	p := GetParser(path)
	if p == nil {
		return nil, errkind.WithPath(errkind.Config, path, errors.Errorf("unsupported file extension %q", filepath.Ext(path)))
	}

	d, err := p.Parse(ctx, filepath.Base(path), data)
	if err != nil {
		return nil, errkind.WithPath(errkind.Config, path, err)
	}
	d.location = path

	return d, nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

func (p *YAMLParser) Parse(ctx context.Context, name string, data []byte) (*Defaults, error) {
	var d Defaults
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &d, nil
}
