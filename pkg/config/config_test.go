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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fnr/pkg/errkind"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		wantErr     bool
		errContains string
		want        *Defaults
	}{
		{
			name: "yaml",
			file: ".fnr.yaml",
			content: `
hidden: true
omit:
  - target
  - tests/assets
type_not: [md]
`,
			want: &Defaults{Hidden: true, Omit: []string{"target", "tests/assets"}, TypeNot: []string{"md"}},
		},
		{
			name:        "yaml_unknown_field",
			file:        ".fnr.yml",
			content:     "hiden: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:    "json",
			file:    ".fnr.json",
			content: `{"ignore_case": true, "type": ["go", "*.tmpl"]}`,
			want:    &Defaults{IgnoreCase: true, Type: []string{"go", "*.tmpl"}},
		},
		{
			name:        "json_unknown_field",
			file:        ".fnr.json",
			content:     `{"write": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name: "hcl",
			file: ".fnr.hcl",
			content: `
verbose = true
omit    = ["build", "vendor"]
`,
			want: &Defaults{Verbose: true, Omit: []string{"build", "vendor"}},
		},
		{
			name:        "hcl_syntax",
			file:        ".fnr.hcl",
			content:     "omit = [\n",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "hcl_unknown_attribute",
			file:        ".fnr.hcl",
			content:     "write = true\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:    "empty_yaml",
			file:    ".fnr.yaml",
			content: "",
			want:    &Defaults{},
		},
		{
			name:        "unsupported_extension",
			file:        "fnr.toml",
			content:     "hidden = true\n",
			wantErr:     true,
			errContains: "unsupported file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := Load(context.Background(), path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Equal(t, errkind.Config, errkind.Of(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, got.Location())
			tt.want.location = path
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), ".fnr.yaml"))
	require.Error(t, err)
	assert.Equal(t, errkind.Config, errkind.Of(err))
}

func TestHCLEnv(t *testing.T) {
	p := &HCLParser{Environ: func() []string { return []string{"CACHE_DIR=/var/cache", "BROKEN"} }}

	got, err := p.Parse(context.Background(), ".fnr.hcl", []byte(`omit = ["${env.CACHE_DIR}/fnr"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"/var/cache/fnr"}, got.Omit)

	_, err = p.Parse(context.Background(), ".fnr.hcl", []byte(`omit = [env.MISSING]`))
	require.Error(t, err)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	_, ok := Discover(dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fnr.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fnr.yaml"), []byte(""), 0o644))

	got, ok := Discover(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, ".fnr.yaml"), got, "yaml is preferred over json")

	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	got, ok = Discover(file)
	require.True(t, ok, "a file root looks in its directory")
	assert.Equal(t, filepath.Join(dir, ".fnr.yaml"), got)
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: ".fnr.yaml", want: &YAMLParser{}},
		{filename: "x.YML", want: &YAMLParser{}},
		{filename: ".fnr.hcl", want: &HCLParser{}},
		{filename: ".fnr.json", want: &JSONParser{}},
		{filename: ".fnr.toml", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestParserRegistration(t *testing.T) {
	original := parsers
	defer func() { parsers = original }()

	parsers = nil
	Register(&JSONParser{})
	assert.Len(t, parsers, 1)
	assert.Nil(t, GetParser(".fnr.yaml"))
}
