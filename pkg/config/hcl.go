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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct {
	// Environ overrides os.Environ for the env variable, used by tests
	Environ func() []string
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the defaults from HCL. Expressions can read the process
// environment through the env object.
func (p *HCLParser) Parse(ctx context.Context, name string, data []byte) (*Defaults, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": p.envObject(),
		},
	}

	type hclDefaults struct {
		Hidden     *bool    `hcl:"hidden,optional"`
		IgnoreCase *bool    `hcl:"ignore_case,optional"`
		Verbose    *bool    `hcl:"verbose,optional"`
		Omit       []string `hcl:"omit,optional"`
		Type       []string `hcl:"type,optional"`
		TypeNot    []string `hcl:"type_not,optional"`
	}

	var raw hclDefaults
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Defaults{
		Hidden:     deref(raw.Hidden),
		IgnoreCase: deref(raw.IgnoreCase),
		Verbose:    deref(raw.Verbose),
		Omit:       raw.Omit,
		Type:       raw.Type,
		TypeNot:    raw.TypeNot,
	}, nil
}

func (p *HCLParser) envObject() cty.Value {
	environ := os.Environ
	if p.Environ != nil {
		environ = p.Environ
	}

	vars := map[string]cty.Value{}
	for _, kv := range environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

func deref(b *bool) bool {
	return b != nil && *b
}
