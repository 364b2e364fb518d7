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
	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ⚙️ Settings are the inputs of one run. They are not modified once the
// run starts.
type Settings struct {
	OldPattern string
	NewPattern string
	Root       string

	IgnoreCase bool
	Hidden     bool
	Write      bool
	Lookup     bool
	Verbose    bool

	Omit    []string
	Type    []string
	TypeNot []string
	Select  []string

	// NoIgnoreFiles disables .fnrignore handling
	NoIgnoreFiles bool
}

// Rule returns the literal substitution described by the settings
func (s *Settings) Rule() text.ReplacementRule {
	return text.ReplacementRule{
		FromText:   s.OldPattern,
		ToText:     s.NewPattern,
		IgnoreCase: s.IgnoreCase,
	}
}

// 🔍 Validate checks the settings without changing them. Errors are of the
// Argument kind.
func (s *Settings) Validate() error {
	if err := s.Rule().Validate(); err != nil {
		return err
	}
	if s.Write && s.Lookup {
		return errkind.New(errkind.Argument, errors.New("--write and --lookup cannot be used together"))
	}
	return nil
}

// 🔀 ApplyDefaults merges file defaults under the settings. Flags can only
// be turned on and list values from the file come first.
func (s *Settings) ApplyDefaults(d *Defaults) {
	if d == nil {
		return
	}
	s.Hidden = s.Hidden || d.Hidden
	s.IgnoreCase = s.IgnoreCase || d.IgnoreCase
	s.Verbose = s.Verbose || d.Verbose
	s.Omit = concat(d.Omit, s.Omit)
	s.Type = concat(d.Type, s.Type)
	s.TypeNot = concat(d.TypeNot, s.TypeNot)
}

func concat(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
