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

package operation

import (
	"context"

	"github.com/walteh/fnr/pkg/config"
	"github.com/walteh/fnr/pkg/filetype"
	"github.com/walteh/fnr/pkg/omit"
	"github.com/walteh/fnr/pkg/scan"
	"github.com/walteh/fnr/pkg/selection"
	"github.com/walteh/fnr/pkg/status"
	"github.com/walteh/fnr/pkg/text"
	"github.com/walteh/fnr/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// Mode is what happens to each match
type Mode int

const (
	ModePreview Mode = iota // show before and after, write nothing
	ModeLookup              // report matches only
	ModeWrite               // apply eligible replacements
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeLookup:
		return "lookup"
	case ModeWrite:
		return "write"
	default:
		return "preview"
	}
}

// ModeOf returns the mode selected by the settings
func ModeOf(s *config.Settings) Mode {
	switch {
	case s.Lookup:
		return ModeLookup
	case s.Write:
		return ModeWrite
	default:
		return ModePreview
	}
}

// 📨 Event describes one match as it was handled
type Event struct {
	Match   scan.Match
	Ordinal int
	// After is the replaced line, empty in lookup mode
	After string
	State status.MatchState
}

// 📢 Reporter receives the output of a run
type Reporter interface {
	// Lookup reports a match in lookup mode
	Lookup(ctx context.Context, ev Event)
	// Preview reports a match with its replacement
	Preview(ctx context.Context, ev Event)
	// Diagnostic reports a recovered error
	Diagnostic(ctx context.Context, err error)
	// Summary is called once after the walk
	Summary(ctx context.Context, totals *status.Totals)
}

// 🎯 Operator runs a find and replace
type Operator interface {
	// Run walks the tree and returns the totals. Only fatal errors are
	// returned; the totals are valid up to the point of failure.
	Run(ctx context.Context) (*status.Totals, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Settings are the validated inputs of the run
	Settings *config.Settings
	// Reporter receives events, required
	Reporter Reporter
	// Replacer overrides the literal replacer, used by tests
	Replacer text.TextReplacer
}

// plan is everything a run needs, built once before traversal
type plan struct {
	mode      Mode
	verbose   bool
	walker    *walk.Walker
	scanner   *scan.Scanner
	selection *selection.Set
	replacer  text.TextReplacer
	reporter  Reporter
}

// 🏭 New validates the settings and builds the run plan. Every Config or
// Argument error surfaces here.
func New(opts Options) (Operator, error) {
	if opts.Settings == nil {
		return nil, errors.Errorf("settings are required")
	}
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}

	s := opts.Settings
	if err := s.Validate(); err != nil {
		return nil, err
	}

	types, err := filetype.New(s.Type, s.TypeNot)
	if err != nil {
		return nil, err
	}

	sel, err := selection.Parse(s.Select)
	if err != nil {
		return nil, err
	}

	replacer := opts.Replacer
	if replacer == nil {
		replacer = text.NewSimpleTextReplacer(s.Rule())
	}

	return &plan{
		mode:    ModeOf(s),
		verbose: s.Verbose,
		walker: walk.New(walk.Options{
			Root:        s.Root,
			Hidden:      s.Hidden,
			Omit:        omit.New(s.Omit),
			Types:       types,
			IgnoreFiles: !s.NoIgnoreFiles,
		}),
		scanner:   scan.New(s.OldPattern, s.IgnoreCase),
		selection: sel,
		replacer:  replacer,
		reporter:  opts.Reporter,
	}, nil
}
