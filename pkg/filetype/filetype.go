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

// Package filetype turns --type / --type-not selectors into a single
// predicate over candidate file paths.
package filetype

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/fnr/pkg/errkind"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ SelectorKind tells a named category from an ad hoc glob
type SelectorKind int

const (
	Named SelectorKind = iota
	Glob
)

// 🎯 Selector is one classified --type or --type-not token
type Selector struct {
	Kind SelectorKind
	Text string // category name or glob pattern
}

// 🔍 Classify decides whether token is a glob or a category name.
// Any of the glob meta characters makes it a glob.
func Classify(token string) Selector {
	token = strings.TrimSpace(token)
	if strings.ContainsAny(token, "*?[{") {
		return Selector{Kind: Glob, Text: token}
	}
	return Selector{Kind: Named, Text: strings.ToLower(token)}
}

// pattern is one compiled glob. Base-name patterns are matched against the
// last path element only.
type pattern struct {
	glob     string
	baseOnly bool
}

func (p pattern) match(rel string) bool {
	if p.baseOnly {
		return doublestar.MatchUnvalidated(p.glob, path.Base(rel))
	}
	return doublestar.MatchUnvalidated(p.glob, rel)
}

// 🧩 Matcher is the compiled form of the select and ignore selectors
type Matcher struct {
	selected []pattern
	ignored  []pattern
}

// 🏭 New compiles the select and ignore tokens. An invalid glob or an
// unknown category name is a config error.
func New(selected, ignored []string) (*Matcher, error) {
	m := &Matcher{}

	var err error
	if m.selected, err = compileAll(selected); err != nil {
		return nil, err
	}
	if m.ignored, err = compileAll(ignored); err != nil {
		return nil, err
	}

	return m, nil
}

func compileAll(tokens []string) ([]pattern, error) {
	var out []pattern
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		compiled, err := compile(Classify(token))
		if err != nil {
			return nil, err
		}
		out = append(out, compiled...)
	}
	return out, nil
}

func compile(sel Selector) ([]pattern, error) {
	switch sel.Kind {
	case Glob:
		glob := strings.TrimPrefix(sel.Text, "./")
		if !doublestar.ValidatePattern(glob) {
			return nil, errkind.New(errkind.Config, errors.Errorf("invalid glob %q", sel.Text))
		}
		return []pattern{{glob: glob, baseOnly: !strings.Contains(glob, "/")}}, nil
	default:
		globs, ok := builtin[sel.Text]
		if !ok {
			return nil, errkind.New(errkind.Config, errors.Errorf("unrecognized file type %q (known types: %s)", sel.Text, strings.Join(Names(), ", ")))
		}
		out := make([]pattern, 0, len(globs))
		for _, g := range globs {
			out = append(out, pattern{glob: g, baseOnly: true})
		}
		return out, nil
	}
}

// ✅ Match reports whether the file at rel passes the filter. rel is the
// slash separated path relative to the traversal root.
func (m *Matcher) Match(rel string) bool {
	if m == nil {
		return true
	}
	if len(m.selected) > 0 && !anyMatch(m.selected, rel) {
		return false
	}
	return !anyMatch(m.ignored, rel)
}

// Empty reports whether no selector was given at all
func (m *Matcher) Empty() bool {
	return m == nil || (len(m.selected) == 0 && len(m.ignored) == 0)
}

func anyMatch(patterns []pattern, rel string) bool {
	for _, p := range patterns {
		if p.match(rel) {
			return true
		}
	}
	return false
}
