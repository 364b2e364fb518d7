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

// Package omit decides which paths --omit prunes from the traversal.
package omit

import (
	"path/filepath"
	"strings"
)

type entry struct {
	clean string
	parts []string
	abs   bool
}

// ✂️ Matcher holds the compiled --omit paths
type Matcher struct {
	entries []entry
}

// 🏭 New compiles the exclusion paths. Blank entries are dropped.
func New(paths []string) *Matcher {
	m := &Matcher{}
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		clean := filepath.Clean(p)
		parts := split(clean)
		if len(parts) == 0 {
			// "." or "/" would omit everything, including the root
			continue
		}
		m.entries = append(m.entries, entry{
			clean: clean,
			parts: parts,
			abs:   filepath.IsAbs(clean),
		})
	}
	return m
}

// Len returns the number of active exclusion paths
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// ✅ Match reports whether a walked path is excluded, either because an
// exclusion path prefixes it or because the exclusion's components appear
// as a contiguous run inside it. Relative exclusions are matched against
// rel, the path below the walk root, so directories above the root never
// count. Absolute exclusions are matched against the absolute form of full.
func (m *Matcher) Match(rel, full string) bool {
	if m.Len() == 0 {
		return false
	}

	relParts := split(filepath.Clean(rel))

	var absParts []string
	for _, e := range m.entries {
		target := relParts
		if e.abs {
			if absParts == nil {
				abs, err := filepath.Abs(full)
				if err != nil {
					continue
				}
				absParts = split(abs)
			}
			target = absParts
		}

		if hasPrefix(target, e.parts) || containsRun(target, e.parts) {
			return true
		}
	}
	return false
}

// split breaks a cleaned path into components, dropping "." and the empty
// leading element of absolute paths
func split(p string) []string {
	raw := strings.Split(filepath.ToSlash(p), "/")
	out := raw[:0]
	for _, part := range raw {
		if part == "" || part == "." {
			continue
		}
		out = append(out, part)
	}
	return out
}

func hasPrefix(parts, prefix []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i := range prefix {
		if parts[i] != prefix[i] {
			return false
		}
	}
	return true
}

func containsRun(parts, run []string) bool {
	for start := 0; start+len(run) <= len(parts); start++ {
		if hasPrefix(parts[start:], run) {
			return true
		}
	}
	return false
}
