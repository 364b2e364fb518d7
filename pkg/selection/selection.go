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

// Package selection parses the --select language: 1-based match ordinals
// and inclusive "start-end" ranges, separated by commas or whitespace.
package selection

import (
	"sort"
	"strconv"
	"strings"

	"github.com/walteh/fnr/pkg/errkind"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Set is the collection of eligible match ordinals, kept as sorted,
// disjoint inclusive spans. A nil Set means no filter is active and every
// match is eligible.
type Set struct {
	spans []span
}

// span is an inclusive ordinal range
type span struct {
	lo, hi int
}

// 📝 Parse builds a Set from the raw --select tokens. It returns nil when no
// ordinal was given at all.
func Parse(tokens []string) (*Set, error) {
	var spans []span

	for _, token := range tokens {
		items := strings.FieldsFunc(token, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, item := range items {
			sp, err := parseItem(item)
			if err != nil {
				return nil, errkind.New(errkind.Argument, errors.Errorf("invalid selection %q: %w", item, err))
			}
			spans = append(spans, sp)
		}
	}

	if len(spans) == 0 {
		return nil, nil
	}
	return &Set{spans: merge(spans)}, nil
}

func parseItem(item string) (span, error) {
	start, end, isRange := strings.Cut(item, "-")
	if !isRange {
		n, err := ordinal(item)
		if err != nil {
			return span{}, err
		}
		return span{lo: n, hi: n}, nil
	}

	lo, err := ordinal(start)
	if err != nil {
		return span{}, errors.Errorf("range start: %w", err)
	}
	hi, err := ordinal(end)
	if err != nil {
		return span{}, errors.Errorf("range end: %w", err)
	}
	if lo > hi {
		return span{}, errors.Errorf("range start %d is greater than end %d", lo, hi)
	}
	return span{lo: lo, hi: hi}, nil
}

// merge sorts spans and joins the overlapping or adjacent ones
func merge(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if sp.lo <= last.hi || sp.lo-1 == last.hi {
			if sp.hi > last.hi {
				last.hi = sp.hi
			}
			continue
		}
		out = append(out, sp)
	}
	return out
}

func ordinal(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing number")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", s)
	}
	if n == 0 {
		return 0, errors.New("indices are 1-based")
	}
	if n < 0 {
		return 0, errors.Errorf("%d is negative", n)
	}
	return n, nil
}

// ✅ Contains reports whether the ordinal is eligible. A nil Set contains
// every ordinal.
func (s *Set) Contains(n int) bool {
	if s == nil {
		return true
	}
	i := sort.Search(len(s.spans), func(i int) bool { return s.spans[i].hi >= n })
	return i < len(s.spans) && s.spans[i].lo <= n
}

// Active reports whether a filter is in effect
func (s *Set) Active() bool {
	return s != nil
}

// Len returns the number of distinct ordinals
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	total := 0
	for _, sp := range s.spans {
		total += sp.hi - sp.lo + 1
	}
	return total
}

// String renders the set in the --select syntax, e.g. "1-3,5"
func (s *Set) String() string {
	if s == nil {
		return ""
	}
	parts := make([]string, 0, len(s.spans))
	for _, sp := range s.spans {
		if sp.lo == sp.hi {
			parts = append(parts, strconv.Itoa(sp.lo))
			continue
		}
		parts = append(parts, strconv.Itoa(sp.lo)+"-"+strconv.Itoa(sp.hi))
	}
	return strings.Join(parts, ",")
}
