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

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexFold(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		substr    string
		wantStart int
		wantEnd   int
	}{
		{name: "exact", s: "hello world", substr: "world", wantStart: 6, wantEnd: 11},
		{name: "upper_pattern", s: "hello world", substr: "WORLD", wantStart: 6, wantEnd: 11},
		{name: "mixed", s: "Hello WoRlD", substr: "world", wantStart: 6, wantEnd: 11},
		{name: "absent", s: "hello", substr: "world", wantStart: -1, wantEnd: -1},
		{name: "longer_than_s", s: "wor", substr: "world", wantStart: -1, wantEnd: -1},
		{name: "empty_substr", s: "abc", substr: "", wantStart: 0, wantEnd: 0},
		{name: "unicode", s: "straße ÖL", substr: "öl", wantStart: 8, wantEnd: 11},
		{name: "kelvin_sign_width_differs", s: "5\u212a!", substr: "k", wantStart: 1, wantEnd: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := IndexFold(tt.s, tt.substr)
			assert.Equal(t, tt.wantStart, start, "start")
			assert.Equal(t, tt.wantEnd, end, "end")
		})
	}
}

func TestReplaceFold(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		old       string
		repl      string
		want      string
		wantCount int
	}{
		{name: "all_cases", s: "World world WORLD", old: "world", repl: "new", want: "new new new", wantCount: 3},
		{name: "none", s: "hello", old: "x", repl: "y", want: "hello", wantCount: 0},
		{name: "non_overlapping", s: "aaaa", old: "AA", repl: "b", want: "bb", wantCount: 2},
		{name: "empty_old", s: "abc", old: "", repl: "z", want: "abc", wantCount: 0},
		{name: "shrink", s: "ÖL und öl", old: "öl", repl: "-", want: "- und -", wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := ReplaceFold(tt.s, tt.old, tt.repl)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantCount > 0, ContainsFold(tt.s, tt.old) && tt.old != "")
		})
	}
}
