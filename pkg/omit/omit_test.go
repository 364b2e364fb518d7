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

package omit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		omit      []string
		candidate string
		want      bool
	}{
		{name: "no_omit", candidate: "src/main.go", want: false},
		{name: "prefix", omit: []string{"tests/assets"}, candidate: "tests/assets/classic.txt", want: true},
		{name: "prefix_exact_dir", omit: []string{"tests/assets"}, candidate: "tests/assets", want: true},
		{name: "trailing_slash", omit: []string{"target/"}, candidate: "target/debug/build", want: true},
		{name: "dot_slash", omit: []string{"./tests"}, candidate: "tests/a.txt", want: true},
		{name: "bare_name_anywhere", omit: []string{"build"}, candidate: "pkg/sub/build/out.o", want: true},
		{name: "multi_component_run", omit: []string{"sub/build"}, candidate: "pkg/sub/build/out.o", want: true},
		{name: "component_not_string_prefix", omit: []string{"tests"}, candidate: "tests2/a.txt", want: false},
		{name: "partial_component", omit: []string{"uild"}, candidate: "build/a", want: false},
		{name: "run_out_of_order", omit: []string{"build/sub"}, candidate: "sub/build/x", want: false},
		{name: "file_omit", omit: []string{"notes.txt"}, candidate: "docs/notes.txt", want: true},
		{name: "root_relative_candidate", omit: []string{"assets"}, candidate: "tests/assets/x", want: true},
		{name: "blank_and_dot_dropped", omit: []string{"", ".", "  "}, candidate: "a/b", want: false},
		{name: "one_of_many", omit: []string{"x", "y", "vendor"}, candidate: "vendor/lib.go", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.omit)
			assert.Equal(t, tt.want, m.Match(tt.candidate, tt.candidate))
		})
	}
}

func TestMatchAbsoluteOmit(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	m := New([]string{filepath.Join(wd, "fixtures")})
	assert.True(t, m.Match("a.txt", filepath.Join("fixtures", "a.txt")), "relative full path should be resolved against the working directory")
	assert.True(t, m.Match("a.txt", filepath.Join(wd, "fixtures", "a.txt")))
	assert.False(t, m.Match("fixtures/a.txt", filepath.Join("other", "fixtures", "a.txt")))
}

func TestMatchIgnoresAncestorsOfRoot(t *testing.T) {
	m := New([]string{"build"})

	assert.False(t, m.Match("src/a.txt", "/home/me/build/proj/src/a.txt"), "a directory above the root shares the name")
	assert.True(t, m.Match("build", "/home/me/build/proj/build"))
	assert.True(t, m.Match("src/build/out.txt", "/home/me/build/proj/src/build/out.txt"))
}

func TestLen(t *testing.T) {
	var m *Matcher
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Match("anything", "anything"))
	assert.Equal(t, 2, New([]string{"a", "", "b"}).Len())
}
