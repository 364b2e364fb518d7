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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/fnr/pkg/errkind"
)

func TestSimpleTextReplacer_ReplaceLine(t *testing.T) {
	tests := []struct {
		name      string
		rule      ReplacementRule
		line      string
		want      string
		wantCount int
		contains  bool
	}{
		{
			name:      "simple_replacement",
			rule:      ReplacementRule{FromText: "World", ToText: "Universe"},
			line:      "Hello World",
			want:      "Hello Universe",
			wantCount: 1,
			contains:  true,
		},
		{
			name:      "multiple_replacements",
			rule:      ReplacementRule{FromText: "World", ToText: "Universe"},
			line:      "Hello World World",
			want:      "Hello Universe Universe",
			wantCount: 2,
			contains:  true,
		},
		{
			name: "case_sensitive_miss",
			rule: ReplacementRule{FromText: "WORLD", ToText: "x"},
			line: "hello world",
			want: "hello world",
		},
		{
			name:      "ignore_case",
			rule:      ReplacementRule{FromText: "WORLD", ToText: "new", IgnoreCase: true},
			line:      "hello world",
			want:      "hello new",
			wantCount: 1,
			contains:  true,
		},
		{
			name: "empty_line",
			rule: ReplacementRule{FromText: "World", ToText: "Universe"},
			line: "",
			want: "",
		},
		{
			name: "empty_rule",
			rule: ReplacementRule{},
			line: "Hello World",
			want: "Hello World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := NewSimpleTextReplacer(tt.rule)
			got, count := replacer.ReplaceLine(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.contains, replacer.Contains(tt.line))
		})
	}
}

func TestSimpleTextReplacer_ReplaceContentLine(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		line         int
		want         string
		wantModified bool
		wantError    bool
	}{
		{name: "first_line", content: "world\nworld\n", line: 1, want: "new\nworld\n", wantModified: true},
		{name: "second_line", content: "world\nworld\n", line: 2, want: "world\nnew\n", wantModified: true},
		{name: "no_trailing_newline", content: "a\nworld", line: 2, want: "a\nnew", wantModified: true},
		{name: "crlf_kept", content: "world\r\nb\r\n", line: 1, want: "new\r\nb\r\n", wantModified: true},
		{name: "line_without_pattern", content: "a\nb\n", line: 2, want: "a\nb\n"},
		{name: "past_end", content: "world\n", line: 2, wantError: true},
		{name: "zero", content: "world\n", line: 0, wantError: true},
		{name: "empty_file", content: "", line: 1, wantError: true},
	}

	replacer := NewSimpleTextReplacer(ReplacementRule{FromText: "world", ToText: "new"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := replacer.ReplaceContentLine([]byte(tt.content), tt.line)
			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrLineOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestSimpleTextReplacer_WriteLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world\nbye world\n"), 0o640))

	replacer := NewSimpleTextReplacer(ReplacementRule{FromText: "world", ToText: "there"})

	result, err := replacer.WriteLine(context.Background(), path, 2)
	require.NoError(t, err)
	assert.True(t, result.WasModified)
	assert.Equal(t, 1, result.ReplacementCount)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world\nbye there\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm(), "file mode should be preserved")

	_, err = replacer.WriteLine(context.Background(), path, 9)
	require.Error(t, err)
	assert.Equal(t, errkind.FileWrite, errkind.Of(err))
	assert.ErrorIs(t, err, ErrLineOutOfRange)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, got, after, "out of range writes leave the file untouched")

	_, err = replacer.WriteLine(context.Background(), filepath.Join(dir, "missing.txt"), 1)
	assert.Equal(t, errkind.FileWrite, errkind.Of(err))
}

func TestReplacementRule_Validate(t *testing.T) {
	tests := []struct {
		name      string
		rule      ReplacementRule
		wantError string
	}{
		{name: "valid", rule: ReplacementRule{FromText: "foo", ToText: "bar"}},
		{name: "empty_new_is_fine", rule: ReplacementRule{FromText: "foo"}},
		{name: "missing_from_text", rule: ReplacementRule{ToText: "bar"}, wantError: "old pattern must not be empty"},
		{name: "newline_in_old", rule: ReplacementRule{FromText: "a\nb"}, wantError: "old pattern"},
		{name: "newline_in_new", rule: ReplacementRule{FromText: "a", ToText: "b\r\n"}, wantError: "new pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.Equal(t, errkind.Argument, errkind.Of(err))
				return
			}
			require.NoError(t, err)
		})
	}
}
