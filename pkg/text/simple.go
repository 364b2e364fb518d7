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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/fnr/pkg/errkind"
	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer using literal string replacement
type SimpleTextReplacer struct {
	rule ReplacementRule
}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer(rule ReplacementRule) *SimpleTextReplacer {
	return &SimpleTextReplacer{rule: rule}
}

// Rule returns the substitution this replacer applies
func (r *SimpleTextReplacer) Rule() ReplacementRule {
	return r.rule
}

// Contains reports whether line holds the old pattern under the rule's case
// handling
func (r *SimpleTextReplacer) Contains(line string) bool {
	if r.rule.FromText == "" {
		return false
	}
	if r.rule.IgnoreCase {
		return ContainsFold(line, r.rule.FromText)
	}
	return strings.Contains(line, r.rule.FromText)
}

// ReplaceLine implements TextReplacer.ReplaceLine
func (r *SimpleTextReplacer) ReplaceLine(line string) (string, int) {
	if r.rule.FromText == "" {
		return line, 0
	}
	if r.rule.IgnoreCase {
		return ReplaceFold(line, r.rule.FromText, r.rule.ToText)
	}
	count := strings.Count(line, r.rule.FromText)
	if count == 0 {
		return line, 0
	}
	return strings.ReplaceAll(line, r.rule.FromText, r.rule.ToText), count
}

// ReplaceContentLine substitutes on the 1-based line of content and leaves
// every other byte alone, including the line's own terminator.
func (r *SimpleTextReplacer) ReplaceContentLine(content []byte, lineNumber int) (*ReplacementResult, error) {
	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	lines := strings.Split(string(content), "\n")
	physical := len(lines)
	if lines[physical-1] == "" {
		// trailing newline, not an extra line
		physical--
	}
	if lineNumber < 1 || lineNumber > physical {
		return nil, errors.Errorf("%w: line %d, file has %d lines", ErrLineOutOfRange, lineNumber, physical)
	}

	line := lines[lineNumber-1]
	body, cr := strings.CutSuffix(line, "\r")

	replaced, count := r.ReplaceLine(body)
	if count == 0 {
		return result, nil
	}
	if cr {
		replaced += "\r"
	}
	lines[lineNumber-1] = replaced

	result.WasModified = true
	result.ReplacementCount = count
	result.ModifiedContent = []byte(strings.Join(lines, "\n"))
	return result, nil
}

// WriteLine implements TextReplacer.WriteLine. The whole file is read,
// the line replaced and the file rewritten with its original mode. Nothing
// is written when the line no longer holds the pattern.
func (r *SimpleTextReplacer) WriteLine(ctx context.Context, path string, lineNumber int) (*ReplacementResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errkind.WithPath(errkind.FileWrite, path, errors.Errorf("getting file info: %w", err))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errkind.WithPath(errkind.FileWrite, path, errors.Errorf("reading file: %w", err))
	}

	result, err := r.ReplaceContentLine(content, lineNumber)
	if err != nil {
		return nil, errkind.WithPath(errkind.FileWrite, path, errors.Errorf("replacing line: %w", err))
	}
	if !result.WasModified {
		zerolog.Ctx(ctx).Debug().Str("path", path).Int("line", lineNumber).Msg("line no longer matches, nothing written")
		return result, nil
	}

	if err := os.WriteFile(path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, errkind.WithPath(errkind.FileWrite, path, errors.Errorf("writing file: %w", err))
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("line", lineNumber).
		Int("replacements", result.ReplacementCount).
		Msg("wrote replacement")

	return result, nil
}
