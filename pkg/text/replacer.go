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

// Package text holds the literal line substitution and the single line
// rewrite performed by --write.
package text

import (
	"context"
	"strings"

	"github.com/walteh/fnr/pkg/errkind"
	"gitlab.com/tozd/go/errors"
)

// ErrLineOutOfRange is returned when a rewrite targets a line the file does
// not have
var ErrLineOutOfRange = errors.New("line out of range")

// ReplacementRule defines the literal substitution of one run
type ReplacementRule struct {
	// FromText is the text to replace
	FromText string

	// ToText is the replacement text
	ToText string

	// IgnoreCase matches FromText under simple Unicode case folding
	IgnoreCase bool
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the substitution used to build previews and the
// rewrite used by --write
type TextReplacer interface {
	// ReplaceLine substitutes every occurrence on one line and returns the
	// new line plus the number of substitutions
	ReplaceLine(line string) (string, int)

	// WriteLine rewrites the 1-based line of the file at path in place
	WriteLine(ctx context.Context, path string, lineNumber int) (*ReplacementResult, error)
}

// ✅ Validate checks that the rule can only ever touch a single line
func (r ReplacementRule) Validate() error {
	if r.FromText == "" {
		return errkind.New(errkind.Argument, errors.New("old pattern must not be empty"))
	}
	if strings.ContainsAny(r.FromText, "\r\n") {
		return errkind.New(errkind.Argument, errors.Errorf("old pattern %q spans more than one line", r.FromText))
	}
	if strings.ContainsAny(r.ToText, "\r\n") {
		return errkind.New(errkind.Argument, errors.Errorf("new pattern %q spans more than one line", r.ToText))
	}
	return nil
}
