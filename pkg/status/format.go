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

package status

import (
	"fmt"
)

// WriteHint is printed after a dry run that had eligible matches
const WriteHint = "Re-run the command with --write to write changes to disk."

// 🎨 Formatter turns run totals into console text
type Formatter interface {
	// FormatSummary returns the summary lines, first line being the match count
	FormatSummary(t *Totals) []string
	// FormatWarning returns the message for a --write warning, empty for none
	FormatWarning(w Warning, t *Totals) string
	// FormatError formats a recovered error
	FormatError(err error) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct {
	// Verbose adds the skipped entry count
	Verbose bool
}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatSummary implements Formatter.FormatSummary
func (f *DefaultFormatter) FormatSummary(t *Totals) []string {
	var lines []string

	switch t.Matches {
	case 0:
		lines = append(lines, "No match found.")
	case 1:
		lines = append(lines, "1 match found.")
	default:
		lines = append(lines, fmt.Sprintf("%d matches found.", t.Matches))
	}

	lines = append(lines, fmt.Sprintf("%s scanned in %s.", plural(t.Lines, "line"), plural(t.Files, "file")))

	if f.Verbose && t.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("%s skipped because of errors.", plural(t.Skipped, "entry")))
	}

	if t.SelectionActive && t.Matches > 0 && !t.LookupOnly {
		lines = append(lines, fmt.Sprintf("%d of %d selected.", t.Selected, t.Matches))
	}

	if t.WriteRequested {
		lines = append(lines, fmt.Sprintf("%s written.", plural(t.Written, "replacement")))
		if t.WriteFailures > 0 {
			lines = append(lines, fmt.Sprintf("%s could not be written.", plural(t.WriteFailures, "replacement")))
		}
	}

	if t.DryRun() {
		lines = append(lines, WriteHint)
	}

	return lines
}

// FormatWarning implements Formatter.FormatWarning
func (f *DefaultFormatter) FormatWarning(w Warning, t *Totals) string {
	switch w {
	case WarningNoMatches:
		return "--write was given but no match was found; nothing was written"
	case WarningNoneSelected:
		return fmt.Sprintf("--write was given and %s found, but none is selected; nothing was written", plural(t.Matches, "match"))
	default:
		return ""
	}
}

// FormatError implements Formatter.FormatError
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ %v", err)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	switch {
	case noun == "entry":
		return fmt.Sprintf("%d entries", n)
	case noun == "match":
		return fmt.Sprintf("%d matches", n)
	default:
		return fmt.Sprintf("%d %ss", n, noun)
	}
}
