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

	"github.com/fatih/color"
)

// ordinalWidth is the width of the "[n]" column
const ordinalWidth = 5

// MatchState is how a single match was handled
type MatchState int

const (
	MatchPreview MatchState = iota // eligible, not written
	MatchSkipped                   // outside the selection
	MatchWritten                   // replacement applied
	MatchFailed                    // write attempted and failed
	MatchLookup                    // lookup mode, read only
)

// String returns a string representation of MatchState
func (s MatchState) String() string {
	switch s {
	case MatchSkipped:
		return "skipped"
	case MatchWritten:
		return "written"
	case MatchFailed:
		return "failed"
	case MatchLookup:
		return "lookup"
	default:
		return "preview"
	}
}

// 🎯 FormatMatchHeader formats the "[ordinal] path:line" header of a match
func FormatMatchHeader(ordinal int, path string, line int, state MatchState) string {
	var prefix string
	switch state {
	case MatchWritten:
		prefix = color.GreenString("✓")
	case MatchFailed:
		prefix = color.RedString("✗")
	case MatchSkipped:
		prefix = color.HiBlackString("-")
	default:
		prefix = color.YellowString("⟳")
	}

	ordinalPart := fmt.Sprintf("%-*s", ordinalWidth, fmt.Sprintf("[%d]", ordinal))
	location := fmt.Sprintf("%s:%d", path, line)

	switch state {
	case MatchSkipped:
		ordinalPart = color.New(color.Faint).Sprint(ordinalPart)
		location = color.New(color.Faint).Sprint(location) + " " + color.HiBlackString("(skipped)")
	case MatchWritten:
		ordinalPart = color.CyanString(ordinalPart)
		location = color.New(color.Bold).Sprint(location) + " " + color.GreenString("(written)")
	case MatchFailed:
		ordinalPart = color.CyanString(ordinalPart)
		location = color.New(color.Bold).Sprint(location) + " " + color.RedString("(failed)")
	default:
		ordinalPart = color.CyanString(ordinalPart)
		location = color.New(color.Bold).Sprint(location)
	}

	return fmt.Sprintf("%s %s %s", prefix, ordinalPart, location)
}
