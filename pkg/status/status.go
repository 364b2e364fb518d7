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

// ⚠️ Warning classifies why a --write run wrote nothing
type Warning int

const (
	WarningNone         Warning = iota
	WarningNoMatches            // --write given but nothing matched
	WarningNoneSelected         // matches found but none in the selection
)

// String returns a string representation of Warning
func (w Warning) String() string {
	switch w {
	case WarningNoMatches:
		return "no matches found"
	case WarningNoneSelected:
		return "matches found but none selected"
	default:
		return "none"
	}
}

// 📊 Totals accumulates the counters of one run. It is owned by the
// orchestrator and read once when the run ends.
type Totals struct {
	Matches       int // every match found, in ordinal order
	Selected      int // matches eligible under the selection
	Written       int // replacements applied to disk
	WriteFailures int // eligible matches whose write failed
	Lines         int // lines scanned across every file
	Files         int // files scanned to the end or until a decode error
	Skipped       int // entries or files skipped because of an error

	SelectionActive bool
	WriteRequested  bool
	LookupOnly      bool
}

// AddFile records a scanned file and its line count
func (t *Totals) AddFile(lines int) {
	t.Files++
	t.Lines += lines
}

// AddSkipped records an entry that could not be scanned
func (t *Totals) AddSkipped() {
	t.Skipped++
}

// 🔢 AddMatch assigns the next ordinal to a match. Ordinals start at 1 and
// are handed out before eligibility is known.
func (t *Totals) AddMatch() int {
	t.Matches++
	return t.Matches
}

// AddSelected records that the latest match is eligible
func (t *Totals) AddSelected() {
	t.Selected++
}

// AddWrite records the outcome of one attempted replacement
func (t *Totals) AddWrite(err error) {
	if err != nil {
		t.WriteFailures++
		return
	}
	t.Written++
}

// ⚠️ Warning reports why a --write run wrote nothing. It is always
// WarningNone when --write was not requested.
func (t *Totals) Warning() Warning {
	if !t.WriteRequested {
		return WarningNone
	}
	switch {
	case t.Matches == 0:
		return WarningNoMatches
	case t.Selected == 0:
		return WarningNoneSelected
	default:
		return WarningNone
	}
}

// DryRun reports whether eligible matches were previewed but not written
func (t *Totals) DryRun() bool {
	return !t.WriteRequested && !t.LookupOnly && t.Selected > 0
}
