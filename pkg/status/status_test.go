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
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestTotalsOrdinals(t *testing.T) {
	totals := &Totals{}
	assert.Equal(t, 1, totals.AddMatch())
	totals.AddSelected()
	assert.Equal(t, 2, totals.AddMatch())
	assert.Equal(t, 3, totals.AddMatch())
	totals.AddSelected()
	assert.Equal(t, 3, totals.Matches)
	assert.Equal(t, 2, totals.Selected)

	totals.AddFile(10)
	totals.AddFile(5)
	totals.AddSkipped()
	assert.Equal(t, 15, totals.Lines)
	assert.Equal(t, 2, totals.Files)
	assert.Equal(t, 1, totals.Skipped)

	totals.AddWrite(nil)
	totals.AddWrite(errors.New("disk full"))
	assert.Equal(t, 1, totals.Written)
	assert.Equal(t, 1, totals.WriteFailures)
}

func TestTotalsWarning(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
		want   Warning
	}{
		{name: "dry_run_never_warns", totals: Totals{Matches: 0}, want: WarningNone},
		{name: "no_matches", totals: Totals{WriteRequested: true}, want: WarningNoMatches},
		{
			name:   "none_selected",
			totals: Totals{WriteRequested: true, SelectionActive: true, Matches: 3, Selected: 0},
			want:   WarningNoneSelected,
		},
		{name: "some_selected", totals: Totals{WriteRequested: true, Matches: 3, Selected: 1}, want: WarningNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.totals.Warning())
		})
	}

	assert.NotEqual(t, WarningNoMatches.String(), WarningNoneSelected.String(), "the two causes must be distinguishable")
}

func TestTotalsDryRun(t *testing.T) {
	assert.True(t, (&Totals{Selected: 1}).DryRun())
	assert.False(t, (&Totals{Selected: 0, Matches: 2}).DryRun())
	assert.False(t, (&Totals{Selected: 1, WriteRequested: true}).DryRun())
	assert.False(t, (&Totals{Selected: 1, LookupOnly: true}).DryRun())
}
