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

/*
Package status owns the counters of one run and turns them into the end of
run summary.

	+---------------+        +----------------+
	|   operation   |  adds  |     Totals     |
	| (orchestrator)|------->|  (accumulator) |
	+---------------+        +-------+--------+
	                                 |
	                         +-------+--------+
	                         |   Formatter    |
	                         | (summary text) |
	                         +----------------+

🎯 Purpose:
- Counts matches, selected matches, written replacements and scanned lines
- Classifies the end of run warning for --write
- Formats the summary and match headers for the console

🤝 Interfaces:
- Formatter: turns Totals into summary lines

🔍 Example:

	totals := &status.Totals{WriteRequested: true}
	totals.AddFile(12)
	ordinal := totals.AddMatch()
	if selected.Contains(ordinal) {
		totals.AddSelected()
	}

	for _, line := range status.NewDefaultFormatter().FormatSummary(totals) {
		fmt.Println(line)
	}
	if w := totals.Warning(); w != status.WarningNone {
		fmt.Println(w)
	}
*/
package status
