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
Package operation drives one fnr run: it walks the tree, scans each file,
numbers the matches, decides which are eligible and previews or writes
them.

	+-----------+     +-----------+     +-----------+
	|   walk    |---->|   scan    |---->| selection |
	| (files)   |     | (matches) |     | (ordinal) |
	+-----------+     +-----------+     +-----+-----+
	                                          |
	                  +-----------+     +-----+-----+
	                  | Reporter  |<----|   text    |
	                  | (console) |     | (replace) |
	                  +-----------+     +-----------+

🔄 Flow:
1. New validates the settings and builds every matcher up front, so bad
   globs, unknown types and bad selections fail before anything is read
2. Run walks the tree; each file is scanned to the end before the next
3. Every match gets the next ordinal, then eligibility is decided
4. Depending on the mode the match is reported, previewed or written
5. The totals are handed to the Reporter once the walk is done

⚡ Error handling:
- Config and Argument errors come out of New
- A missing root comes out of Run
- Everything per entry or per file goes to Reporter.Diagnostic and the run
  continues; encoding errors only when verbose

🔍 Example:

	op, err := operation.New(operation.Options{Settings: settings, Reporter: reporter})
	if err != nil {
		return err
	}
	totals, err := op.Run(ctx)
*/
package operation
