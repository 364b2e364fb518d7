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
	"strings"
	"unicode/utf8"
)

// IndexFold returns the byte span of the first occurrence of substr in s
// under simple Unicode case folding, or -1, -1. The span is measured in s,
// whose byte length can differ from substr's.
func IndexFold(s, substr string) (start, end int) {
	if substr == "" {
		return 0, 0
	}
	n := utf8.RuneCountInString(substr)

	for start = 0; start < len(s); {
		end = start
		i := 0
		for ; i < n && end < len(s); i++ {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
		}
		if i < n {
			break
		}
		if strings.EqualFold(s[start:end], substr) {
			return start, end
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	return -1, -1
}

// ContainsFold reports whether substr is within s under simple Unicode case
// folding
func ContainsFold(s, substr string) bool {
	start, _ := IndexFold(s, substr)
	return start >= 0
}

// ReplaceFold replaces every case-folded occurrence of old in s with repl,
// scanning left to right without overlap
func ReplaceFold(s, old, repl string) (string, int) {
	if old == "" {
		return s, 0
	}

	var b strings.Builder
	count := 0
	rest := s
	for {
		start, end := IndexFold(rest, old)
		if start < 0 {
			break
		}
		if count == 0 {
			b.Grow(len(s))
		}
		b.WriteString(rest[:start])
		b.WriteString(repl)
		rest = rest[end:]
		count++
	}
	if count == 0 {
		return s, 0
	}
	b.WriteString(rest)
	return b.String(), count
}
