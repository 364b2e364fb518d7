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

// Package scan finds the lines of a file that contain a literal pattern.
package scan

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📍 Match is one line containing the pattern
type Match struct {
	Path string
	Line int // 1-based
	Text string
}

// Result is what scanning one file produced
type Result struct {
	Matches []Match
	Lines   int
}

// 🔎 Scanner tests lines for a literal pattern
type Scanner struct {
	pattern    string
	ignoreCase bool
}

// New creates a scanner for pattern
func New(pattern string, ignoreCase bool) *Scanner {
	return &Scanner{pattern: pattern, ignoreCase: ignoreCase}
}

// Matches reports whether line contains the pattern under the active case
// rule
func (s *Scanner) Matches(line string) bool {
	if s.ignoreCase {
		return text.ContainsFold(line, s.pattern)
	}
	return strings.Contains(line, s.pattern)
}

// 📂 ScanFile opens path and scans it. The returned Result is never nil;
// on an Encoding error it carries no matches but still counts the lines
// read before the failure.
func (s *Scanner) ScanFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return &Result{}, errkind.WithPath(errkind.FileOpen, path, errors.Errorf("opening file: %w", err))
	}
	defer f.Close()

	res, err := s.Scan(f, path)
	if err != nil {
		return res, err
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Int("lines", res.Lines).Int("matches", len(res.Matches)).Msg("scanned file")
	return res, nil
}

// Scan reads r line by line. path is recorded in each Match.
func (s *Scanner) Scan(r io.Reader, path string) (*Result, error) {
	res := &Result{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			res.Lines++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")

			if !utf8.ValidString(line) {
				res.Matches = nil
				return res, errkind.WithPath(errkind.Encoding, path, errors.Errorf("line %d is not valid UTF-8", res.Lines))
			}

			if s.Matches(line) {
				res.Matches = append(res.Matches, Match{Path: path, Line: res.Lines, Text: line})
			}
		}

		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			res.Matches = nil
			return res, errkind.WithPath(errkind.FileRead, path, errors.Errorf("reading line %d: %w", res.Lines+1, err))
		}
	}
}
