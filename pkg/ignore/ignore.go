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

// Package ignore reads .fnrignore files and evaluates them the way ignore
// files usually work: deeper files win over shallower ones, later lines win
// over earlier ones, and "!" re-includes.
package ignore

import (
	"bufio"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/fnr/pkg/errkind"
	"gitlab.com/tozd/go/errors"
)

// FileName is the per-directory ignore file honored during traversal
const FileName = ".fnrignore"

// ErrInvalidRule marks the warnings returned for malformed lines
var ErrInvalidRule = errors.New("invalid ignore rule")

// 📏 Rule is one parsed ignore line
type Rule struct {
	Pattern  string // doublestar glob, without "!", leading or trailing "/"
	Negate   bool   // "!pattern" re-includes
	DirOnly  bool   // "pattern/" only matches directories
	Anchored bool   // pattern is relative to the ignore file's directory
	Line     int
}

// 📄 File holds the rules of one ignore file and the directory it lives in
type File struct {
	Dir   string
	Rules []Rule
}

// 📖 Load reads the ignore file of dir. A missing file yields a nil File and
// no error. Malformed lines are skipped and returned as warnings.
func Load(dir string) (*File, []error, error) {
	p := filepath.Join(dir, FileName)
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, errkind.WithPath(errkind.TraversalEntry, p, errors.Errorf("opening ignore file: %w", err))
	}
	defer f.Close()

	return Parse(dir, p, f)
}

// 📝 Parse reads ignore rules from r. name is only used in warnings.
func Parse(dir, name string, r io.Reader) (*File, []error, error) {
	file := &File{Dir: filepath.Clean(dir)}
	var warnings []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rule, ok, err := parseLine(scanner.Text(), lineNo)
		if err != nil {
			warnings = append(warnings, errkind.WithPath(errkind.TraversalEntry, name, err))
			continue
		}
		if ok {
			file.Rules = append(file.Rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, errkind.WithPath(errkind.TraversalEntry, name, errors.Errorf("reading ignore file: %w", err))
	}

	return file, warnings, nil
}

func parseLine(raw string, lineNo int) (Rule, bool, error) {
	line := strings.TrimRight(raw, " \t\r")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false, nil
	}

	rule := Rule{Line: lineNo}

	switch {
	case strings.HasPrefix(line, `\#`), strings.HasPrefix(line, `\!`):
		line = line[1:]
	case strings.HasPrefix(line, "!"):
		rule.Negate = true
		line = line[1:]
	}

	if strings.HasSuffix(line, "/") {
		rule.DirOnly = true
		line = strings.TrimRight(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		rule.Anchored = true
		line = strings.TrimLeft(line, "/")
	}
	if strings.Contains(line, "/") {
		rule.Anchored = true
	}

	if line == "" {
		return Rule{}, false, errors.Errorf("%w: line %d: empty pattern %q", ErrInvalidRule, lineNo, raw)
	}
	if !doublestar.ValidatePattern(line) {
		return Rule{}, false, errors.Errorf("%w: line %d: invalid pattern %q", ErrInvalidRule, lineNo, raw)
	}

	rule.Pattern = line
	return rule, true, nil
}

// 🔍 Match evaluates p against the rules. matched is false when no rule
// applies; otherwise ignored tells the verdict of the last matching rule.
func (f *File) Match(p string, isDir bool) (matched, ignored bool) {
	if f == nil {
		return false, false
	}

	rel, err := filepath.Rel(f.Dir, filepath.Clean(p))
	if err != nil {
		return false, false
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false, false
	}

	for i := len(f.Rules) - 1; i >= 0; i-- {
		r := f.Rules[i]
		if r.DirOnly && !isDir {
			continue
		}
		target := rel
		if !r.Anchored {
			target = path.Base(rel)
		}
		if doublestar.MatchUnvalidated(r.Pattern, target) {
			return true, !r.Negate
		}
	}
	return false, false
}

// 📚 Stack tracks the ignore files of the directories currently being
// walked, shallowest first
type Stack struct {
	files []*File
}

// Push adds the ignore file of a newly entered directory. nil is a no-op.
func (s *Stack) Push(f *File) {
	if f == nil {
		return
	}
	s.files = append(s.files, f)
}

// Enter drops the ignore files that do not apply to entries of dir. The
// walk is depth first, so anything left behind is a sibling subtree.
func (s *Stack) Enter(dir string) {
	dir = filepath.Clean(dir)
	for len(s.files) > 0 && !within(s.files[len(s.files)-1].Dir, dir) {
		s.files = s.files[:len(s.files)-1]
	}
}

// Depth returns the number of active ignore files
func (s *Stack) Depth() int {
	return len(s.files)
}

// ✅ Ignored reports whether p is excluded by the active ignore files
func (s *Stack) Ignored(p string, isDir bool) bool {
	for i := len(s.files) - 1; i >= 0; i-- {
		if matched, ignored := s.files[i].Match(p, isDir); matched {
			return ignored
		}
	}
	return false
}

// within reports whether dir is base or below it
func within(base, dir string) bool {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return rel != ".." && !strings.HasPrefix(rel, "../")
}
