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

// Package errkind classifies the errors produced during a run so callers can
// tell fatal failures from the ones that are reported and skipped.
package errkind

import (
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Kind identifies the class of a run error
type Kind int

const (
	Unknown Kind = iota
	Config        // invalid glob, unknown type, unreadable defaults file
	Argument      // invalid selection token or pattern
	RootPath      // root path missing or unreadable
	TraversalEntry
	FileOpen
	FileRead
	Encoding
	FileWrite
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Config:
		return "config error"
	case Argument:
		return "argument error"
	case RootPath:
		return "root path error"
	case TraversalEntry:
		return "traversal entry error"
	case FileOpen:
		return "file open error"
	case FileRead:
		return "file read error"
	case Encoding:
		return "encoding error"
	case FileWrite:
		return "file write error"
	default:
		return "error"
	}
}

// ⚡ Fatal reports whether an error of this kind ends the run.
// Unknown errors are fatal since nothing recovers them.
func (k Kind) Fatal() bool {
	switch k {
	case TraversalEntry, FileOpen, FileRead, Encoding, FileWrite:
		return false
	default:
		return true
	}
}

// 📦 Error attaches a Kind to an underlying error
type Error struct {
	Kind Kind
	Path string // offending path, empty when not path related
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return e.Kind.String() + ": " + e.Path + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// 🏭 New wraps err with kind. A nil err yields nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// 🏭 WithPath wraps err with kind and the path it concerns
func WithPath(kind Kind, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// 🔍 Of returns the kind of the outermost classified error in the chain
func Of(err error) Kind {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr.Kind
	}
	return Unknown
}

// 🔍 Is reports whether err carries kind
func Is(err error, kind Kind) bool {
	return err != nil && Of(err) == kind
}
