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

// Package log renders the output of a run: match previews on the console,
// warnings and diagnostics through pterm, and the end of run summary.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/operation"
	"github.com/walteh/fnr/pkg/status"
)

var _ operation.Reporter = (*Logger)(nil)

// 🎯 Logger renders run events. Previews and the summary go to the console
// writer, warnings and diagnostics to the diagnostics writer.
type Logger struct {
	console   io.Writer
	formatter status.Formatter
	warn      *pterm.PrefixPrinter
	fail      *pterm.PrefixPrinter
	dmp       *diffmatchpatch.DiffMatchPatch
	mu        sync.Mutex
	lastPath  string
}

// 🏭 New creates a new logger
func New(console, diagnostics io.Writer, verbose bool) *Logger {
	return &Logger{
		console:   console,
		formatter: &status.DefaultFormatter{Verbose: verbose},
		warn:      pterm.Warning.WithWriter(diagnostics),
		fail:      pterm.Error.WithWriter(diagnostics),
		dmp:       diffmatchpatch.New(),
	}
}

// SetVerbose toggles the verbose summary lines
func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formatter = &status.DefaultFormatter{Verbose: verbose}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureStyling turns colors off for both fatih/color and pterm unless
// the console and diagnostics writers are terminals
func ConfigureStyling(console, diagnostics io.Writer) {
	if IsTerminal(console) && IsTerminal(diagnostics) {
		color.NoColor = false
		pterm.EnableStyling()
		return
	}
	color.NoColor = true
	pterm.DisableStyling()
}

// fileHeader prints the path once when the run moves to a new file
func (l *Logger) fileHeader(path string) {
	if path == l.lastPath {
		return
	}
	l.lastPath = path
	fmt.Fprintf(l.console, "\n%s\n", color.New(color.Bold, color.Underline).Sprint(path))
}

// 🔍 Lookup implements operation.Reporter.Lookup
func (l *Logger) Lookup(ctx context.Context, ev operation.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fileHeader(ev.Match.Path)
	fmt.Fprintf(l.console, "%s %s: %s\n",
		color.CyanString("[%d]", ev.Ordinal),
		color.New(color.Bold).Sprintf("%s:%d", ev.Match.Path, ev.Match.Line),
		ev.Match.Text)

	zerolog.Ctx(ctx).Debug().
		Str("file", ev.Match.Path).
		Int("line", ev.Match.Line).
		Int("ordinal", ev.Ordinal).
		Msg("match")
}

// 📝 Preview implements operation.Reporter.Preview
func (l *Logger) Preview(ctx context.Context, ev operation.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fileHeader(ev.Match.Path)
	fmt.Fprintln(l.console, status.FormatMatchHeader(ev.Ordinal, ev.Match.Path, ev.Match.Line, ev.State))

	before, after := l.formatDiff(ev.Match.Text, ev.After, ev.State == status.MatchSkipped)
	fmt.Fprintln(l.console, before)
	fmt.Fprintln(l.console, after)

	zerolog.Ctx(ctx).Debug().
		Str("file", ev.Match.Path).
		Int("line", ev.Match.Line).
		Int("ordinal", ev.Ordinal).
		Str("state", ev.State.String()).
		Msg("replacement")
}

// formatDiff renders the "-- old" and "++ new" lines. The changed spans are
// highlighted unless the match is skipped, in which case both are faint.
func (l *Logger) formatDiff(before, after string, skipped bool) (string, string) {
	if skipped {
		faint := color.New(color.Faint)
		return faint.Sprint("  -- " + before), faint.Sprint("  ++ " + after)
	}

	diffs := l.dmp.DiffMain(before, after, false)
	diffs = l.dmp.DiffCleanupSemantic(diffs)

	red := color.New(color.FgRed)
	redHi := color.New(color.FgRed, color.Bold, color.Underline)
	green := color.New(color.FgGreen)
	greenHi := color.New(color.FgGreen, color.Bold, color.Underline)

	var old, repl strings.Builder
	old.WriteString(red.Sprint("  -- "))
	repl.WriteString(green.Sprint("  ++ "))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			old.WriteString(red.Sprint(d.Text))
			repl.WriteString(green.Sprint(d.Text))
		case diffmatchpatch.DiffDelete:
			old.WriteString(redHi.Sprint(d.Text))
		case diffmatchpatch.DiffInsert:
			repl.WriteString(greenHi.Sprint(d.Text))
		}
	}
	return old.String(), repl.String()
}

// ⚠️ Diagnostic implements operation.Reporter.Diagnostic
func (l *Logger) Diagnostic(ctx context.Context, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if errkind.Of(err) == errkind.FileWrite {
		l.fail.Println(err.Error())
	} else {
		l.warn.Println(err.Error())
	}
	zerolog.Ctx(ctx).Debug().Err(err).Str("kind", errkind.Of(err).String()).Msg("recovered error")
}

// 📊 Summary implements operation.Reporter.Summary
func (l *Logger) Summary(ctx context.Context, totals *status.Totals) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console)
	for i, line := range l.formatter.FormatSummary(totals) {
		switch {
		case i == 0 && totals.Matches > 0:
			fmt.Fprintln(l.console, color.New(color.Bold).Sprint(line))
		case line == status.WriteHint:
			fmt.Fprintln(l.console, color.New(color.Faint).Sprint(line))
		default:
			fmt.Fprintln(l.console, line)
		}
	}

	if msg := l.formatter.FormatWarning(totals.Warning(), totals); msg != "" {
		l.warn.Println(msg)
	}
}

// Error prints a fatal error
func (l *Logger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fail.Println(err.Error())
}
