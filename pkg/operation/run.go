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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/ignore"
	"github.com/walteh/fnr/pkg/scan"
	"github.com/walteh/fnr/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Run implements Operator.Run
func (p *plan) Run(ctx context.Context) (*status.Totals, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("root", p.walker.Root()).
		Str("mode", p.mode.String()).
		Bool("selection", p.selection.Active()).
		Msg("starting run")

	totals := &status.Totals{
		SelectionActive: p.selection.Active(),
		WriteRequested:  p.mode == ModeWrite,
		LookupOnly:      p.mode == ModeLookup,
	}

	err := p.walker.Walk(ctx,
		func(ctx context.Context, path string) error {
			return p.visit(ctx, path, totals)
		},
		func(ctx context.Context, err error) {
			if !errors.Is(err, ignore.ErrInvalidRule) {
				totals.AddSkipped()
			}
			p.diagnostic(ctx, err)
		},
	)
	if err != nil {
		return totals, err
	}

	logger.Debug().
		Int("matches", totals.Matches).
		Int("selected", totals.Selected).
		Int("written", totals.Written).
		Int("files", totals.Files).
		Msg("run complete")

	p.reporter.Summary(ctx, totals)
	return totals, nil
}

// visit scans one file and dispatches its matches
func (p *plan) visit(ctx context.Context, path string, totals *status.Totals) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("visiting file")

	res, err := p.scanner.ScanFile(ctx, path)
	if err != nil {
		kind := errkind.Of(err)
		if kind.Fatal() {
			return err
		}
		if kind == errkind.Encoding {
			totals.AddFile(res.Lines)
		} else {
			totals.AddSkipped()
			totals.Lines += res.Lines
		}
		p.diagnostic(ctx, err)
		return nil
	}

	totals.AddFile(res.Lines)

	for _, m := range res.Matches {
		p.dispatch(ctx, m, totals)
	}
	return nil
}

func (p *plan) dispatch(ctx context.Context, m scan.Match, totals *status.Totals) {
	ordinal := totals.AddMatch()
	eligible := p.selection.Contains(ordinal)
	if eligible {
		totals.AddSelected()
	}

	ev := Event{Match: m, Ordinal: ordinal}

	if p.mode == ModeLookup {
		ev.State = status.MatchLookup
		p.reporter.Lookup(ctx, ev)
		return
	}

	ev.After, _ = p.replacer.ReplaceLine(m.Text)

	var writeErr error
	switch {
	case !eligible:
		ev.State = status.MatchSkipped
	case p.mode == ModeWrite:
		_, writeErr = p.replacer.WriteLine(ctx, m.Path, m.Line)
		totals.AddWrite(writeErr)
		if writeErr != nil {
			ev.State = status.MatchFailed
		} else {
			ev.State = status.MatchWritten
		}
	default:
		ev.State = status.MatchPreview
	}

	p.reporter.Preview(ctx, ev)

	if writeErr != nil {
		if errkind.Of(writeErr) == errkind.Unknown {
			writeErr = errkind.WithPath(errkind.FileWrite, m.Path, writeErr)
		}
		p.diagnostic(ctx, writeErr)
	}
}

// diagnostic forwards a recovered error. Encoding errors are only shown
// when verbose.
func (p *plan) diagnostic(ctx context.Context, err error) {
	if errkind.Of(err) == errkind.Encoding && !p.verbose {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("skipping undecodable file")
		return
	}
	p.reporter.Diagnostic(ctx, err)
}
