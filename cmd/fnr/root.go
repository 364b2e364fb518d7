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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fnr/pkg/config"
	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/log"
	"github.com/walteh/fnr/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the flag values of one invocation
type rootOpts struct {
	settings   config.Settings
	configFile string
	debug      bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "fnr OLD_PATTERN NEW_PATTERN [PATH]",
		Short: "Find and replace literal text across a directory tree",
		Long: `fnr walks PATH (the current directory by default), finds every line that
contains OLD_PATTERN literally and shows what replacing it with NEW_PATTERN
would look like. Nothing is written unless --write is given.

Every match is numbered in the order it is found. Use --select with those
numbers to limit which matches are written.`,
		Example: `  # preview replacing "world" with "there" below the current directory
  fnr world there

  # only look at Go and Rust files, skipping vendored code
  fnr -t go,rust -o vendor oldName newName ./src

  # write matches 1 to 3 and 5 of the preview
  fnr world there --select 1-3,5 --write

  # list matches without a replacement, ignoring case
  fnr -l -i world _`,
		Args:          rootArgs,
		Version:       versionLine(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), args, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Version}}")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errkind.New(errkind.Argument, err)
	})

	addRootFlags(cmd, o)
	return cmd
}

// rootArgs accepts the two patterns and an optional path
func rootArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(2, 3)(cmd, args); err != nil {
		return errkind.New(errkind.Argument, err)
	}
	return nil
}

// addRootFlags adds the flags of the root command
func addRootFlags(cmd *cobra.Command, o *rootOpts) {
	f := cmd.Flags()
	f.BoolVar(&o.settings.Write, "write", false, "write replacements to disk")
	f.BoolVar(&o.settings.Hidden, "hidden", false, "include hidden files and directories")
	f.StringSliceVarP(&o.settings.Omit, "omit", "o", nil, "paths to exclude from the search")
	f.BoolVarP(&o.settings.Verbose, "verbose", "v", false, "report undecodable files and skipped entries")
	f.BoolVarP(&o.settings.IgnoreCase, "ignore-case", "i", false, "match OLD_PATTERN case insensitively")
	f.BoolVarP(&o.settings.Lookup, "lookup", "l", false, "only list matches")
	f.StringSliceVarP(&o.settings.Type, "type", "t", nil, "only search these file types or globs")
	f.StringSliceVarP(&o.settings.TypeNot, "type-not", "T", nil, "skip these file types or globs")
	f.StringSliceVarP(&o.settings.Select, "select", "s", nil, "match numbers or ranges to replace, e.g. 1-3,5")
	f.BoolVar(&o.settings.NoIgnoreFiles, "no-ignore", false, "do not read .fnrignore files")
	f.StringVarP(&o.configFile, "config", "c", "", "defaults file (default: .fnr.{yaml,yml,hcl,json} in PATH)")
	f.BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, w io.Writer, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !log.IsTerminal(w)}).
		Level(level).
		With().Timestamp().
		Logger()
	return logger.WithContext(ctx)
}

func (o *rootOpts) run(ctx context.Context, args []string, stderr io.Writer) error {
	ctx = setupLogging(ctx, stderr, o.debug)
	reporter := log.FromContext(ctx)

	s := &o.settings
	s.OldPattern = args[0]
	s.NewPattern = args[1]
	if len(args) == 3 {
		s.Root = args[2]
	}
	if s.Root == "" {
		s.Root = "."
	}

	if err := o.applyDefaults(ctx); err != nil {
		return err
	}
	reporter.SetVerbose(s.Verbose)

	op, err := operation.New(operation.Options{Settings: s, Reporter: reporter})
	if err != nil {
		return err
	}

	if _, err := op.Run(ctx); err != nil {
		return errors.Errorf("running fnr: %w", err)
	}
	return nil
}

// applyDefaults merges the defaults file, if any, under the flags
func (o *rootOpts) applyDefaults(ctx context.Context) error {
	path := o.configFile
	if path == "" {
		found, ok := config.Discover(o.settings.Root)
		if !ok {
			return nil
		}
		path = found
	}

	defaults, err := config.Load(ctx, path)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().Str("path", defaults.Location()).Msg("applied defaults file")
	o.settings.ApplyDefaults(defaults)
	return nil
}
