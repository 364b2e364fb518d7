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

// Command fnr finds and replaces literal text across a directory tree.
package main

import (
	"context"
	"io"
	"os"

	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/log"
)

// Exit statuses
const (
	exitOK       = 0
	exitFailure  = 1 // root path or internal failure
	exitBadUsage = 2 // config or argument error
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log.ConfigureStyling(stdout, stderr)
	reporter := log.New(stdout, stderr, false)
	ctx = log.NewContext(ctx, reporter)

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		reporter.Error(err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps a fatal error to the exit status
func exitCode(err error) int {
	switch errkind.Of(err) {
	case errkind.Config, errkind.Argument:
		return exitBadUsage
	default:
		return exitFailure
	}
}
