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

// Package walk implements the directory traversal: hidden entries, --omit
// pruning, .fnrignore files and the file type filter.
package walk

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/fnr/pkg/errkind"
	"github.com/walteh/fnr/pkg/filetype"
	"github.com/walteh/fnr/pkg/ignore"
	"github.com/walteh/fnr/pkg/omit"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options configures a Walker
type Options struct {
	// Root is the file or directory to walk
	Root string
	// Hidden includes dot-prefixed entries
	Hidden bool
	// Omit prunes excluded paths, nil disables pruning
	Omit *omit.Matcher
	// Types filters regular files, nil accepts every file
	Types *filetype.Matcher
	// IgnoreFiles honors per-directory .fnrignore files
	IgnoreFiles bool
}

// VisitFunc is called once for each regular file that passes the filters.
// A returned error stops the walk.
type VisitFunc func(ctx context.Context, path string) error

// ErrorFunc receives entries that could not be read. They are skipped and
// the walk continues.
type ErrorFunc func(ctx context.Context, err error)

// 🚶 Walker visits the files below a root
type Walker struct {
	opts Options
}

// 🏭 New creates a walker. An empty root means the current directory.
func New(opts Options) *Walker {
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Walker{opts: opts}
}

// Root returns the root path being walked
func (w *Walker) Root() string {
	return w.opts.Root
}

// 🏃 Walk runs visit for every accepted file. Failing to stat the root is a
// fatal RootPath error; every other unreadable entry goes to onErr.
func (w *Walker) Walk(ctx context.Context, visit VisitFunc, onErr ErrorFunc) error {
	logger := zerolog.Ctx(ctx)
	root := w.opts.Root

	info, err := os.Stat(root)
	if err != nil {
		return errkind.WithPath(errkind.RootPath, root, errors.Errorf("reading root path: %w", err))
	}

	// a file given directly is always scanned
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return errkind.WithPath(errkind.RootPath, root, errors.New("root path is neither a directory nor a regular file"))
		}
		return visit(ctx, root)
	}

	if onErr == nil {
		onErr = func(context.Context, error) {}
	}

	stack := &ignore.Stack{}

	// WalkDir does not descend into a symlinked root unless it ends in a separator
	walkRoot := root
	if linfo, err := os.Lstat(root); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	walkErr := filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if p == walkRoot {
				return errkind.WithPath(errkind.RootPath, root, errors.Errorf("reading root path: %w", err))
			}
			onErr(ctx, errkind.WithPath(errkind.TraversalEntry, p, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if p == walkRoot {
			w.pushIgnoreFile(ctx, stack, p, onErr)
			return nil
		}

		isDir := d.IsDir()

		if skip := w.skip(ctx, stack, p, d.Name(), isDir); skip {
			if isDir {
				logger.Debug().Str("dir", p).Msg("pruning directory")
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			w.pushIgnoreFile(ctx, stack, p, onErr)
			return nil
		}

		regular, err := isRegular(p, d)
		if err != nil {
			onErr(ctx, errkind.WithPath(errkind.TraversalEntry, p, err))
			return nil
		}
		if !regular {
			return nil
		}

		if !w.opts.Types.Match(w.rel(p)) {
			return nil
		}

		return visit(ctx, p)
	})

	if walkErr != nil {
		return errors.Errorf("walking %s: %w", root, walkErr)
	}
	return nil
}

// skip applies the hidden, omit and ignore-file rules
func (w *Walker) skip(ctx context.Context, stack *ignore.Stack, p, name string, isDir bool) bool {
	if !w.opts.Hidden && strings.HasPrefix(name, ".") {
		return true
	}
	if w.opts.Omit.Match(w.rel(p), p) {
		zerolog.Ctx(ctx).Debug().Str("path", p).Msg("omitted")
		return true
	}
	if w.opts.IgnoreFiles {
		stack.Enter(filepath.Dir(p))
		if stack.Ignored(p, isDir) {
			zerolog.Ctx(ctx).Debug().Str("path", p).Msg("ignored by " + ignore.FileName)
			return true
		}
	}
	return false
}

func (w *Walker) pushIgnoreFile(ctx context.Context, stack *ignore.Stack, dir string, onErr ErrorFunc) {
	if !w.opts.IgnoreFiles {
		return
	}
	stack.Enter(dir)
	f, warnings, err := ignore.Load(dir)
	for _, warn := range warnings {
		onErr(ctx, warn)
	}
	if err != nil {
		onErr(ctx, err)
		return
	}
	if f != nil {
		zerolog.Ctx(ctx).Debug().Str("dir", dir).Int("rules", len(f.Rules)).Msg("loaded " + ignore.FileName)
	}
	stack.Push(f)
}

// rel returns the slash separated path of p relative to the root
func (w *Walker) rel(p string) string {
	rel, err := filepath.Rel(w.opts.Root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// isRegular follows symbolic links to files. Links to directories are not
// followed; a dangling link is an error.
func isRegular(p string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(p)
	if err != nil {
		return false, errors.Errorf("resolving symbolic link: %w", err)
	}
	return info.Mode().IsRegular(), nil
}
