// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	loopchain "fillmore-labs.com/loopchain/analyzer"
	"fillmore-labs.com/loopchain/gclplugin"
	"fillmore-labs.com/loopchain/internal/level"
)

const defaultConfig = ".loopchain.yaml"

// ErrFailed is returned when at least one file could not be processed.
var ErrFailed = errors.New("some files could not be processed")

// Flag names shared with the analyzer.
const (
	flagGenerated   = "generated"
	flagFindFirst   = "find-first"
	flagFindLast    = "find-last"
	flagMergeFilter = "merge-filter"
	flagMakeVal     = "make-val"
)

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                   "loopchain",
		Usage:                  "Replace search loops in Kotlin sources with collection calls",
		Version:                version,
		ArgsUsage:              "[path ...]",
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "write result to source files"},
			&cli.BoolFlag{Name: "diff", Aliases: []string{"d"}, Usage: "display diffs, combined with -w also rewrite the files"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "read settings from `FILE`"},
			&cli.StringFlag{Name: "color", Value: "auto", Usage: "colorize output: auto, always or never"},
			&cli.BoolFlag{Name: "verbose", Usage: "log debug output"},
			&cli.BoolFlag{Name: flagGenerated, Usage: "rewrite generated files"},
			&cli.BoolFlag{Name: flagFindFirst, Value: true, Usage: "rewrite loops stopping at the first match"},
			&cli.BoolFlag{Name: flagFindLast, Value: true, Usage: "rewrite loops keeping the last match"},
			&cli.BoolFlag{Name: flagMergeFilter, Value: true, Usage: "merge a preceding filter into the final call"},
			&cli.BoolFlag{Name: flagMakeVal, Value: true, Usage: "turn var into val when possible"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := newApp(cmd, stdout, stderr)
			if err != nil {
				return err
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{"."}
			}

			return a.run(ctx, paths)
		},
	}
}

// app holds the settings of a single command invocation.
type app struct {
	rewriter *loopchain.Rewriter
	logger   *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
	write    bool
	diff     bool
	pos      *color.Color
	added    *color.Color
	removed  *color.Color
	hunk     *color.Color
}

func newApp(cmd *cli.Command, stdout, stderr io.Writer) (*app, error) {
	var colorMode level.Color
	if err := colorMode.Set(cmd.String("color")); err != nil {
		return nil, err
	}

	logger := slog.New(slog.DiscardHandler)
	if cmd.Bool("verbose") {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	settings, err := loadSettings(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	opts := append(settings.Options(), flagOptions(cmd)...)
	opts = append(opts, loopchain.WithLogger(logger))

	a := &app{
		rewriter: loopchain.NewRewriter(opts...),
		logger:   logger,
		stdout:   stdout,
		stderr:   stderr,
		write:    cmd.Bool("write"),
		diff:     cmd.Bool("diff"),
		pos:      color.New(color.Bold),
		added:    color.New(color.FgGreen),
		removed:  color.New(color.FgRed),
		hunk:     color.New(color.FgCyan),
	}

	if colorMode.Enabled(isTerminal(stdout)) {
		for _, c := range [...]*color.Color{a.pos, a.added, a.removed, a.hunk} {
			c.EnableColor()
		}
	} else {
		for _, c := range [...]*color.Color{a.pos, a.added, a.removed, a.hunk} {
			c.DisableColor()
		}
	}

	return a, nil
}

// flagOptions converts explicitly set command line flags, which take precedence over the configuration file.
func flagOptions(cmd *cli.Command) []loopchain.Option {
	var opts []loopchain.Option

	for _, f := range [...]struct {
		name   string
		option func(bool) loopchain.Option
	}{
		{flagGenerated, loopchain.WithGenerated},
		{flagFindFirst, loopchain.WithFindFirst},
		{flagFindLast, loopchain.WithFindLast},
		{flagMergeFilter, loopchain.WithMergeFilter},
		{flagMakeVal, loopchain.WithMakeVal},
	} {
		if cmd.IsSet(f.name) {
			opts = append(opts, f.option(cmd.Bool(f.name)))
		}
	}

	return opts
}

// loadSettings reads the configuration file. A missing default file yields zero settings.
func loadSettings(name string) (gclplugin.Settings, error) {
	explicit := name != ""
	if !explicit {
		name = defaultConfig
	}

	f, err := os.Open(name)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return gclplugin.Settings{}, nil
		}

		return gclplugin.Settings{}, fmt.Errorf("can't read configuration: %w", err)
	}
	defer f.Close()

	s, err := gclplugin.ReadSettings(f)
	if err != nil {
		return gclplugin.Settings{}, fmt.Errorf("%s: %w", name, err)
	}

	return s, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// fileResult is the outcome of processing a single file.
type fileResult struct {
	path   string
	source []byte
	result loopchain.Result
	err    error
}

func (a *app) run(ctx context.Context, paths []string) error {
	files, err := collectFiles(paths)
	if err != nil {
		return err
	}

	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			results[i] = a.process(ctx, path)

			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := false

	for _, r := range results {
		if err := a.output(r); err != nil {
			fmt.Fprintf(a.stderr, "%s: %v\n", r.path, err)

			failed = true
		}
	}

	if failed {
		return ErrFailed
	}

	return nil
}

func (a *app) process(ctx context.Context, path string) fileResult {
	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	res, err := a.rewriter.Rewrite(ctx, path, src)
	if err != nil {
		return fileResult{path: path, err: err}
	}

	a.logger.LogAttrs(ctx, slog.LevelDebug, "file processed", slog.String("path", path), slog.Int("rewrites", res.Rewrites))

	return fileResult{path: path, source: src, result: res}
}

func (a *app) output(r fileResult) error {
	if r.err != nil {
		return r.err
	}

	if !r.result.Changed() {
		return nil
	}

	switch {
	case a.diff:
		if err := a.printDiff(r); err != nil {
			return err
		}

	case !a.write:
		for _, d := range r.result.Diagnostics {
			fmt.Fprintf(a.stdout, "%s: %s\n", a.pos.Sprint(r.result.Fset.Position(d.Pos)), d.Message)
		}
	}

	if a.write {
		info, err := os.Stat(r.path)
		if err != nil {
			return err
		}

		return os.WriteFile(r.path, r.result.Source, info.Mode().Perm())
	}

	return nil
}

func (a *app) printDiff(r fileResult) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(r.source)),
		B:        difflib.SplitLines(string(r.result.Source)),
		FromFile: r.path + ".orig",
		ToFile:   r.path,
		Context:  3,
	})
	if err != nil {
		return err
	}

	for _, line := range difflib.SplitLines(diff) {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(a.stdout, a.pos.Sprint(line))

		case strings.HasPrefix(line, "+"):
			fmt.Fprint(a.stdout, a.added.Sprint(line))

		case strings.HasPrefix(line, "-"):
			fmt.Fprint(a.stdout, a.removed.Sprint(line))

		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(a.stdout, a.hunk.Sprint(line))

		default:
			fmt.Fprint(a.stdout, line)
		}
	}

	return nil
}

// collectFiles expands directories into the Kotlin source files they contain, skipping hidden directories.
func collectFiles(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, root)

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			if isKotlin(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func isKotlin(path string) bool {
	switch filepath.Ext(path) {
	case ".kt", ".kts":
		return true

	default:
		return false
	}
}
