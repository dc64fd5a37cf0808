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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/parser"
	"fillmore-labs.com/loopchain/internal/report"
	"fillmore-labs.com/loopchain/internal/run"
)

// ErrSyntax is returned for source files that can not be parsed.
var ErrSyntax = errors.New("syntax error")

// Rewriter rewrites loops in single source files.
// It is immutable and safe for concurrent use.
type Rewriter struct {
	pipeline *run.Options
}

// NewRewriter creates a [Rewriter] configured by opts.
func NewRewriter(opts ...Option) *Rewriter {
	r := makeRunOptions(opts)

	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "rewriter created", Options(opts).LogAttr())

	return &Rewriter{pipeline: r.pipeline()}
}

// Result is the outcome of [Rewriter.Rewrite].
type Result struct {
	// Fset holds the position information of the diagnostics.
	Fset *token.FileSet

	// Diagnostics describe the rewritten loops.
	Diagnostics []analysis.Diagnostic

	// Source is the rewritten source.
	Source []byte

	// Rewrites is the number of rewritten loops.
	Rewrites int
}

// Changed reports whether any loop was rewritten.
func (r Result) Changed() bool {
	return r.Rewrites > 0
}

// Rewrite parses src and rewrites all matching loops.
// Syntax errors are reported wrapped in [ErrSyntax], with the position in the message.
func (r *Rewriter) Rewrite(ctx context.Context, filename string, src []byte) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	fset := token.NewFileSet()

	region := trace.StartRegion(ctx, "Parse")
	tree, err := parser.Parse(fset, filename, src)
	region.End()

	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	diagnostics := r.pipeline.Run(ctx, tree, src)

	var (
		edits    []analysis.TextEdit
		rewrites int
	)

	for _, d := range diagnostics {
		for _, fix := range d.SuggestedFixes {
			edits = append(edits, fix.TextEdits...)
		}

		if len(d.SuggestedFixes) > 0 {
			rewrites++
		}
	}

	out, err := report.ApplyEdits(tree.File(), src, edits)
	if err != nil {
		return Result{}, fmt.Errorf("can't apply edits to %s: %w", filename, err)
	}

	return Result{Fset: fset, Diagnostics: diagnostics, Source: out, Rewrites: rewrites}, nil
}
