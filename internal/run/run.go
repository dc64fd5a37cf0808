// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package run

import (
	"context"
	"log/slog"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/config"
	"fillmore-labs.com/loopchain/internal/match"
	"fillmore-labs.com/loopchain/internal/report"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/transform"
)

// Run executes the loop rewriting pipeline on a parsed tree.
//
// Matching loops are rewritten in the tree. For each rewrite a diagnostic is returned
// whose suggested fix reproduces the change as edits of src.
func (r *Options) Run(ctx context.Context, tree *syntax.Tree, src []byte) []analysis.Diagnostic {
	ctx, task := trace.NewTask(ctx, "LoopChain")
	defer task.End()

	currentFile := astutil.NewCurrentFile(tree)
	if !currentFile.Valid() {
		return nil
	}

	trace.Log(ctx, "file", tree.File().Name())

	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		r.Logger.LogAttrs(ctx, slog.LevelDebug, "skipping generated file", slog.String("file", tree.File().Name()))

		return nil
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return nil
	}

	// Collect first, the tree changes while rewriting.
	var loops []syntax.NodeIndex
	for c := range tree.Root().Preorder(syntax.KindFor) {
		loops = append(loops, c.Index())
	}

	var diagnostics []analysis.Diagnostic

	for _, loop := range loops {
		// Loops within a rewritten loop are gone
		if !tree.Attached(loop) {
			continue
		}

		pos := tree.Node(syntax.Unlabel(tree, loop)).Pos
		attrs := []slog.Attr{slog.Int("line", tree.Line(pos)), slog.Int("lines", currentFile.Lines(loop))}

		if currentFile.NoLintComment(pos) {
			r.Logger.LogAttrs(ctx, slog.LevelDebug, "loop suppressed", attrs...)
			continue
		}

		result, sequence, ok := r.match(ctx, match.NewState(tree, loop))
		if !ok {
			r.Logger.LogAttrs(ctx, slog.LevelDebug, "no idiom matched", attrs...)
			continue
		}

		r.Logger.LogAttrs(ctx, slog.LevelDebug, "idiom matched", append(attrs, slog.String("idiom", result.Idiom().String()))...)

		rewrite := r.rewrite(ctx, tree, loop, result, sequence)

		diagnostics = append(diagnostics, report.Diagnostic(tree, src, rewrite))
	}

	return diagnostics
}

// resultMatcher recognizes a [transform.Result] at the start of a state.
type resultMatcher interface {
	Match(state match.State) (match.Result[transform.Result], bool)
}

// sequenceMatcher recognizes a [transform.Sequence] at the start of a state and returns the
// state to continue with.
type sequenceMatcher func(state match.State) (transform.Sequence, match.State, bool)

// resultMatchers returns the result matchers in order of priority.
func (r *Options) resultMatchers() []resultMatcher {
	return []resultMatcher{
		transform.FindAndAssignMatcher{MakeVal: r.Behavior.Enabled(config.MakeVal)},
	}
}

// sequenceMatchers returns the sequence matchers in order of priority.
func sequenceMatchers() []sequenceMatcher {
	return []sequenceMatcher{
		func(state match.State) (transform.Sequence, match.State, bool) { return transform.MatchFilter(state) },
	}
}

// match consumes the loop body with sequence matchers until a result matcher accepts the rest.
// Consecutive filters are merged into one.
func (r *Options) match(ctx context.Context, state match.State) (transform.Result, []transform.Sequence, bool) {
	defer trace.StartRegion(ctx, "Match").End()

	var sequence []transform.Sequence

	for {
		for _, m := range r.resultMatchers() {
			if res, ok := m.Match(state); ok && res.ConsumedAll(state) && r.enabled(res.Transformation.Idiom()) {
				return res.Transformation, sequence, true
			}
		}

		next, ok := nextSequence(state)
		if !ok {
			return nil, nil, false
		}

		t, rest := next.t, next.rest

		if n := len(sequence); n > 0 {
			prev, ok1 := sequence[n-1].(transform.Filter)
			filter, ok2 := t.(transform.Filter)

			if ok1 && ok2 {
				sequence[n-1] = prev.Merge(filter)
				state = rest

				continue
			}
		}

		sequence = append(sequence, t)
		state = rest
	}
}

type sequenceMatch struct {
	t    transform.Sequence
	rest match.State
}

// nextSequence tries the sequence matchers in order.
func nextSequence(state match.State) (sequenceMatch, bool) {
	for _, m := range sequenceMatchers() {
		if t, rest, ok := m(state); ok {
			return sequenceMatch{t, rest}, true
		}
	}

	return sequenceMatch{}, false
}

// enabled reports whether rewriting to idiom is configured.
func (r *Options) enabled(idiom transform.Idiom) bool {
	switch idiom {
	case transform.IdiomFindFirst:
		return r.Idioms.Enabled(config.FindFirst)

	case transform.IdiomFindLast:
		return r.Idioms.Enabled(config.FindLast)

	default:
		return true
	}
}

// rewrite generates the call chain and edits the tree. Comments of the removed loop are
// reinserted after the declaration.
func (r *Options) rewrite(ctx context.Context, tree *syntax.Tree, loop syntax.NodeIndex,
	result transform.Result, sequence []transform.Sequence,
) report.Rewrite {
	defer trace.StartRegion(ctx, "Edit").End()

	if n := len(sequence); n > 0 && r.Behavior.Enabled(config.MergeFilter) {
		if merged, ok := result.MergeWithPrevious(sequence[n-1]); ok {
			result, sequence = merged, sequence[:n-1]
		}
	}

	decl := tree.At(result.Declaration())
	outer := syntax.Unlabel(tree, loop)
	rng := tree.At(loop).ChildAt(syntax.EdgeForRange, -1)

	rewrite := report.Rewrite{
		Idiom:       result.Idiom(),
		Declaration: decl.Index(),
		Initializer: astutil.RangeOf(tree, decl.ChildAt(syntax.EdgePropertyInit, -1).Index()),
		Loop:        outer,
		Prev:        prevSibling(tree, outer),
	}

	mutable := decl.Node().Mutable
	saved := saveComments(tree, result.CommentSavingRange())

	ed := tree.Edit()
	defer ed.Done()

	g := chain.New(ed, rng.Index())
	for _, s := range sequence {
		s.GenerateCode(g)
	}

	rewrite.Result = result.GenerateCode(g)

	result.ConvertLoop(ed, rewrite.Result)

	rewrite.Restored = restoreComments(ed, result.CommentRestoringRange(), saved)
	rewrite.Downgraded = mutable && !tree.Node(decl.Index()).Mutable

	return rewrite
}

// prevSibling returns the node preceding n in its parent's list, including comments.
func prevSibling(tree *syntax.Tree, n syntax.NodeIndex) syntax.NodeIndex {
	c := tree.At(n)

	edge, i := c.ParentEdge()
	if i < 1 {
		return syntax.InvalidNode
	}

	return c.Parent().ChildAt(edge, i-1).Index()
}
