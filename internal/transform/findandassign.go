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

package transform

import (
	"fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/match"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/usage"
)

// FindAndAssign replaces a loop assigning the first or last element to a preceding declaration:
//
//	var x: T? = null
//	for (e in items) {
//	    x = e
//	    break
//	}
//
// becomes
//
//	val x: T? = items.firstOrNull()
type FindAndAssign struct {
	tree        *syntax.Tree
	loop        syntax.NodeIndex
	variable    syntax.NodeIndex
	idiom       Idiom
	declaration syntax.NodeIndex
	filter      *Filter // nil when no filter is merged
	makeVal     bool

	saving, restoring Range
}

var _ Result = (*FindAndAssign)(nil)

// Idiom implements [Transformation].
func (t *FindAndAssign) Idiom() Idiom { return t.idiom }

func (*FindAndAssign) transformation() {}

// Declaration implements [Result]. It returns the initial declaration the loop computes a value for.
func (t *FindAndAssign) Declaration() syntax.NodeIndex {
	return t.declaration
}

// Loop returns the replaced loop.
func (t *FindAndAssign) Loop() syntax.NodeIndex {
	return t.loop
}

// Filter returns the merged filter, if any.
func (t *FindAndAssign) Filter() (Filter, bool) {
	if t.filter == nil {
		return Filter{}, false
	}

	return *t.filter, true
}

// FindAndAssignMatcher matches [FindAndAssign] transformations.
type FindAndAssignMatcher struct {
	// MakeVal enables turning "var" into "val" when the declaration is not written elsewhere.
	MakeVal bool
}

// Match recognizes the loop body "x = e" or "x = e; break".
func (m FindAndAssignMatcher) Match(state match.State) (match.Result[Result], bool) {
	// index-aware loops are not supported
	if state.Index().Valid() {
		return match.Result[Result]{}, false
	}

	t, loop := state.Tree(), state.Loop()

	var idiom Idiom

	switch state.Len() {
	case 1:
		idiom = IdiomFindLast

	case 2:
		switch second := state.Statement(1).Index(); {
		case match.IsBreakOrContinueOfLoop(t, second, syntax.KindBreak, loop):
			idiom = IdiomFindFirst

		case match.IsBreakOrContinueOfLoop(t, second, syntax.KindContinue, loop):
			idiom = IdiomFindLast

		default:
			return match.Result[Result]{}, false
		}

	default:
		return match.Result[Result]{}, false
	}

	assign := state.Statement(0)
	if assign.Kind() != syntax.KindAssign || assign.Node().Op != "=" {
		return match.Result[Result]{}, false
	}

	decl := match.PrecedingDeclaration(t, loop)
	if !decl.Valid() {
		return match.Result[Result]{}, false
	}

	init := decl.ChildAt(syntax.EdgePropertyInit, -1)
	if !init.Valid() {
		return match.Result[Result]{}, false
	}

	lhs, rhs := assign.ChildAt(syntax.EdgeAssignLhs, -1), assign.ChildAt(syntax.EdgeAssignRhs, -1)
	if !match.IsVariableReference(t, lhs.Index(), decl.Index()) {
		return match.Result[Result]{}, false
	}

	// the assignment must be the only reference within the loop
	if usage.New(t).CountReferences(decl.Index(), loop) != 1 {
		return match.Result[Result]{}, false
	}

	// only copying the element itself is recognized
	if !match.IsVariableReference(t, rhs.Index(), state.Variable()) || !match.IsNullLiteral(t, init.Index()) {
		return match.Result[Result]{}, false
	}

	saving, restoring := commentRanges(t, decl.Index(), loop)

	return match.NewResult[Result](&FindAndAssign{
		tree:        t,
		loop:        loop,
		variable:    state.Variable(),
		idiom:       idiom,
		declaration: decl.Index(),
		makeVal:     m.MakeVal,
		saving:      saving,
		restoring:   restoring,
	}), true
}

// commentRanges computes the saving range [declaration, loop] and the restoring range
// [declaration, loop) within the parent statement list.
func commentRanges(t *syntax.Tree, decl, loop syntax.NodeIndex) (saving, restoring Range) {
	c := t.At(decl)
	edge, start := c.ParentEdge()
	_, end := t.At(syntax.Unlabel(t, loop)).ParentEdge()

	parent := c.Parent().Index()

	return Range{parent, edge, start, end + 1}, Range{parent, edge, start, end}
}

// MergeWithPrevious implements [Result]. Only a [Filter] can be merged.
func (t *FindAndAssign) MergeWithPrevious(prev Sequence) (Result, bool) {
	filter, ok := prev.(Filter)
	if !ok {
		return nil, false
	}

	astutil.Assertf(t.filter == nil, "merging filter into %s with existing filter", t.idiom)

	merged := *t
	merged.variable = filter.InputVariable()
	merged.filter = &filter

	return &merged, true
}

// GenerateCode implements [Result].
func (t *FindAndAssign) GenerateCode(g *chain.Generator) syntax.NodeIndex {
	if t.filter == nil {
		return g.Generate(t.idiom.String(), syntax.InvalidNode)
	}

	lambda := g.Lambda(t.variable, t.filter.BuildRealCondition(g.Editor()))

	return g.Generate(t.idiom.String(), lambda)
}

// ConvertLoop implements [Result]. It replaces the initializer of the declaration by result,
// deletes the loop including its labels and turns "var" into "val" when the declaration is
// not written anywhere else.
func (t *FindAndAssign) ConvertLoop(ed *syntax.Editor, result syntax.NodeIndex) syntax.NodeIndex {
	decl := ed.Tree().At(t.declaration)

	init := decl.ChildAt(syntax.EdgePropertyInit, -1)
	astutil.Assertf(init.Valid(), "declaration %s without initializer", decl.Node().Name)

	ed.Replace(init.Index(), result)
	ed.DeleteWithLabels(t.loop)

	if t.makeVal && decl.Node().Mutable &&
		!usage.New(ed.Tree()).HasWriteUsageOutside(t.declaration, decl.Parent().Index(), syntax.InvalidNode) {
		ed.SetMutable(t.declaration, false)
	}

	return t.declaration
}

// CommentSavingRange implements [Result].
func (t *FindAndAssign) CommentSavingRange() Range {
	return t.saving
}

// CommentRestoringRange implements [Result].
func (t *FindAndAssign) CommentRestoringRange() Range {
	return t.restoring
}
