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
	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/syntax"
)

// Transformation is a matched loop idiom.
type Transformation interface {
	// Idiom returns the tag of the transformation.
	Idiom() Idiom

	transformation()
}

// Sequence is a transformation producing an intermediate sequence.
type Sequence interface {
	Transformation

	// InputVariable is the loop variable the transformation reads.
	InputVariable() syntax.NodeIndex

	// GenerateCode appends the transformation to the call chain.
	GenerateCode(g *chain.Generator) syntax.NodeIndex
}

// Result is a transformation computing the final value of a loop.
type Result interface {
	Transformation

	// Declaration returns the statement receiving the result.
	Declaration() syntax.NodeIndex

	// MergeWithPrevious combines the transformation with a preceding sequence transformation
	// into a single call. It reports false when prev can not be merged.
	MergeWithPrevious(prev Sequence) (Result, bool)

	// GenerateCode appends the final call to the call chain and returns the chain.
	GenerateCode(g *chain.Generator) syntax.NodeIndex

	// ConvertLoop replaces the loop and returns the statement holding the result.
	ConvertLoop(ed *syntax.Editor, result syntax.NodeIndex) syntax.NodeIndex

	// CommentSavingRange covers the statements whose comments must survive the rewrite.
	CommentSavingRange() Range

	// CommentRestoringRange covers the statements still present after the rewrite.
	CommentRestoringRange() Range
}

// Range is a half-open range [Start, End) of sibling statements.
type Range struct {
	Parent     syntax.NodeIndex
	Edge       syntax.Edge
	Start, End int
}

// Statements returns the statements in the range.
func (r Range) Statements(t *syntax.Tree) []syntax.NodeIndex {
	var stmts []syntax.NodeIndex

	for i := r.Start; i < r.End; i++ {
		if c := t.At(r.Parent).ChildAt(r.Edge, i); c.Valid() {
			stmts = append(stmts, c.Index())
		}
	}

	return stmts
}
