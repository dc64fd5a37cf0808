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

// Package match holds the state shared by loop idiom matchers.
package match

import (
	"slices"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// State is an immutable snapshot of a loop body segment.
//
// Comments are not part of the statement sequence; they are handled separately
// when the loop is rewritten.
type State struct {
	tree       *syntax.Tree
	statements []syntax.NodeIndex
	variable   syntax.NodeIndex
	index      syntax.NodeIndex
	loop       syntax.NodeIndex
}

// NewState creates the initial [State] for a for loop, holding all body statements.
func NewState(tree *syntax.Tree, loop syntax.NodeIndex) State {
	c := tree.At(loop)

	return State{
		tree:       tree,
		statements: bodyStatements(c.ChildAt(syntax.EdgeForBody, -1)),
		variable:   c.ChildAt(syntax.EdgeForVar, -1).Index(),
		index:      c.ChildAt(syntax.EdgeForIndex, -1).Index(),
		loop:       loop,
	}
}

// bodyStatements returns the statements of a loop body without comments.
func bodyStatements(body syntax.Cursor) []syntax.NodeIndex {
	if !body.Valid() {
		return nil
	}

	var stmts []syntax.NodeIndex

	for _, s := range body.Statements() {
		if body.Tree().Kind(s) == syntax.KindComment {
			continue
		}

		stmts = append(stmts, s)
	}

	return stmts
}

// Tree returns the tree the state refers to.
func (s State) Tree() *syntax.Tree {
	return s.tree
}

// Len returns the number of statements not yet consumed.
func (s State) Len() int {
	return len(s.statements)
}

// Statement returns the i-th statement not yet consumed.
func (s State) Statement(i int) syntax.Cursor {
	return s.tree.At(s.statements[i])
}

// Statements returns a copy of the statements not yet consumed.
func (s State) Statements() []syntax.NodeIndex {
	return slices.Clone(s.statements)
}

// Variable returns the loop variable.
func (s State) Variable() syntax.NodeIndex {
	return s.variable
}

// Index returns the index variable of a destructuring loop, or [syntax.InvalidNode].
func (s State) Index() syntax.NodeIndex {
	return s.index
}

// Loop returns the enclosing for loop.
func (s State) Loop() syntax.NodeIndex {
	return s.loop
}

// Rest returns a state with the first n statements consumed.
func (s State) Rest(n int) State {
	s.statements = s.statements[min(n, len(s.statements)):]

	return s
}

// WithStatements returns a state with a different statement sequence, like the
// statements of a nested block. Comments are dropped.
func (s State) WithStatements(stmts []syntax.NodeIndex) State {
	s.statements = slices.DeleteFunc(slices.Clone(stmts), func(n syntax.NodeIndex) bool {
		return s.tree.Kind(n) == syntax.KindComment
	})

	return s
}
