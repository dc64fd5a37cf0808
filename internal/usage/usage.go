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

// Package usage finds references to declarations in a syntax tree.
package usage

import (
	"iter"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// Analyzer answers reference queries on a tree. Only nodes attached to the tree are
// considered, so detached subtrees never contribute references.
type Analyzer struct {
	tree *syntax.Tree
}

// New creates an [Analyzer] for the tree.
func New(tree *syntax.Tree) Analyzer {
	return Analyzer{tree: tree}
}

// References returns the references to binding within scope (inclusive).
func (a Analyzer) References(binding, scope syntax.NodeIndex) iter.Seq[Reference] {
	return func(yield func(Reference) bool) {
		if !a.tree.Attached(scope) {
			return
		}

		for c := range a.tree.At(scope).Preorder(syntax.KindRef) {
			if c.Node().Binding != binding {
				continue
			}

			if !yield(Reference{Node: c.Index(), Usage: usageOf(c)}) {
				return
			}
		}
	}
}

// CountReferences returns the number of references to binding within scope.
func (a Analyzer) CountReferences(binding, scope syntax.NodeIndex) int {
	n := 0
	for range a.References(binding, scope) {
		n++
	}

	return n
}

// HasWriteUsageOutside reports whether binding is reassigned within scope, ignoring
// references inside the excluded subtree. Pass [syntax.InvalidNode] to exclude nothing.
func (a Analyzer) HasWriteUsageOutside(binding, scope, excluded syntax.NodeIndex) bool {
	for ref := range a.References(binding, scope) {
		if excluded.Valid() && a.tree.Contains(excluded, ref.Node) {
			continue
		}

		if ref.Usage.Write() {
			return true
		}
	}

	return false
}

// usageOf classifies a reference by its position in the enclosing statement.
func usageOf(c syntax.Cursor) Flags {
	// Parentheses do not change the usage: (x) = 1
	for c.Parent().Kind() == syntax.KindParen {
		c = c.Parent()
	}

	switch edge, _ := c.ParentEdge(); edge {
	case syntax.EdgeAssignLhs:
		if c.Parent().Node().Op == "=" {
			return UsageWrite
		}

		return UsageReadWrite

	case syntax.EdgeIncDecX:
		return UsageReadWrite

	default:
		return UsageRead
	}
}
