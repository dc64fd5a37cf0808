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

package syntax

import "iter"

// Cursor is a node in a [Tree], in the manner of an inspector cursor.
// The zero Cursor is invalid.
type Cursor struct {
	tree  *Tree
	index NodeIndex
}

// Tree returns the tree of the cursor.
func (c Cursor) Tree() *Tree {
	return c.tree
}

// Index returns the node index of the cursor.
func (c Cursor) Index() NodeIndex {
	if c.tree == nil {
		return InvalidNode
	}

	return c.index
}

// Valid reports whether the cursor denotes a node.
func (c Cursor) Valid() bool {
	return c.tree != nil && c.index.Valid()
}

// Node returns the attributes of the current node.
func (c Cursor) Node() Node {
	return c.tree.Node(c.index)
}

// Kind returns the kind of the current node.
func (c Cursor) Kind() Kind {
	if !c.Valid() {
		return KindInvalid
	}

	return c.tree.nodes[c.index].Kind
}

// Attached reports whether the current node is reachable from the root.
func (c Cursor) Attached() bool {
	return c.Valid() && c.tree.Attached(c.index)
}

// Parent returns the parent of the current node, or an invalid cursor at the root
// or for detached nodes.
func (c Cursor) Parent() Cursor {
	if !c.Valid() {
		return Cursor{}
	}

	parent := c.tree.nodes[c.index].parent
	if !parent.Valid() {
		return Cursor{}
	}

	return Cursor{c.tree, parent}
}

// ParentEdge returns the edge the current node occupies in its parent and its
// index within that edge (-1 for non-list edges).
func (c Cursor) ParentEdge() (Edge, int) {
	if !c.Valid() {
		return EdgeInvalid, -1
	}

	parent, edge, offset := c.tree.position(c.index)
	if !parent.Valid() {
		return EdgeInvalid, -1
	}

	if !edge.List() {
		return edge, -1
	}

	return edge, c.tree.edgeIndex(parent, edge, offset)
}

// ChildAt returns the i-th child on edge. Use -1 for non-list edges.
func (c Cursor) ChildAt(edge Edge, i int) Cursor {
	if !c.Valid() {
		return Cursor{}
	}

	n := c.tree.childAt(c.index, edge, i)
	if !n.Valid() {
		return Cursor{}
	}

	return Cursor{c.tree, n}
}

// Children returns the children on edge.
func (c Cursor) Children(edge Edge) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		if !c.Valid() {
			return
		}

		for _, n := range c.tree.children(c.index, edge) {
			if !yield(Cursor{c.tree, n}) {
				return
			}
		}
	}
}

// Preorder returns an iterator over the subtree of the current node (inclusive) in
// depth-first preorder. When kinds are given, only nodes of those kinds are yielded,
// but the traversal still descends into all nodes.
func (c Cursor) Preorder(kinds ...Kind) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		if !c.Valid() {
			return
		}

		c.preorder(c.index, kinds, yield)
	}
}

func (c Cursor) preorder(n NodeIndex, kinds []Kind, yield func(Cursor) bool) bool {
	if len(kinds) == 0 || containsKind(kinds, c.tree.nodes[n].Kind) {
		if !yield(Cursor{c.tree, n}) {
			return false
		}
	}

	for _, ch := range c.tree.nodes[n].children {
		if !c.preorder(ch.index, kinds, yield) {
			return false
		}
	}

	return true
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}

	return false
}

// Enclosing returns the nearest proper ancestor of one of the given kinds.
func (c Cursor) Enclosing(kinds ...Kind) Cursor {
	for p := c.Parent(); p.Valid(); p = p.Parent() {
		if containsKind(kinds, p.Kind()) {
			return p
		}
	}

	return Cursor{}
}

// Statements returns the statements of a file, block or lambda, or the node itself for
// any other statement. Comments are included.
func (c Cursor) Statements() []NodeIndex {
	switch c.Kind() {
	case KindFile:
		return c.tree.children(c.index, EdgeFileStmts)

	case KindBlock:
		return c.tree.children(c.index, EdgeBlockStmts)

	case KindLambda:
		return c.tree.children(c.index, EdgeLambdaBody)

	case KindInvalid:
		return nil

	default:
		return []NodeIndex{c.index}
	}
}

// PrevStatement returns the statement preceding the current one in its statement list,
// skipping comments. The result is invalid if there is none.
func (c Cursor) PrevStatement() Cursor {
	edge, i := c.ParentEdge()
	if !edge.Statements() {
		return Cursor{}
	}

	parent := c.Parent()

	for i--; i >= 0; i-- {
		prev := parent.ChildAt(edge, i)
		if prev.Kind() != KindComment {
			return prev
		}
	}

	return Cursor{}
}

// Unlabel returns the outermost [KindLabeled] node wrapping n, or n itself.
func Unlabel(t *Tree, n NodeIndex) NodeIndex {
	for {
		parent := t.nodes[n].parent
		if !parent.Valid() || t.nodes[parent].Kind != KindLabeled {
			return n
		}

		n = parent
	}
}

// Labels yields the labels wrapping node n, innermost first.
func Labels(t *Tree, n NodeIndex) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			parent := t.nodes[n].parent
			if !parent.Valid() || t.nodes[parent].Kind != KindLabeled {
				return
			}

			if !yield(t.nodes[parent].Name) {
				return
			}

			n = parent
		}
	}
}

// StripParens returns the expression inside any number of parentheses.
func StripParens(c Cursor) Cursor {
	for c.Kind() == KindParen {
		c = c.ChildAt(EdgeParenX, -1)
	}

	return c
}
