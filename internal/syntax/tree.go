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

import (
	"go/token"
	"slices"
)

// Tree is an arena of syntax nodes rooted at a [KindFile] node.
//
// A Tree is not safe for concurrent use. Structural changes go through an [Editor],
// of which at most one may be open at a time.
type Tree struct {
	nodes   []entry
	root    NodeIndex
	file    *token.File
	editing bool
}

// entry is the arena slot of a node.
type entry struct {
	Node
	parent   NodeIndex
	children []child
}

// child is a reference from a parent to one of its children.
type child struct {
	edge  Edge
	index NodeIndex
}

// New creates a [Tree] with an empty file node. file may be nil for synthesized trees.
func New(file *token.File) *Tree {
	t := &Tree{file: file}

	var pos, end token.Pos
	if file != nil {
		pos, end = token.Pos(file.Base()), token.Pos(file.Base()+file.Size())
	}

	t.root = t.add(Node{Kind: KindFile, Pos: pos, End: end})

	return t
}

// File returns the source file handle, if any.
func (t *Tree) File() *token.File {
	return t.file
}

// Line returns the source line of pos, or 0 when the position is unknown.
func (t *Tree) Line(pos token.Pos) int {
	if t.file == nil || !pos.IsValid() {
		return 0
	}

	return t.file.Line(pos)
}

// Len returns the number of nodes in the arena, including detached ones.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns a [Cursor] at the file node.
func (t *Tree) Root() Cursor {
	return Cursor{t, t.root}
}

// At returns a [Cursor] for the node n.
func (t *Tree) At(n NodeIndex) Cursor {
	return Cursor{t, n}
}

// Node returns a copy of the attributes of node n.
func (t *Tree) Node(n NodeIndex) Node {
	return t.nodes[n].Node
}

// Kind returns the kind of node n, or [KindInvalid] for an invalid index.
func (t *Tree) Kind(n NodeIndex) Kind {
	if !n.Valid() || int(n) >= len(t.nodes) {
		return KindInvalid
	}

	return t.nodes[n].Kind
}

// Attached reports whether node n is reachable from the root.
func (t *Tree) Attached(n NodeIndex) bool {
	for n.Valid() {
		if n == t.root {
			return true
		}

		n = t.nodes[n].parent
	}

	return false
}

// Contains reports whether node n is within the subtree of ancestor (inclusive).
func (t *Tree) Contains(ancestor, n NodeIndex) bool {
	for n.Valid() {
		if n == ancestor {
			return true
		}

		n = t.nodes[n].parent
	}

	return false
}

func (t *Tree) add(n Node) NodeIndex {
	if n.Kind != KindRef || !t.declaration(n.Binding) {
		n.Binding = InvalidNode
	}

	index := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, entry{Node: n, parent: InvalidNode})

	return index
}

// declaration reports whether n denotes an existing declaration node.
func (t *Tree) declaration(n NodeIndex) bool {
	return n.Valid() && int(n) < len(t.nodes) && t.nodes[n].Kind.Declaration()
}

// position returns the parent of n, the edge n occupies and the offset of n in the parent's
// child list.
func (t *Tree) position(n NodeIndex) (parent NodeIndex, edge Edge, offset int) {
	parent = t.nodes[n].parent
	if !parent.Valid() {
		return InvalidNode, EdgeInvalid, -1
	}

	offset = slices.IndexFunc(t.nodes[parent].children, func(c child) bool { return c.index == n })
	if offset < 0 {
		return InvalidNode, EdgeInvalid, -1
	}

	return parent, t.nodes[parent].children[offset].edge, offset
}

// edgeIndex converts an offset in the parent's child list to an index within the edge.
func (t *Tree) edgeIndex(parent NodeIndex, edge Edge, offset int) int {
	i := 0
	for _, c := range t.nodes[parent].children[:offset] {
		if c.edge == edge {
			i++
		}
	}

	return i
}

// childAt returns the i-th child of parent on edge.
func (t *Tree) childAt(parent NodeIndex, edge Edge, i int) NodeIndex {
	if i < 0 {
		i = 0
	}

	for _, c := range t.nodes[parent].children {
		if c.edge != edge {
			continue
		}

		if i == 0 {
			return c.index
		}

		i--
	}

	return InvalidNode
}

// children returns the children of parent on edge.
func (t *Tree) children(parent NodeIndex, edge Edge) []NodeIndex {
	var result []NodeIndex

	for _, c := range t.nodes[parent].children {
		if c.edge == edge {
			result = append(result, c.index)
		}
	}

	return result
}
