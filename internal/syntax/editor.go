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
	"fmt"
	"slices"
)

// Editor performs structural changes on a [Tree].
//
// Only one Editor may be open per tree; [Tree.Edit] panics otherwise.
type Editor struct {
	t *Tree
}

// Edit opens an [Editor] on the tree. Call [Editor.Done] when finished.
func (t *Tree) Edit() *Editor {
	if t.editing {
		panic("syntax: concurrent edit of tree")
	}

	t.editing = true

	return &Editor{t}
}

// Done closes the editor.
func (e *Editor) Done() {
	if e.t == nil {
		return
	}

	e.t.editing = false
	e.t = nil
}

// Tree returns the edited tree.
func (e *Editor) Tree() *Tree {
	return e.t
}

// Add creates a new detached node.
func (e *Editor) Add(n Node) NodeIndex {
	return e.t.add(n)
}

// Append attaches the detached node c as the last child of parent on edge.
func (e *Editor) Append(parent NodeIndex, edge Edge, c NodeIndex) {
	e.checkDetached(c)

	p := &e.t.nodes[parent]
	if !edge.List() && slices.ContainsFunc(p.children, func(c child) bool { return c.edge == edge }) {
		panic(fmt.Sprintf("syntax: %s already has a %s child", p.Kind, edge))
	}

	p.children = append(p.children, child{edge, c})
	e.t.nodes[c].parent = parent
}

// Insert attaches the detached node c at index i of parent's edge list.
func (e *Editor) Insert(parent NodeIndex, edge Edge, i int, c NodeIndex) {
	e.checkDetached(c)

	p := &e.t.nodes[parent]

	offset, seen := len(p.children), 0
	for o, ch := range p.children {
		if ch.edge != edge {
			continue
		}

		if seen == i {
			offset = o
			break
		}

		seen++
		offset = o + 1
	}

	p.children = slices.Insert(p.children, offset, child{edge, c})
	e.t.nodes[c].parent = parent
}

// Replace puts the detached node with in place of old, which becomes detached.
func (e *Editor) Replace(old, with NodeIndex) {
	e.checkDetached(with)

	parent, _, offset := e.t.position(old)
	if !parent.Valid() {
		panic(fmt.Sprintf("syntax: replacing detached %s node", e.t.nodes[old].Kind))
	}

	e.t.nodes[parent].children[offset].index = with
	e.t.nodes[with].parent = parent
	e.t.nodes[old].parent = InvalidNode
}

// Delete detaches node n from its parent.
func (e *Editor) Delete(n NodeIndex) {
	parent, _, offset := e.t.position(n)
	if !parent.Valid() {
		return
	}

	e.t.nodes[parent].children = slices.Delete(e.t.nodes[parent].children, offset, offset+1)
	e.t.nodes[n].parent = InvalidNode
}

// DeleteWithLabels detaches node n together with all labels wrapping it.
// It returns the outermost detached node.
func (e *Editor) DeleteWithLabels(n NodeIndex) NodeIndex {
	outer := Unlabel(e.t, n)
	e.Delete(outer)

	return outer
}

// SetMutable changes a property between "var" (mutable) and "val".
func (e *Editor) SetMutable(n NodeIndex, mutable bool) {
	if e.t.nodes[n].Kind != KindProperty {
		panic(fmt.Sprintf("syntax: setting mutability of %s node", e.t.nodes[n].Kind))
	}

	e.t.nodes[n].Mutable = mutable
}

// Clone copies the subtree rooted at n into new detached nodes.
//
// References bound to a key of rebind are bound to the corresponding value in the copy.
// Declarations within the subtree are rebound to their copies automatically.
// Positions are kept, so printed comments and lines stay comparable.
func (e *Editor) Clone(n NodeIndex, rebind map[NodeIndex]NodeIndex) NodeIndex {
	mapping := make(map[NodeIndex]NodeIndex, len(rebind))
	for k, v := range rebind {
		mapping[k] = v
	}

	var refs []NodeIndex

	c := e.clone(n, mapping, &refs)

	for _, r := range refs {
		if b, ok := mapping[e.t.nodes[r].Binding]; ok {
			e.t.nodes[r].Binding = b
		}
	}

	return c
}

func (e *Editor) clone(n NodeIndex, mapping map[NodeIndex]NodeIndex, refs *[]NodeIndex) NodeIndex {
	c := e.t.add(e.t.nodes[n].Node)

	switch e.t.nodes[n].Kind {
	case KindRef:
		*refs = append(*refs, c)

	case KindProperty, KindParameter:
		mapping[n] = c
	}

	for _, ch := range e.t.nodes[n].children {
		cc := e.clone(ch.index, mapping, refs)
		e.t.nodes[c].children = append(e.t.nodes[c].children, child{ch.edge, cc})
		e.t.nodes[cc].parent = c
	}

	return c
}

func (e *Editor) checkDetached(n NodeIndex) {
	if p := e.t.nodes[n].parent; p.Valid() {
		panic(fmt.Sprintf("syntax: %s node is already attached to %s", e.t.nodes[n].Kind, e.t.nodes[p].Kind))
	}
}
