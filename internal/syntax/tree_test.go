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

package syntax_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/testsource"
)

func TestEditor(t *testing.T) {
	t.Parallel()

	tree := New(nil)
	ed := tree.Edit()
	defer ed.Done()

	root := tree.Root().Index()

	a := ed.Add(Node{Kind: KindProperty, Name: "a"})
	b := ed.Add(Node{Kind: KindProperty, Name: "b"})
	c := ed.Add(Node{Kind: KindProperty, Name: "c"})

	ed.Append(root, EdgeFileStmts, a)
	ed.Append(root, EdgeFileStmts, c)
	ed.Insert(root, EdgeFileStmts, 1, b)

	if got, want := names(tree, tree.Root().Statements()), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("Got statements %v, want %v", got, want)
	}

	if edge, i := tree.At(b).ParentEdge(); edge != EdgeFileStmts || i != 1 {
		t.Errorf("Got ParentEdge() = %s, %d, want %s, 1", edge, i, EdgeFileStmts)
	}

	if prev := tree.At(c).PrevStatement(); prev.Index() != b {
		t.Errorf("Got PrevStatement() = %d, want %d", prev.Index(), b)
	}

	d := ed.Add(Node{Kind: KindProperty, Name: "d"})
	ed.Replace(b, d)

	if tree.Attached(b) {
		t.Error("Replaced node is still attached")
	}

	ed.Delete(a)

	if got, want := names(tree, tree.Root().Statements()), []string{"d", "c"}; !slices.Equal(got, want) {
		t.Errorf("Got statements %v, want %v", got, want)
	}

	if !tree.Attached(d) || tree.Attached(a) {
		t.Errorf("Got Attached(d) = %t, Attached(a) = %t", tree.Attached(d), tree.Attached(a))
	}
}

func TestEditorPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		edit func(tree *Tree, ed *Editor)
	}{
		{"concurrent edit", func(tree *Tree, _ *Editor) { tree.Edit() }},
		{"attached child", func(tree *Tree, ed *Editor) {
			n := ed.Add(Node{Kind: KindBreak})
			ed.Append(tree.Root().Index(), EdgeFileStmts, n)
			ed.Append(tree.Root().Index(), EdgeFileStmts, n)
		}},
		{"second single child", func(_ *Tree, ed *Editor) {
			p := ed.Add(Node{Kind: KindParen})
			ed.Append(p, EdgeParenX, ed.Add(Node{Kind: KindRef, Name: "x"}))
			ed.Append(p, EdgeParenX, ed.Add(Node{Kind: KindRef, Name: "y"}))
		}},
		{"mutability of reference", func(_ *Tree, ed *Editor) {
			ed.SetMutable(ed.Add(Node{Kind: KindRef, Name: "x"}), false)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := New(nil)
			ed := tree.Edit()

			defer func() {
				if recover() == nil {
					t.Error("Expected panic")
				}
			}()

			tt.edit(tree, ed)
		})
	}
}

func TestEditAfterDone(t *testing.T) {
	t.Parallel()

	tree := New(nil)

	ed := tree.Edit()
	ed.Done()
	ed.Done()

	tree.Edit().Done()
}

func TestClone(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "for (e in xs) {\n    val y = e\n    f(y, e)\n}\n")

	e := testsource.Declaration(t, tree, "e")
	loop := testsource.First(t, tree, KindFor)
	body := loop.ChildAt(EdgeForBody, -1)

	ed := tree.Edit()
	defer ed.Done()

	param := ed.Add(Node{Kind: KindParameter, Name: "e"})
	clone := ed.Clone(body.Index(), map[NodeIndex]NodeIndex{e.Index(): param})

	if tree.At(clone).Attached() {
		t.Fatal("Clone is attached")
	}

	var y NodeIndex = InvalidNode

	for c := range tree.At(clone).Preorder(KindProperty) {
		y = c.Index()
	}

	if !y.Valid() || y == testsource.Declaration(t, tree, "y").Index() {
		t.Fatalf("Got cloned declaration %d", y)
	}

	for c := range tree.At(clone).Preorder(KindRef) {
		var want NodeIndex

		switch c.Node().Name {
		case "e":
			want = param
		case "y":
			want = y
		default:
			want = InvalidNode
		}

		if got := c.Node().Binding; got != want {
			t.Errorf("Got binding of %s = %d, want %d", c.Node().Name, got, want)
		}
	}

	// The original stays untouched
	for c := range body.Preorder(KindRef) {
		if c.Node().Name == "e" && c.Node().Binding != e.Index() {
			t.Errorf("Original reference rebound to %d", c.Node().Binding)
		}
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "outer@ inner@ for (e in xs) {\n    break@outer\n}\n")

	loop := testsource.First(t, tree, KindFor)

	if got, want := slices.Collect(Labels(tree, loop.Index())), []string{"inner", "outer"}; !slices.Equal(got, want) {
		t.Errorf("Got labels %v, want %v", got, want)
	}

	outer := Unlabel(tree, loop.Index())
	if got := tree.Node(outer); got.Kind != KindLabeled || got.Name != "outer" {
		t.Errorf("Got Unlabel() = %s %q, want Labeled \"outer\"", got.Kind, got.Name)
	}

	ed := tree.Edit()
	defer ed.Done()

	if got := ed.DeleteWithLabels(loop.Index()); got != outer {
		t.Errorf("Got DeleteWithLabels() = %d, want %d", got, outer)
	}

	if len(tree.Root().Statements()) != 0 {
		t.Error("Labeled loop not deleted")
	}

	if !tree.Contains(outer, loop.Index()) {
		t.Error("Detached subtree lost its structure")
	}
}

func TestEnclosing(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "for (e in xs) {\n    xs.forEach { x ->\n        if (x) break\n    }\n}\n")

	brk := testsource.First(t, tree, KindBreak)

	if got := brk.Enclosing(KindFor, KindLambda).Kind(); got != KindLambda {
		t.Errorf("Got enclosing %s, want %s", got, KindLambda)
	}

	if got := brk.Enclosing(KindFor).Index(); got != testsource.First(t, tree, KindFor).Index() {
		t.Errorf("Got enclosing loop %d", got)
	}

	if got := tree.Root().Enclosing(KindFor); got.Valid() {
		t.Errorf("Got enclosing %s of root", got.Kind())
	}
}

func TestStripParens(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "val x = ((a))\n")

	init := testsource.Declaration(t, tree, "x").ChildAt(EdgePropertyInit, -1)

	if got := StripParens(init); got.Kind() != KindRef || got.Node().Name != "a" {
		t.Errorf("Got StripParens() = %s", got.Kind())
	}
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want int
	}{
		{"a || b", PrecDisjunction},
		{"a && b", PrecConjunction},
		{"a == b", PrecEquality},
		{"a < b", PrecComparison},
		{"a in b", PrecNamedCheck},
		{"a ?: b", PrecElvis},
		{"a until b", PrecInfix},
		{"a..b", PrecRange},
		{"a - b", PrecAdditive},
		{"a % b", PrecMultiplicative},
		{"!a", PrecPrefix},
		{"a!!", PrecPostfix},
		{"a.b(c)", PrecPostfix},
		{"(a || b)", PrecPostfix},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, "val x = "+tt.src+"\n")
			init := testsource.Declaration(t, tree, "x").ChildAt(EdgePropertyInit, -1)

			if got := tree.Precedence(init.Index()); got != tt.want {
				t.Errorf("Got Precedence(%s) = %d, want %d", tt.src, got, tt.want)
			}
		})
	}
}

func names(tree *Tree, list []NodeIndex) []string {
	result := make([]string, 0, len(list))
	for _, n := range list {
		result = append(result, tree.Node(n).Name)
	}

	return result
}
