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

package parser_test

import (
	"errors"
	"go/scanner"
	"go/token"
	"testing"

	. "fillmore-labs.com/loopchain/internal/parser"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/testsource"
)

func TestParseStatements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []syntax.Kind
	}{
		{"property", "val x: List<Int>? = null", []syntax.Kind{syntax.KindProperty}},
		{"semicolons", "var x = 1; x += 2; x++", []syntax.Kind{syntax.KindProperty, syntax.KindAssign, syntax.KindIncDec}},
		{"lines", "f()\ng()", []syntax.Kind{syntax.KindExprStmt, syntax.KindExprStmt}},
		{"loop", "for (e in xs) {\n}", []syntax.Kind{syntax.KindFor}},
		{"labeled", "outer@ for (e in xs) continue@outer", []syntax.Kind{syntax.KindLabeled}},
		{"if", "if (a) b() else c()", []syntax.Kind{syntax.KindIf}},
		{"return", "return\nreturn 1", []syntax.Kind{syntax.KindReturn, syntax.KindReturn}},
		{"comments", "// a\nf() // b\n/* c */", []syntax.Kind{syntax.KindComment, syntax.KindExprStmt, syntax.KindComment, syntax.KindComment}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, tt.src)

			stmts := tree.Root().Statements()
			if len(stmts) != len(tt.want) {
				t.Fatalf("Got %d statements, want %d", len(stmts), len(tt.want))
			}

			for i, s := range stmts {
				if got := tree.Kind(s); got != tt.want[i] {
					t.Errorf("Got statement %d kind %s, want %s", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestParseProperty(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "var found: Map<String, Int>? = null")

	decl := testsource.Declaration(t, tree, "found")
	node := decl.Node()

	if !node.Mutable || node.Text != "Map<String, Int>?" {
		t.Errorf("Got mutable %t, type %q", node.Mutable, node.Text)
	}

	if node.KeywordPos != node.Pos || !node.KeywordPos.IsValid() {
		t.Errorf("Got keyword position %d, want %d", node.KeywordPos, node.Pos)
	}

	if init := decl.ChildAt(syntax.EdgePropertyInit, -1); init.Kind() != syntax.KindLiteral || init.Node().Text != "null" {
		t.Errorf("Got initializer %s", init.Kind())
	}
}

func TestParseBindings(t *testing.T) {
	t.Parallel()

	const src = `val x = 1
val y = x
for (x in xs) {
    f(x, y)
}
val z = z
`

	tree := testsource.Parse(t, src)

	outer := testsource.Declaration(t, tree, "x").Index()
	y := testsource.Declaration(t, tree, "y").Index()
	inner := testsource.First(t, tree, syntax.KindFor).ChildAt(syntax.EdgeForVar, -1).Index()

	var got []syntax.NodeIndex
	for c := range tree.Root().Preorder(syntax.KindRef) {
		got = append(got, c.Node().Binding)
	}

	// x, xs, f, x, y, z
	want := []syntax.NodeIndex{outer, syntax.InvalidNode, syntax.InvalidNode, inner, y, syntax.InvalidNode}
	if len(got) != len(want) {
		t.Fatalf("Got %d references, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Got binding %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseExpressions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind syntax.Kind
		op   string
	}{
		{"0..10", syntax.KindBinary, ".."},
		{"1.5", syntax.KindLiteral, ""},
		{"a?.b", syntax.KindSelector, "?."},
		{"a ?: b", syntax.KindBinary, "?:"},
		{"a!!", syntax.KindUnary, "!!"},
		{"a || b && c", syntax.KindBinary, "||"},
		{"a + b * c", syntax.KindBinary, "+"},
		{"x in 1 until 10", syntax.KindBinary, "in"},
		{"xs.filter { it > 0 }", syntax.KindCall, ""},
		{"{ a, b -> a }", syntax.KindLambda, ""},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			tree := testsource.Parse(t, "val v = "+tt.src)
			init := testsource.Declaration(t, tree, "v").ChildAt(syntax.EdgePropertyInit, -1)

			if got := init.Node(); got.Kind != tt.kind || got.Op != tt.op {
				t.Errorf("Got %s %q, want %s %q", got.Kind, got.Op, tt.kind, tt.op)
			}
		})
	}
}

func TestParseLineBreaks(t *testing.T) {
	t.Parallel()

	// A call on the next line is a new statement
	tree := testsource.Parse(t, "val a = b\n(c)")

	if got := len(tree.Root().Statements()); got != 2 {
		t.Errorf("Got %d statements, want 2", got)
	}
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	tree := testsource.Parse(t, "// header\nval a = 1 // trailing\n// own line\n")

	var trailing []bool
	for c := range tree.Root().Preorder(syntax.KindComment) {
		trailing = append(trailing, c.Node().Trailing)
	}

	if len(trailing) != 3 || trailing[0] || !trailing[1] || trailing[2] {
		t.Errorf("Got trailing flags %v, want [false true false]", trailing)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"missing in", "for (e of xs) {}"},
		{"unclosed block", "for (e in xs) {"},
		{"trailing garbage", "val a = 1 )"},
		{"missing expression", "val a ="},
		{"stray brace", "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(token.NewFileSet(), "test.kt", []byte(tt.src))

			var list scanner.ErrorList
			if !errors.As(err, &list) || len(list) == 0 {
				t.Errorf("Got error %v, want scanner.ErrorList", err)
			}
		})
	}
}

func TestParseTooManyErrors(t *testing.T) {
	t.Parallel()

	src := make([]byte, 0, 100)
	for range 50 {
		src = append(src, ")\n"...)
	}

	tree, err := Parse(token.NewFileSet(), "test.kt", src)
	if err == nil || tree == nil {
		t.Fatalf("Got tree %v, error %v", tree, err)
	}
}
