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

package transform_test

import (
	"testing"

	"fillmore-labs.com/loopchain/internal/match"
	"fillmore-labs.com/loopchain/internal/printer"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/testsource"
	. "fillmore-labs.com/loopchain/internal/transform"
)

func loopState(t *testing.T, src string) (*syntax.Tree, match.State) {
	t.Helper()

	tree := testsource.Parse(t, src)
	loop := testsource.First(t, tree, syntax.KindFor)

	return tree, match.NewState(tree, loop.Index())
}

func TestNegatedCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cond string
		want string
	}{
		{"e == null", "e != null"},
		{"e != null", "e == null"},
		{"!e.done", "e.done"},
		{"!(a && b)", "a && b"},
		{"true", "false"},
		{"false", "true"},
		{"e > 3", "!(e > 3)"},
		{"e.isEmpty()", "!e.isEmpty()"},
		{"(e.isEmpty())", "!e.isEmpty()"},
		{"a || b", "!(a || b)"},
		{"e!!", "!e!!"},
		{"-e", "!-e"},
	}

	for _, tt := range tests {
		t.Run(tt.cond, func(t *testing.T) {
			t.Parallel()

			tree, state := loopState(t, "for (e in xs) {\n    if ("+tt.cond+") continue\n    found = e\n}")

			filter, rest, ok := MatchFilter(state)
			if !ok {
				t.Fatal("Filter not matched")
			}

			if rest.Len() != 1 {
				t.Errorf("Got %d remaining statements, want 1", rest.Len())
			}

			ed := tree.Edit()
			defer ed.Done()

			if got := printer.Node(tree, filter.BuildRealCondition(ed)); got != tt.want {
				t.Errorf("Got condition %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int // remaining statements, -1 for no match
	}{
		{"continue", "if (c) continue\nf()\ng()", 2},
		{"continue block", "if (c) {\n    continue\n}\nf()", 1},
		{"labeled continue", "if (c) continue@l\nf()", 1},
		{"foreign continue", "if (c) continue@other\nf()", -1},
		{"sole if", "if (c) {\n    f()\n    g()\n}", 2},
		{"sole if statement", "if (c) f()", 1},
		{"not sole", "if (c) {\n    f()\n}\ng()", -1},
		{"else", "if (c) f() else g()", -1},
		{"empty", "if (c) {\n}", -1},
		{"no if", "f()", -1},
		{"nothing", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, state := loopState(t, "l@ for (e in xs) {\n"+tt.body+"\n}")

			filter, rest, ok := MatchFilter(state)
			if got := ok; got != (tt.want >= 0) {
				t.Fatalf("Got match %t, want %t", got, tt.want >= 0)
			}

			if !ok {
				return
			}

			if rest.Len() != tt.want {
				t.Errorf("Got %d remaining statements, want %d", rest.Len(), tt.want)
			}

			if filter.Idiom() != IdiomFilter || filter.InputVariable() != state.Variable() {
				t.Errorf("Got idiom %s for variable %d", filter.Idiom(), filter.InputVariable())
			}
		})
	}
}

func TestMergedCondition(t *testing.T) {
	t.Parallel()

	const src = `for (e in xs) {
    if (e == null) continue
    if (a || b) continue
    if (c || d) {
        found = e
    }
}`

	tree, state := loopState(t, src)

	var filter Filter

	for i := 0; ; i++ {
		f, rest, ok := MatchFilter(state)
		if !ok {
			break
		}

		if i == 0 {
			filter = f
		} else {
			filter = filter.Merge(f)
		}

		state = rest
	}

	if state.Len() != 1 || state.Statement(0).Kind() != syntax.KindAssign {
		t.Fatalf("Got %d remaining statements", state.Len())
	}

	ed := tree.Edit()
	defer ed.Done()

	const want = "e != null && !(a || b) && (c || d)"
	if got := printer.Node(tree, filter.BuildRealCondition(ed)); got != want {
		t.Errorf("Got condition %q, want %q", got, want)
	}
}

func TestIdiomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		idiom Idiom
		want  string
	}{
		{IdiomInvalid, "IdiomInvalid"},
		{IdiomFilter, "filter"},
		{IdiomFindFirst, "firstOrNull"},
		{IdiomFindLast, "lastOrNull"},
		{Idiom(42), "Idiom(42)"},
	}

	for _, tt := range tests {
		if got := tt.idiom.String(); got != tt.want {
			t.Errorf("Got %q, want %q", got, tt.want)
		}
	}
}
