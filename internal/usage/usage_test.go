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

package usage_test

import (
	"testing"

	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/testsource"
	. "fillmore-labs.com/loopchain/internal/usage"
)

func TestReferences(t *testing.T) {
	t.Parallel()

	const src = `var x: Int? = null
f(x)
x = 1
(x) = 2
x += 3
x++
val x2 = x
`

	tree := testsource.Parse(t, src)
	x := testsource.Declaration(t, tree, "x").Index()

	want := []Flags{UsageRead, UsageWrite, UsageWrite, UsageReadWrite, UsageReadWrite, UsageRead}

	var got []Flags
	for ref := range New(tree).References(x, tree.Root().Index()) {
		got = append(got, ref.Usage)
	}

	if len(got) != len(want) {
		t.Fatalf("Got %d references, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Got usage %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flags       Flags
		read, write bool
	}{
		{UsageNone, false, false},
		{UsageRead, true, false},
		{UsageWrite, false, true},
		{UsageReadWrite, true, true},
	}

	for _, tt := range tests {
		if got := tt.flags.Read(); got != tt.read {
			t.Errorf("Got %d.Read() = %t, want %t", tt.flags, got, tt.read)
		}

		if got := tt.flags.Write(); got != tt.write {
			t.Errorf("Got %d.Write() = %t, want %t", tt.flags, got, tt.write)
		}
	}
}

func TestHasWriteUsageOutside(t *testing.T) {
	t.Parallel()

	const src = `var found: String? = null
for (e in xs) {
    found = e
}
g(found)
`

	tree := testsource.Parse(t, src)
	found := testsource.Declaration(t, tree, "found").Index()
	loop := testsource.First(t, tree, syntax.KindFor).Index()
	root := tree.Root().Index()

	a := New(tree)

	if got := a.CountReferences(found, loop); got != 1 {
		t.Errorf("Got %d references in loop, want 1", got)
	}

	if !a.HasWriteUsageOutside(found, root, syntax.InvalidNode) {
		t.Error("Expected write usage")
	}

	if a.HasWriteUsageOutside(found, root, loop) {
		t.Error("Expected no write usage outside of loop")
	}

	ed := tree.Edit()
	ed.Delete(loop)
	ed.Done()

	if a.HasWriteUsageOutside(found, root, syntax.InvalidNode) {
		t.Error("Detached loop still counts")
	}

	if got := a.CountReferences(found, loop); got != 0 {
		t.Errorf("Got %d references in detached loop, want 0", got)
	}
}
