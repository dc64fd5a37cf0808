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

package astutil_test

import (
	"testing"

	. "fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment string
		want    bool
	}{
		{"//nolint:loopchain", true},
		{"// nolint:gocritic,LoopChain", true},
		{"//nolint:all", true},
		{"//nolint:other", false},
		{"// loopchain", false},
		{"/* nolint:loopchain */", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.comment); got != tt.want {
			t.Errorf("Got CommentHasNoLint(%q) = %t, want %t", tt.comment, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		generated bool
		nolint    bool
	}{
		{"plain", "val a = 1", false, false},
		{"generated", "// Code generated by kgen. DO NOT EDIT.\n\nval a = 1", true, false},
		{"nolint", "// header\n//nolint:loopchain\nval a = 1", false, true},
		{"late marker", "val a = 1\n// Code generated by kgen. DO NOT EDIT.", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCurrentFile(testsource.Parse(t, tt.src))

			if !c.Valid() || c.Generated() != tt.generated || c.NoLint() != tt.nolint {
				t.Errorf("Got valid %t, generated %t, nolint %t", c.Valid(), c.Generated(), c.NoLint())
			}
		})
	}

	if NewCurrentFile(syntax.New(nil)).Valid() {
		t.Error("File without handle is valid")
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `for (x in xs) { //nolint:loopchain
}
for (y in ys) {
    // nolint:loopchain
}
`

	tree := testsource.Parse(t, src)
	c := NewCurrentFile(tree)

	want := []bool{true, false}

	i := 0
	for loop := range tree.Root().Preorder(syntax.KindFor) {
		if got := c.NoLintComment(loop.Node().Pos); got != want[i] {
			t.Errorf("Got NoLintComment() of loop %d = %t, want %t", i, got, want[i])
		}

		if got := c.Lines(loop.Index()); got != 2+i {
			t.Errorf("Got Lines() of loop %d = %d, want %d", i, got, 2+i)
		}

		i++
	}
}

func TestAssertf(t *testing.T) {
	t.Parallel()

	Assertf(true, "not reached")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic")
		}
	}()

	Assertf(false, "broken %s", "invariant")
}
