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

// Package testsource provides utilities for parsing source fragments in tests.
//
// It is designed to simplify testing of the loopchain rewriter by handling common
// boilerplate code for parsing and locating nodes.
package testsource

import (
	"go/token"
	"testing"

	"fillmore-labs.com/loopchain/internal/parser"
	"fillmore-labs.com/loopchain/internal/syntax"
)

const filename = "test.kt"

// Parse parses a source fragment into a syntax tree.
// Syntax errors fail the test.
//
// Returns:
//   - *syntax.Tree: The tree of the single source file, with the file set reachable through [syntax.Tree.File].
func Parse(tb testing.TB, src string) *syntax.Tree {
	tb.Helper()

	t, err := parser.Parse(token.NewFileSet(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return t
}

// First returns the first node of the given kind in preorder.
// The test fails when there is none.
func First(tb testing.TB, t *syntax.Tree, kind syntax.Kind) syntax.Cursor {
	tb.Helper()

	for c := range t.Root().Preorder(kind) {
		return c
	}

	tb.Fatalf("Can't find %s", kind)

	return syntax.Cursor{}
}

// Declaration returns the first property or parameter declaring name.
// The test fails when there is none.
func Declaration(tb testing.TB, t *syntax.Tree, name string) syntax.Cursor {
	tb.Helper()

	for c := range t.Root().Preorder(syntax.KindProperty, syntax.KindParameter) {
		if c.Node().Name == name {
			return c
		}
	}

	tb.Fatalf("Can't find declaration of %q", name)

	return syntax.Cursor{}
}
