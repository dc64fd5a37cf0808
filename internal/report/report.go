// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/printer"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/transform"
)

// Rewrite describes a loop rewrite performed on the tree. Positions refer to the original source.
type Rewrite struct {
	// Idiom is the applied transformation.
	Idiom transform.Idiom

	// Declaration receives the result.
	Declaration syntax.NodeIndex

	// Initializer is the source range of the replaced initializer.
	Initializer astutil.NodeRange

	// Downgraded is set when "var" became "val".
	Downgraded bool

	// Loop is the removed loop including its labels.
	Loop syntax.NodeIndex

	// Prev is the statement or comment preceding the loop.
	Prev syntax.NodeIndex

	// Result is the generated call chain.
	Result syntax.NodeIndex

	// Restored are the comments reinserted in place of the loop.
	Restored []syntax.NodeIndex
}

// Diagnostic creates a diagnostic with a suggested fix for a performed rewrite.
func Diagnostic(tree *syntax.Tree, src []byte, rw Rewrite) analysis.Diagnostic {
	decl, loop := tree.Node(rw.Declaration), tree.Node(rw.Loop)

	diagnostic := analysis.Diagnostic{
		Pos:      decl.Pos,
		End:      loop.End,
		Category: rw.Idiom.String(),
		Message:  fmt.Sprintf("Loop computing '%s' can be replaced by %s (lc:%s)", decl.Name, rw.Idiom, rw.Idiom),
	}

	edits, err := createEdits(tree, src, rw)
	if err != nil {
		astutil.InternalError(func(d analysis.Diagnostic) { diagnostic = d }, astutil.RangeOf(tree, rw.Loop),
			"Can't create edits: %s", err)

		return diagnostic
	}

	message := fmt.Sprintf("Replace loop with '%s = %s'", decl.Name, printer.Node(tree, rw.Result))
	diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: message, TextEdits: edits}}

	return diagnostic
}

// keywordLen is the length of "val" and "var".
const keywordLen = token.Pos(len("var"))
