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

package astutil

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// InternalError reports an internal error diagnostic.
// These errors indicate bugs in the rewriter logic rather than issues in the user's code.
func InternalError(report func(analysis.Diagnostic), rng analysis.Range, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	report(analysis.Diagnostic{Pos: rng.Pos(), End: rng.End(), Message: string(msg)})
}

// Assertf aborts with an internal error when cond does not hold.
// Violations are defects of the matcher pipeline, never caused by input.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}

	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	panic(string(msg))
}

// NodeRange is the source range of a syntax node.
type NodeRange struct {
	pos, end token.Pos
}

// RangeOf returns the source range of node n.
func RangeOf(t *syntax.Tree, n syntax.NodeIndex) NodeRange {
	node := t.Node(n)

	return NodeRange{node.Pos, node.End}
}

// Pos implements [analysis.Range].
func (r NodeRange) Pos() token.Pos { return r.pos }

// End implements [analysis.Range].
func (r NodeRange) End() token.Pos { return r.end }
