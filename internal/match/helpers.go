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

package match

import "fillmore-labs.com/loopchain/internal/syntax"

// IsBreakOrContinueOfLoop reports whether stmt is a break or continue (as given by kind)
// that targets loop, either unlabeled from directly inside the loop or by one of its labels.
func IsBreakOrContinueOfLoop(t *syntax.Tree, stmt syntax.NodeIndex, kind syntax.Kind, loop syntax.NodeIndex) bool {
	node := t.Node(stmt)
	if node.Kind != kind {
		return false
	}

	if node.Name == "" {
		return t.At(stmt).Enclosing(syntax.KindFor, syntax.KindLambda).Index() == loop
	}

	for label := range syntax.Labels(t, loop) {
		if label == node.Name {
			return true
		}
	}

	return false
}

// IsVariableReference reports whether expr, ignoring parentheses, is a reference to binding.
func IsVariableReference(t *syntax.Tree, expr, binding syntax.NodeIndex) bool {
	c := syntax.StripParens(t.At(expr))

	return c.Kind() == syntax.KindRef && c.Node().Binding == binding
}

// IsNullLiteral reports whether expr, ignoring parentheses, is the null literal.
func IsNullLiteral(t *syntax.Tree, expr syntax.NodeIndex) bool {
	c := syntax.StripParens(t.At(expr))

	return c.Kind() == syntax.KindLiteral && c.Node().Text == "null"
}

// PrecedingDeclaration returns the property declared directly before loop (including its
// labels) in the same statement list, skipping comments. The result is invalid otherwise.
func PrecedingDeclaration(t *syntax.Tree, loop syntax.NodeIndex) syntax.Cursor {
	prev := t.At(syntax.Unlabel(t, loop)).PrevStatement()
	if prev.Kind() != syntax.KindProperty {
		return syntax.Cursor{}
	}

	return prev
}
