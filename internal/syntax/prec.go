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

// Precedence levels of expressions, from loosest to tightest binding.
const (
	PrecLowest = iota
	PrecDisjunction
	PrecConjunction
	PrecEquality
	PrecComparison
	PrecNamedCheck
	PrecElvis
	PrecInfix
	PrecRange
	PrecAdditive
	PrecMultiplicative
	PrecPrefix
	PrecPostfix
)

// BinaryPrecedence returns the precedence of a binary operator. Unknown names are
// infix function calls like "until".
func BinaryPrecedence(op string) int {
	switch op {
	case "||":
		return PrecDisjunction
	case "&&":
		return PrecConjunction
	case "==", "!=":
		return PrecEquality
	case "<", ">", "<=", ">=":
		return PrecComparison
	case "in":
		return PrecNamedCheck
	case "?:":
		return PrecElvis
	case "..":
		return PrecRange
	case "+", "-":
		return PrecAdditive
	case "*", "/", "%":
		return PrecMultiplicative
	default:
		return PrecInfix
	}
}

// Precedence returns the binding strength of expression n.
func (t *Tree) Precedence(n NodeIndex) int {
	switch node := t.nodes[n]; node.Kind {
	case KindBinary:
		return BinaryPrecedence(node.Op)

	case KindUnary:
		if node.Postfix {
			return PrecPostfix
		}

		return PrecPrefix

	default:
		return PrecPostfix
	}
}
