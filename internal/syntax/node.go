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

// Package syntax provides an arena representation of a Kotlin-like statement language.
//
// Nodes are addressed by a stable [NodeIndex]. They are never moved or reused: edits detach
// nodes from their parents and attach new ones, so an index taken before an edit still
// denotes the same node afterwards.
package syntax

import "go/token"

// NodeIndex addresses a node in a [Tree].
type NodeIndex int32

// InvalidNode represents an invalid node index.
const InvalidNode NodeIndex = -1

// Valid checks if this index is valid.
func (n NodeIndex) Valid() bool {
	return n != InvalidNode
}

// Kind is the type of syntax node.
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	KindInvalid Kind = iota
	KindFile
	KindBlock
	KindProperty
	KindFor
	KindLabeled
	KindIf
	KindAssign
	KindIncDec
	KindBreak
	KindContinue
	KindReturn
	KindExprStmt
	KindComment
	KindParameter
	KindRef
	KindLiteral
	KindCall
	KindSelector
	KindBinary
	KindUnary
	KindParen
	KindLambda
)

// Statement reports whether nodes of this kind appear in statement lists.
func (k Kind) Statement() bool {
	return KindProperty <= k && k <= KindComment
}

// Declaration reports whether nodes of this kind introduce a binding.
func (k Kind) Declaration() bool {
	return k == KindProperty || k == KindParameter
}

// Node holds the attributes of a syntax node. Structure (parent and children) is kept
// by the [Tree].
type Node struct {
	Kind Kind

	// Name is the declared or referenced name for properties, parameters, references and
	// selectors, the label of labeled statements and the target label of break and continue.
	Name string

	// Text is the source text of literals and comments, and the type annotation of properties.
	Text string

	// Op is the operator of assignments, increments, binary and unary expressions,
	// or "." and "?." for selectors.
	Op string

	// Mutable marks "var" properties.
	Mutable bool

	// Trailing marks comments on the same line as the preceding code.
	Trailing bool

	// Postfix marks postfix unary operators like "!!".
	Postfix bool

	// Binding is the declaration a reference resolves to, or [InvalidNode] for free names.
	Binding NodeIndex

	// Pos and End delimit the source text of parsed nodes. Synthesized nodes have [token.NoPos].
	Pos, End token.Pos

	// KeywordPos is the position of a property's "val" or "var" keyword.
	KeywordPos token.Pos
}
