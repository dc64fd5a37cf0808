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

// Edge identifies the slot of a child within its parent node.
type Edge uint8

//go:generate go tool stringer -type Edge -trimprefix Edge
const (
	EdgeInvalid Edge = iota
	EdgeFileStmts
	EdgeBlockStmts
	EdgePropertyInit
	EdgeForVar
	EdgeForIndex
	EdgeForRange
	EdgeForBody
	EdgeLabeledStmt
	EdgeIfCond
	EdgeIfThen
	EdgeIfElse
	EdgeAssignLhs
	EdgeAssignRhs
	EdgeIncDecX
	EdgeReturnValue
	EdgeExprStmtX
	EdgeCallFun
	EdgeCallArgs
	EdgeCallLambda
	EdgeSelectorX
	EdgeBinaryX
	EdgeBinaryY
	EdgeUnaryX
	EdgeParenX
	EdgeLambdaParams
	EdgeLambdaBody
)

// List reports whether the edge holds a sequence of children.
func (e Edge) List() bool {
	switch e {
	case EdgeFileStmts, EdgeBlockStmts, EdgeCallArgs, EdgeLambdaParams, EdgeLambdaBody:
		return true

	default:
		return false
	}
}

// Statements reports whether the edge holds a statement list.
func (e Edge) Statements() bool {
	return e == EdgeFileStmts || e == EdgeBlockStmts || e == EdgeLambdaBody
}
