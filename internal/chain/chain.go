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

// Package chain assembles chains of collection calls like "items.filter { e -> e > 0 }.firstOrNull()".
package chain

import "fillmore-labs.com/loopchain/internal/syntax"

// Generator appends calls to a receiver expression.
type Generator struct {
	ed    *syntax.Editor
	chain syntax.NodeIndex
}

// New creates a [Generator] starting at a copy of receiver, parenthesized when it does not
// bind as tight as a selector.
func New(ed *syntax.Editor, receiver syntax.NodeIndex) *Generator {
	t := ed.Tree()

	chain := ed.Clone(receiver, nil)
	if t.Precedence(chain) < syntax.PrecPostfix || t.Kind(chain) == syntax.KindLambda {
		paren := ed.Add(syntax.Node{Kind: syntax.KindParen})
		ed.Append(paren, syntax.EdgeParenX, chain)
		chain = paren
	}

	return &Generator{ed: ed, chain: chain}
}

// Editor returns the editor new nodes are created with.
func (g *Generator) Editor() *syntax.Editor {
	return g.ed
}

// Generate appends a call of the function name to the chain, with an optional trailing lambda,
// and returns the whole chain expression. Pass [syntax.InvalidNode] for a call without arguments.
func (g *Generator) Generate(name string, lambda syntax.NodeIndex) syntax.NodeIndex {
	sel := g.ed.Add(syntax.Node{Kind: syntax.KindSelector, Name: name, Op: "."})
	g.ed.Append(sel, syntax.EdgeSelectorX, g.chain)

	call := g.ed.Add(syntax.Node{Kind: syntax.KindCall})
	g.ed.Append(call, syntax.EdgeCallFun, sel)

	if lambda.Valid() {
		g.ed.Append(call, syntax.EdgeCallLambda, lambda)
	}

	g.chain = call

	return call
}

// Lambda builds "{ v -> body }" where v has the name of param. References to param within
// the copied body are bound to the new lambda parameter.
func (g *Generator) Lambda(param, body syntax.NodeIndex) syntax.NodeIndex {
	node := g.ed.Tree().Node(param)

	v := g.ed.Add(syntax.Node{Kind: syntax.KindParameter, Name: node.Name, Text: node.Text})
	expr := g.ed.Clone(body, map[syntax.NodeIndex]syntax.NodeIndex{param: v})

	stmt := g.ed.Add(syntax.Node{Kind: syntax.KindExprStmt})
	g.ed.Append(stmt, syntax.EdgeExprStmtX, expr)

	lambda := g.ed.Add(syntax.Node{Kind: syntax.KindLambda})
	g.ed.Append(lambda, syntax.EdgeLambdaParams, v)
	g.ed.Append(lambda, syntax.EdgeLambdaBody, stmt)

	return lambda
}
