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

// Package printer renders syntax trees as source text.
//
// The output is canonical: four space indentation, one statement per line and single spaces
// around binary operators. Blank lines of the original source are not preserved.
package printer

import (
	"io"
	"strings"

	"fillmore-labs.com/loopchain/internal/syntax"
)

const indentation = "    "

// Fprint writes the statements of the tree's file node to w.
func Fprint(w io.Writer, t *syntax.Tree) error {
	p := printer{t: t}
	p.stmtList(t.Root().Statements(), true)
	p.buf.WriteByte('\n')

	_, err := io.WriteString(w, p.buf.String())

	return err
}

// String renders the whole tree.
func String(t *syntax.Tree) string {
	var b strings.Builder
	_ = Fprint(&b, t)

	return b.String()
}

// Node renders a single statement or expression at indentation level zero.
func Node(t *syntax.Tree, n syntax.NodeIndex) string {
	p := printer{t: t}
	p.node(n)

	return p.buf.String()
}

type printer struct {
	t      *syntax.Tree
	buf    strings.Builder
	indent int
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')

	for range p.indent {
		p.buf.WriteString(indentation)
	}
}

// stmtList prints statements, each on a new line. Trailing comments continue the
// current line. With top set, the first statement does not start a new line.
func (p *printer) stmtList(list []syntax.NodeIndex, top bool) {
	for i, s := range list {
		switch {
		case p.t.Node(s).Kind == syntax.KindComment && p.t.Node(s).Trailing && p.buf.Len() > 0:
			p.buf.WriteByte(' ')

		case top && i == 0:

		default:
			p.newline()
		}

		p.node(s)
	}
}

func (p *printer) block(list []syntax.NodeIndex) {
	p.buf.WriteByte('{')

	p.indent++
	p.stmtList(list, false)
	p.indent--

	p.newline()
	p.buf.WriteByte('}')
}

func (p *printer) child(n syntax.NodeIndex, edge syntax.Edge) {
	if c := p.t.At(n).ChildAt(edge, -1); c.Valid() {
		p.node(c.Index())
	}
}

// body prints a loop or branch body after its header.
func (p *printer) body(n syntax.NodeIndex) {
	p.buf.WriteByte(' ')
	p.node(n)
}

func (p *printer) node(n syntax.NodeIndex) {
	c := p.t.At(n)
	node := c.Node()

	switch node.Kind {
	case syntax.KindFile:
		p.stmtList(c.Statements(), true)

	case syntax.KindBlock:
		p.block(c.Statements())

	case syntax.KindProperty:
		if node.Mutable {
			p.buf.WriteString("var ")
		} else {
			p.buf.WriteString("val ")
		}

		p.declaration(node)

		if init := c.ChildAt(syntax.EdgePropertyInit, -1); init.Valid() {
			p.buf.WriteString(" = ")
			p.node(init.Index())
		}

	case syntax.KindParameter:
		p.declaration(node)

	case syntax.KindFor:
		p.buf.WriteString("for (")

		if index := c.ChildAt(syntax.EdgeForIndex, -1); index.Valid() {
			p.buf.WriteByte('(')
			p.node(index.Index())
			p.buf.WriteString(", ")
			p.child(n, syntax.EdgeForVar)
			p.buf.WriteByte(')')
		} else {
			p.child(n, syntax.EdgeForVar)
		}

		p.buf.WriteString(" in ")
		p.child(n, syntax.EdgeForRange)
		p.buf.WriteByte(')')

		if body := c.ChildAt(syntax.EdgeForBody, -1); body.Valid() {
			p.body(body.Index())
		}

	case syntax.KindLabeled:
		p.buf.WriteString(node.Name)
		p.buf.WriteString("@ ")
		p.child(n, syntax.EdgeLabeledStmt)

	case syntax.KindIf:
		p.buf.WriteString("if (")
		p.child(n, syntax.EdgeIfCond)
		p.buf.WriteByte(')')

		if then := c.ChildAt(syntax.EdgeIfThen, -1); then.Valid() {
			p.body(then.Index())
		}

		if els := c.ChildAt(syntax.EdgeIfElse, -1); els.Valid() {
			p.buf.WriteString(" else")
			p.body(els.Index())
		}

	case syntax.KindAssign:
		p.child(n, syntax.EdgeAssignLhs)
		p.buf.WriteByte(' ')
		p.buf.WriteString(node.Op)
		p.buf.WriteByte(' ')
		p.child(n, syntax.EdgeAssignRhs)

	case syntax.KindIncDec:
		p.child(n, syntax.EdgeIncDecX)
		p.buf.WriteString(node.Op)

	case syntax.KindBreak, syntax.KindContinue:
		if node.Kind == syntax.KindBreak {
			p.buf.WriteString("break")
		} else {
			p.buf.WriteString("continue")
		}

		if node.Name != "" {
			p.buf.WriteByte('@')
			p.buf.WriteString(node.Name)
		}

	case syntax.KindReturn:
		p.buf.WriteString("return")

		if value := c.ChildAt(syntax.EdgeReturnValue, -1); value.Valid() {
			p.buf.WriteByte(' ')
			p.node(value.Index())
		}

	case syntax.KindExprStmt:
		p.child(n, syntax.EdgeExprStmtX)

	case syntax.KindComment, syntax.KindLiteral:
		p.buf.WriteString(node.Text)

	case syntax.KindRef:
		p.buf.WriteString(node.Name)

	case syntax.KindCall:
		p.call(c)

	case syntax.KindSelector:
		p.child(n, syntax.EdgeSelectorX)
		p.buf.WriteString(node.Op)
		p.buf.WriteString(node.Name)

	case syntax.KindBinary:
		p.child(n, syntax.EdgeBinaryX)

		if node.Op == ".." {
			p.buf.WriteString(node.Op)
		} else {
			p.buf.WriteByte(' ')
			p.buf.WriteString(node.Op)
			p.buf.WriteByte(' ')
		}

		p.child(n, syntax.EdgeBinaryY)

	case syntax.KindUnary:
		if node.Postfix {
			p.child(n, syntax.EdgeUnaryX)
			p.buf.WriteString(node.Op)

			break
		}

		p.buf.WriteString(node.Op)
		p.child(n, syntax.EdgeUnaryX)

	case syntax.KindParen:
		p.buf.WriteByte('(')
		p.child(n, syntax.EdgeParenX)
		p.buf.WriteByte(')')

	case syntax.KindLambda:
		p.lambda(c)
	}
}

func (p *printer) declaration(node syntax.Node) {
	p.buf.WriteString(node.Name)

	if node.Text != "" {
		p.buf.WriteString(": ")
		p.buf.WriteString(node.Text)
	}
}

func (p *printer) call(c syntax.Cursor) {
	p.child(c.Index(), syntax.EdgeCallFun)

	lambda := c.ChildAt(syntax.EdgeCallLambda, -1)

	var args []syntax.Cursor
	for a := range c.Children(syntax.EdgeCallArgs) {
		args = append(args, a)
	}

	if len(args) > 0 || !lambda.Valid() {
		p.buf.WriteByte('(')

		for i, a := range args {
			if i > 0 {
				p.buf.WriteString(", ")
			}

			p.node(a.Index())
		}

		p.buf.WriteByte(')')
	}

	if lambda.Valid() {
		p.buf.WriteByte(' ')
		p.node(lambda.Index())
	}
}

// lambda prints "{ a, b -> body }" on one line when the body is a single expression,
// otherwise as a block.
func (p *printer) lambda(c syntax.Cursor) {
	p.buf.WriteByte('{')

	params := false
	for param := range c.Children(syntax.EdgeLambdaParams) {
		if params {
			p.buf.WriteByte(',')
		}

		p.buf.WriteByte(' ')
		p.node(param.Index())

		params = true
	}

	if params {
		p.buf.WriteString(" ->")
	}

	body := c.Statements()
	if len(body) == 1 && p.t.Kind(body[0]) == syntax.KindExprStmt && !strings.Contains(Node(p.t, body[0]), "\n") {
		p.buf.WriteByte(' ')
		p.node(body[0])
		p.buf.WriteString(" }")

		return
	}

	p.indent++
	p.stmtList(body, false)
	p.indent--

	p.newline()
	p.buf.WriteByte('}')
}
