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

package parser

import (
	"go/token"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// binaryOp returns the operator at the current position and its width in tokens.
// Operators must continue the line of the left operand.
func (p *parser) binaryOp() (op string, width int) {
	if !p.sameLine() {
		return "", 0
	}

	switch t := p.tok; t.tok {
	case token.LOR, token.LAND, token.EQL, token.NEQ, token.LSS, token.LEQ, token.GEQ, token.GTR,
		token.ADD, token.MUL, token.QUO, token.REM:
		return t.tok.String(), 1

	case token.IDENT:
		return t.lit, 1 // "in" or an infix function

	case token.PERIOD:
		if p.rangeAhead() {
			return "..", 2
		}

	case token.ILLEGAL:
		if next := p.peek(1); t.lit == "?" && next.tok == token.COLON && next.pos == t.end() {
			return "?:", 2
		}

	case token.SUB:
		if next := p.peek(1); next.tok == token.GTR && next.pos == t.end() {
			return "", 0 // lambda arrow
		}

		return "-", 1
	}

	return "", 0
}

func (p *parser) parseExpr() syntax.NodeIndex {
	return p.parseBinaryExpr(syntax.PrecLowest + 1)
}

func (p *parser) parseBinaryExpr(prec1 int) syntax.NodeIndex {
	x := p.parseUnaryExpr()

	for {
		op, width := p.binaryOp()
		if width == 0 {
			return x
		}

		prec := syntax.BinaryPrecedence(op)
		if prec < prec1 {
			return x
		}

		for range width {
			p.next()
		}

		y := p.parseBinaryExpr(prec + 1)

		n := p.ed.Add(syntax.Node{Kind: syntax.KindBinary, Op: op, Pos: p.ed.Tree().Node(x).Pos, End: p.prev.end()})
		p.ed.Append(n, syntax.EdgeBinaryX, x)
		p.ed.Append(n, syntax.EdgeBinaryY, y)

		x = n
	}
}

func (p *parser) parseUnaryExpr() syntax.NodeIndex {
	switch p.tok.tok {
	case token.NOT, token.SUB, token.ADD:
		pos, op := p.tok.pos, p.tok.tok.String()
		p.next()

		x := p.parseUnaryExpr()

		n := p.ed.Add(syntax.Node{Kind: syntax.KindUnary, Op: op, Pos: pos, End: p.prev.end()})
		p.ed.Append(n, syntax.EdgeUnaryX, x)

		return n
	}

	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

func (p *parser) parsePostfixExpr(x syntax.NodeIndex) syntax.NodeIndex {
	pos := p.ed.Tree().Node(x).Pos

	for {
		switch t := p.tok; {
		case t.tok == token.PERIOD && !p.rangeAhead():
			p.next()
			x = p.selector(x, pos, ".")

		case t.is(token.ILLEGAL, "?") && p.peek(1).tok == token.PERIOD && p.peek(1).pos == t.end():
			p.next()
			p.next()
			x = p.selector(x, pos, "?.")

		case t.tok == token.NOT && p.adjacent() && p.peek(1).tok == token.NOT && p.peek(1).pos == t.end():
			p.next()
			p.next()

			n := p.ed.Add(syntax.Node{Kind: syntax.KindUnary, Op: "!!", Postfix: true, Pos: pos, End: p.prev.end()})
			p.ed.Append(n, syntax.EdgeUnaryX, x)
			x = n

		case t.tok == token.LPAREN && p.sameLine():
			x = p.parseCall(x, pos)

		case t.tok == token.LBRACE && p.sameLine() && p.callable(x):
			x = p.parseCall(x, pos)

		default:
			return x
		}
	}
}

// callable reports whether x may take a trailing lambda. Calls with an argument list
// have already consumed theirs.
func (p *parser) callable(x syntax.NodeIndex) bool {
	switch p.ed.Tree().Kind(x) {
	case syntax.KindRef, syntax.KindSelector:
		return true

	default:
		return false
	}
}

// rangeAhead reports whether the current token starts a ".." operator.
func (p *parser) rangeAhead() bool {
	next := p.peek(1)

	return p.tok.tok == token.PERIOD && next.tok == token.PERIOD && next.pos == p.tok.end()
}

func (p *parser) selector(x syntax.NodeIndex, pos token.Pos, op string) syntax.NodeIndex {
	name := p.expectIdent()

	n := p.ed.Add(syntax.Node{Kind: syntax.KindSelector, Name: name, Op: op, Pos: pos, End: p.prev.end()})
	p.ed.Append(n, syntax.EdgeSelectorX, x)

	return n
}

// parseCall parses arguments and an optional trailing lambda.
func (p *parser) parseCall(fun syntax.NodeIndex, pos token.Pos) syntax.NodeIndex {
	var args []syntax.NodeIndex

	if p.tok.tok == token.LPAREN {
		p.next()

		for p.tok.tok != token.RPAREN && p.tok.tok != token.EOF {
			args = append(args, p.parseExpr())

			if p.tok.tok != token.COMMA {
				break
			}

			p.next()
		}

		p.expect(token.RPAREN)
	}

	lambda := syntax.InvalidNode
	if p.tok.tok == token.LBRACE && p.sameLine() {
		lambda = p.parseLambda()
	}

	n := p.ed.Add(syntax.Node{Kind: syntax.KindCall, Pos: pos, End: p.prev.end()})
	p.ed.Append(n, syntax.EdgeCallFun, fun)

	for _, a := range args {
		p.ed.Append(n, syntax.EdgeCallArgs, a)
	}

	if lambda.Valid() {
		p.ed.Append(n, syntax.EdgeCallLambda, lambda)
	}

	return n
}

func (p *parser) parsePrimaryExpr() syntax.NodeIndex {
	t := p.tok

	switch {
	case t.tok == token.IDENT && (t.lit == "null" || t.lit == "true" || t.lit == "false"):
		p.next()
		return p.ed.Add(syntax.Node{Kind: syntax.KindLiteral, Text: t.lit, Pos: t.pos, End: t.end()})

	case p.identLike():
		p.next()
		return p.ed.Add(syntax.Node{Kind: syntax.KindRef, Name: t.lit, Binding: p.resolve(t.lit), Pos: t.pos, End: t.end()})

	case t.tok.IsLiteral():
		p.next()
		return p.ed.Add(syntax.Node{Kind: syntax.KindLiteral, Text: t.lit, Pos: t.pos, End: t.end()})

	case t.tok == token.LPAREN:
		p.next()
		x := p.parseExpr()
		p.expect(token.RPAREN)

		n := p.ed.Add(syntax.Node{Kind: syntax.KindParen, Pos: t.pos, End: p.prev.end()})
		p.ed.Append(n, syntax.EdgeParenX, x)

		return n

	case t.tok == token.LBRACE:
		return p.parseLambda()
	}

	p.errorExpected("expression")

	// A placeholder keeps the tree well-formed.
	return p.ed.Add(syntax.Node{Kind: syntax.KindRef, Name: "_", Pos: t.pos, End: t.pos})
}

// parseLambda parses "{ a, b -> body }" or "{ body }".
func (p *parser) parseLambda() syntax.NodeIndex {
	pos := p.expect(token.LBRACE)

	p.openScope()
	defer p.closeScope()

	var params []syntax.NodeIndex

	if p.lambdaParamsAhead() {
		for {
			param := p.parseParameter()
			params = append(params, param)
			p.declare(p.ed.Tree().Node(param).Name, param)

			if p.tok.tok != token.COMMA {
				break
			}

			p.next()
		}

		p.expect(token.SUB)
		p.expect(token.GTR)
	}

	body := p.parseStmtList()
	p.expect(token.RBRACE)

	n := p.ed.Add(syntax.Node{Kind: syntax.KindLambda, Pos: pos, End: p.prev.end()})

	for _, param := range params {
		p.ed.Append(n, syntax.EdgeLambdaParams, param)
	}

	for _, s := range body {
		p.ed.Append(n, syntax.EdgeLambdaBody, s)
	}

	return n
}

// lambdaParamsAhead reports whether a parameter list followed by "->" starts at the current token.
func (p *parser) lambdaParamsAhead() bool {
	for k := 0; ; k += 2 {
		name := p.tok
		if k > 0 {
			name = p.peek(k)
		}

		if name.tok != token.IDENT {
			return false
		}

		switch next := p.peek(k + 1); next.tok {
		case token.COMMA:
			continue

		case token.SUB:
			arrow := p.peek(k + 2)
			return arrow.tok == token.GTR && arrow.pos == next.end()

		default:
			return false
		}
	}
}
