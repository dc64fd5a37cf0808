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

func (p *parser) parseFile(root syntax.NodeIndex) {
	p.openScope()
	defer p.closeScope()

	for {
		for _, s := range p.parseStmtList() {
			p.ed.Append(root, syntax.EdgeFileStmts, s)
		}

		if p.tok.tok == token.EOF {
			return
		}

		p.error(p.tok.pos, "unexpected '"+p.tok.text()+"'")
		p.next()
	}
}

// parseStmtList parses statements up to a closing brace or the end of file.
// Comments are returned as statements in source order.
func (p *parser) parseStmtList() []syntax.NodeIndex {
	var list []syntax.NodeIndex

	for {
		list = p.appendComments(list)

		switch p.tok.tok {
		case token.RBRACE, token.EOF:
			return list

		case token.SEMICOLON:
			p.next()
			continue
		}

		start := p.offset

		if s := p.parseStmt(); s.Valid() {
			list = append(list, s)
		}

		if p.offset == start {
			p.next() // make progress after errors
			continue
		}

		p.expectStmtEnd()
	}
}

// appendComments converts pending comments to comment nodes.
func (p *parser) appendComments(list []syntax.NodeIndex) []syntax.NodeIndex {
	for _, c := range p.pending {
		n := p.ed.Add(syntax.Node{
			Kind:     syntax.KindComment,
			Text:     c.lit,
			Trailing: p.prev.line > 0 && c.line == p.prev.line,
			Pos:      c.pos,
			End:      c.end(),
		})
		list = append(list, n)
	}

	p.pending = p.pending[:0]

	return list
}

func (p *parser) expectStmtEnd() {
	switch p.tok.tok {
	case token.SEMICOLON, token.RBRACE, token.EOF:
		return
	}

	if !p.sameLine() {
		return
	}

	p.errorExpected("end of statement")

	// skip the rest of the line
	for line := p.tok.line; p.tok.line == line; p.next() {
		switch p.tok.tok {
		case token.SEMICOLON, token.RBRACE, token.EOF:
			return
		}
	}
}

func (p *parser) parseStmt() syntax.NodeIndex {
	switch p.tok.tok {
	case token.VAR:
		return p.parseProperty(true)

	case token.IDENT:
		switch {
		case p.tok.lit == "val":
			return p.parseProperty(false)

		case p.labelAhead():
			return p.parseLabeled()
		}

	case token.FOR:
		return p.parseFor()

	case token.IF:
		return p.parseIf()

	case token.BREAK:
		return p.parseJump(syntax.KindBreak)

	case token.CONTINUE:
		return p.parseJump(syntax.KindContinue)

	case token.RETURN:
		return p.parseReturn()
	}

	return p.parseSimpleStmt()
}

// labelAhead reports whether the current identifier is followed by '@', as in "outer@ for".
func (p *parser) labelAhead() bool {
	at := p.peek(1)

	return at.is(token.ILLEGAL, "@") && at.pos == p.tok.end()
}

func (p *parser) parseLabeled() syntax.NodeIndex {
	label := p.tok
	p.next() // name
	p.next() // '@'

	stmt := p.parseStmt()

	n := p.ed.Add(syntax.Node{Kind: syntax.KindLabeled, Name: label.lit, Pos: label.pos, End: p.prev.end()})
	if stmt.Valid() {
		p.ed.Append(n, syntax.EdgeLabeledStmt, stmt)
	}

	return n
}

func (p *parser) parseProperty(mutable bool) syntax.NodeIndex {
	keyword := p.tok
	p.next()

	name := p.expectIdent()

	var typ string
	if p.tok.tok == token.COLON {
		p.next()
		typ = p.parseType()
	}

	init := syntax.InvalidNode
	if p.tok.tok == token.ASSIGN {
		p.next()
		init = p.parseExpr()
	}

	n := p.ed.Add(syntax.Node{
		Kind:       syntax.KindProperty,
		Name:       name,
		Text:       typ,
		Mutable:    mutable,
		Pos:        keyword.pos,
		End:        p.prev.end(),
		KeywordPos: keyword.pos,
	})

	if init.Valid() {
		p.ed.Append(n, syntax.EdgePropertyInit, init)
	}

	// The initializer does not see the new name.
	p.declare(name, n)

	return n
}

// parseType returns the source text of a type annotation like "List<String>?".
func (p *parser) parseType() string {
	start, line, depth := p.tok.pos, p.tok.line, 0

loop:
	for p.tok.tok != token.EOF {
		switch p.tok.tok {
		case token.LSS, token.LPAREN:
			depth++

		case token.GTR, token.RPAREN:
			if depth == 0 {
				break loop
			}

			depth--

		case token.ASSIGN, token.SEMICOLON, token.RBRACE, token.COMMA, token.SUB:
			if depth == 0 {
				break loop
			}

		case token.IDENT:
			if depth == 0 && p.tok.lit == "in" {
				break loop
			}
		}

		if depth == 0 && p.tok.line != line {
			break
		}

		p.next()
	}

	if p.tok.pos == start {
		p.errorExpected("type")
		return ""
	}

	return p.sourceText(start, p.prev.end())
}

func (p *parser) parseParameter() syntax.NodeIndex {
	pos := p.tok.pos
	name := p.expectIdent()

	var typ string
	if p.tok.tok == token.COLON {
		p.next()
		typ = p.parseType()
	}

	return p.ed.Add(syntax.Node{Kind: syntax.KindParameter, Name: name, Text: typ, Pos: pos, End: p.prev.end()})
}

func (p *parser) parseFor() syntax.NodeIndex {
	pos := p.expect(token.FOR)
	p.expect(token.LPAREN)

	index, variable := syntax.InvalidNode, syntax.InvalidNode
	if p.tok.tok == token.LPAREN { // destructuring declaration
		p.next()
		index = p.parseParameter()
		p.expect(token.COMMA)
		variable = p.parseParameter()
		p.expect(token.RPAREN)
	} else {
		variable = p.parseParameter()
	}

	if p.tok.is(token.IDENT, "in") {
		p.next()
	} else {
		p.errorExpected("'in'")
	}

	rng := p.parseExpr()
	p.expect(token.RPAREN)

	p.openScope()
	defer p.closeScope()

	if index.Valid() {
		p.declare(p.ed.Tree().Node(index).Name, index)
	}

	p.declare(p.ed.Tree().Node(variable).Name, variable)

	body := p.parseBody()

	n := p.ed.Add(syntax.Node{Kind: syntax.KindFor, Pos: pos, End: p.prev.end()})
	p.ed.Append(n, syntax.EdgeForVar, variable)

	if index.Valid() {
		p.ed.Append(n, syntax.EdgeForIndex, index)
	}

	p.ed.Append(n, syntax.EdgeForRange, rng)

	if body.Valid() {
		p.ed.Append(n, syntax.EdgeForBody, body)
	}

	return n
}

// parseBody parses a block or a single statement.
func (p *parser) parseBody() syntax.NodeIndex {
	if p.tok.tok == token.LBRACE {
		return p.parseBlock()
	}

	return p.parseStmt()
}

func (p *parser) parseBlock() syntax.NodeIndex {
	pos := p.expect(token.LBRACE)

	p.openScope()
	list := p.parseStmtList()
	p.closeScope()

	p.expect(token.RBRACE)

	n := p.ed.Add(syntax.Node{Kind: syntax.KindBlock, Pos: pos, End: p.prev.end()})
	for _, s := range list {
		p.ed.Append(n, syntax.EdgeBlockStmts, s)
	}

	return n
}

func (p *parser) parseIf() syntax.NodeIndex {
	pos := p.expect(token.IF)
	p.expect(token.LPAREN)
	cond := p.parseExpr()
	p.expect(token.RPAREN)

	then := p.parseBody()

	els := syntax.InvalidNode
	if p.tok.tok == token.ELSE {
		p.next()
		els = p.parseBody()
	}

	n := p.ed.Add(syntax.Node{Kind: syntax.KindIf, Pos: pos, End: p.prev.end()})
	p.ed.Append(n, syntax.EdgeIfCond, cond)

	if then.Valid() {
		p.ed.Append(n, syntax.EdgeIfThen, then)
	}

	if els.Valid() {
		p.ed.Append(n, syntax.EdgeIfElse, els)
	}

	return n
}

// parseJump parses break and continue with an optional "@label".
func (p *parser) parseJump(kind syntax.Kind) syntax.NodeIndex {
	pos := p.tok.pos
	p.next()

	var label string
	if p.tok.is(token.ILLEGAL, "@") && p.adjacent() {
		p.next()
		label = p.expectIdent()
	}

	return p.ed.Add(syntax.Node{Kind: kind, Name: label, Pos: pos, End: p.prev.end()})
}

func (p *parser) parseReturn() syntax.NodeIndex {
	pos := p.expect(token.RETURN)

	value := syntax.InvalidNode

	switch p.tok.tok {
	case token.SEMICOLON, token.RBRACE, token.EOF:

	default:
		if p.sameLine() {
			value = p.parseExpr()
		}
	}

	n := p.ed.Add(syntax.Node{Kind: syntax.KindReturn, Pos: pos, End: p.prev.end()})
	if value.Valid() {
		p.ed.Append(n, syntax.EdgeReturnValue, value)
	}

	return n
}

func (p *parser) parseSimpleStmt() syntax.NodeIndex {
	x := p.parseExpr()
	pos := p.ed.Tree().Node(x).Pos

	if !p.sameLine() {
		return p.exprStmt(x, pos)
	}

	switch p.tok.tok {
	case token.ASSIGN, token.ADD_ASSIGN, token.SUB_ASSIGN, token.MUL_ASSIGN, token.QUO_ASSIGN, token.REM_ASSIGN:
		op := p.tok.tok.String()
		p.next()

		y := p.parseExpr()

		n := p.ed.Add(syntax.Node{Kind: syntax.KindAssign, Op: op, Pos: pos, End: p.prev.end()})
		p.ed.Append(n, syntax.EdgeAssignLhs, x)
		p.ed.Append(n, syntax.EdgeAssignRhs, y)

		return n

	case token.INC, token.DEC:
		op := p.tok.tok.String()
		p.next()

		n := p.ed.Add(syntax.Node{Kind: syntax.KindIncDec, Op: op, Postfix: true, Pos: pos, End: p.prev.end()})
		p.ed.Append(n, syntax.EdgeIncDecX, x)

		return n
	}

	return p.exprStmt(x, pos)
}

func (p *parser) exprStmt(x syntax.NodeIndex, pos token.Pos) syntax.NodeIndex {
	n := p.ed.Add(syntax.Node{Kind: syntax.KindExprStmt, Pos: pos, End: p.prev.end()})
	p.ed.Append(n, syntax.EdgeExprStmtX, x)

	return n
}
