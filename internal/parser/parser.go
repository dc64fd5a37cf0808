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

// Package parser builds a [syntax.Tree] from source text.
//
// The grammar is a Kotlin-like statement language. Tokens come from [go/scanner];
// statements end at a semicolon, a closing brace or a line break.
package parser

import (
	"go/scanner"
	"go/token"
	"strings"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// Parse parses src and returns the syntax tree. On syntax errors the returned error is a
// [scanner.ErrorList] and the tree may be incomplete.
func Parse(fset *token.FileSet, filename string, src []byte) (t *syntax.Tree, err error) {
	file := fset.AddFile(filename, -1, len(src))
	t = syntax.New(file)

	p := parser{file: file, src: src, ed: t.Edit()}
	defer p.ed.Done()

	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(bailout); !ok {
				panic(e)
			}
		}

		p.errors.Sort()
		err = p.errors.Err()
	}()

	p.scan()
	p.init()

	p.parseFile(t.Root().Index())

	return t, nil
}

// bailout stops parsing after too many errors.
type bailout struct{}

const maxErrors = 10

type parser struct {
	file *token.File
	src  []byte

	tokens []tokenInfo
	offset int

	tok     tokenInfo   // current token
	prev    tokenInfo   // last consumed token
	pending []tokenInfo // comments passed over, not yet attached

	errors scanner.ErrorList

	ed    *syntax.Editor
	scope *scope
}

// tokenInfo is a scanned token.
type tokenInfo struct {
	pos  token.Pos
	tok  token.Token
	lit  string
	line int
}

func (t tokenInfo) text() string {
	if t.lit != "" {
		return t.lit
	}

	return t.tok.String()
}

func (t tokenInfo) end() token.Pos {
	return t.pos + token.Pos(len(t.text()))
}

func (t tokenInfo) is(tok token.Token, lit string) bool {
	return t.tok == tok && t.lit == lit
}

// scan tokenizes the whole source. Automatically inserted semicolons are dropped,
// line breaks are evaluated by the parser itself.
func (p *parser) scan() {
	var s scanner.Scanner
	s.Init(p.file, p.src, p.scanError, scanner.ScanComments)

	for {
		pos, tok, lit := s.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		if tok == token.FLOAT {
			p.appendNumber(pos, lit)
			continue
		}

		p.tokens = append(p.tokens, tokenInfo{pos: pos, tok: tok, lit: lit, line: p.file.Line(pos)})

		if tok == token.EOF {
			break
		}
	}
}

// appendNumber splits floating point literals that are really part of a range like "0..10".
func (p *parser) appendNumber(pos token.Pos, lit string) {
	add := func(pos token.Pos, tok token.Token, lit string) {
		p.tokens = append(p.tokens, tokenInfo{pos: pos, tok: tok, lit: lit, line: p.file.Line(pos)})
	}

	if n := len(p.tokens); n > 0 && strings.HasPrefix(lit, ".") {
		if last := p.tokens[n-1]; last.tok == token.PERIOD && last.end() == pos {
			add(pos, token.PERIOD, "")
			pos, lit = pos+1, lit[1:]
		}
	}

	if rest, ok := strings.CutSuffix(lit, "."); ok && p.peekByte(pos+token.Pos(len(lit))) == '.' {
		add(pos, token.INT, rest)
		add(pos+token.Pos(len(rest)), token.PERIOD, "")

		return
	}

	tok := token.FLOAT
	if strings.IndexFunc(lit, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		tok = token.INT
	}

	add(pos, tok, lit)
}

// peekByte returns the source byte at pos, or 0 past the end.
func (p *parser) peekByte(pos token.Pos) byte {
	if off := p.file.Offset(pos); off < len(p.src) {
		return p.src[off]
	}

	return 0
}

// scanError records scanner errors, except for the characters '@' and '?',
// which are part of the grammar.
func (p *parser) scanError(pos token.Position, msg string) {
	if pos.Offset < len(p.src) {
		switch p.src[pos.Offset] {
		case '@', '?':
			return
		}
	}

	p.errors.Add(pos, msg)
}

func (p *parser) init() {
	p.offset = -1
	p.next()
}

// next advances to the next non-comment token, collecting comments.
func (p *parser) next() {
	p.prev = p.tok

	for p.offset < len(p.tokens)-1 {
		p.offset++

		t := p.tokens[p.offset]
		if t.tok == token.COMMENT {
			p.pending = append(p.pending, t)
			continue
		}

		p.tok = t

		return
	}
}

// peek returns the k-th non-comment token after the current one.
func (p *parser) peek(k int) tokenInfo {
	for i := p.offset + 1; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if t.tok == token.COMMENT {
			continue
		}

		if k--; k == 0 {
			return t
		}
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *parser) error(pos token.Pos, msg string) {
	p.errors.Add(p.file.Position(pos), msg)

	if len(p.errors) > maxErrors {
		panic(bailout{})
	}
}

func (p *parser) errorExpected(what string) {
	found := "'" + p.tok.text() + "'"
	if p.tok.tok == token.EOF {
		found = "EOF"
	}

	p.error(p.tok.pos, "expected "+what+", found "+found)
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.tok.pos
	if p.tok.tok != tok {
		p.errorExpected("'" + tok.String() + "'")
		return pos
	}

	p.next()

	return pos
}

// identLike reports whether the current token can be used as a name.
func (p *parser) identLike() bool {
	switch p.tok.tok {
	case token.IDENT:
		return true

	case token.FOR, token.IF, token.ELSE, token.BREAK, token.CONTINUE, token.RETURN, token.VAR:
		return false

	default:
		return p.tok.tok.IsKeyword()
	}
}

func (p *parser) expectIdent() string {
	if !p.identLike() {
		p.errorExpected("identifier")
		return "_"
	}

	name := p.tok.lit
	p.next()

	return name
}

// sameLine reports whether the current token starts on the line of the last consumed token.
func (p *parser) sameLine() bool {
	return p.tok.line == p.prev.line
}

// adjacent reports whether the current token directly follows the last consumed token.
func (p *parser) adjacent() bool {
	return p.tok.pos == p.prev.end()
}

// sourceText returns the source between two positions.
func (p *parser) sourceText(pos, end token.Pos) string {
	return string(p.src[p.file.Offset(pos):p.file.Offset(end)])
}
