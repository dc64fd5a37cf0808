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

package transform

import (
	"fillmore-labs.com/loopchain/internal/chain"
	"fillmore-labs.com/loopchain/internal/match"
	"fillmore-labs.com/loopchain/internal/syntax"
)

// Filter skips elements failing a condition.
//
// The condition is kept as references into the original tree and only built on demand,
// so matching never creates nodes.
type Filter struct {
	tree       *syntax.Tree
	variable   syntax.NodeIndex
	conditions []condition
}

// condition is a part of a filter condition, combined with "&&".
type condition struct {
	expr   syntax.NodeIndex
	negate bool
}

var _ Sequence = Filter{}

// Idiom implements [Transformation].
func (Filter) Idiom() Idiom { return IdiomFilter }

func (Filter) transformation() {}

// InputVariable implements [Sequence].
func (f Filter) InputVariable() syntax.NodeIndex {
	return f.variable
}

// MatchFilter recognizes a filter at the start of state. Two forms are accepted:
//
//	if (cond) continue   // skips the element, the filter keeps !cond
//	if (cond) { rest }   // the sole statement, rest is matched further
//
// It returns the filter and the state to continue matching with.
func MatchFilter(state match.State) (Filter, match.State, bool) {
	if state.Len() == 0 {
		return Filter{}, state, false
	}

	stmt := state.Statement(0)
	if stmt.Kind() != syntax.KindIf || stmt.ChildAt(syntax.EdgeIfElse, -1).Valid() {
		return Filter{}, state, false
	}

	t, cond, then := state.Tree(), stmt.ChildAt(syntax.EdgeIfCond, -1), stmt.ChildAt(syntax.EdgeIfThen, -1)
	if !cond.Valid() || !then.Valid() {
		return Filter{}, state, false
	}

	body := state.WithStatements(then.Statements())

	filter := Filter{tree: t, variable: state.Variable()}

	if body.Len() == 1 && match.IsBreakOrContinueOfLoop(t, body.Statement(0).Index(), syntax.KindContinue, state.Loop()) {
		filter.conditions = []condition{{expr: cond.Index(), negate: true}}

		return filter, state.Rest(1), true
	}

	if state.Len() != 1 || body.Len() == 0 {
		return Filter{}, state, false
	}

	filter.conditions = []condition{{expr: cond.Index()}}

	return filter, body, true
}

// Merge combines two consecutive filters into one.
func (f Filter) Merge(next Filter) Filter {
	conditions := make([]condition, 0, len(f.conditions)+len(next.conditions))
	conditions = append(conditions, f.conditions...)
	conditions = append(conditions, next.conditions...)

	return Filter{tree: f.tree, variable: f.variable, conditions: conditions}
}

// BuildRealCondition creates the condition elements must satisfy to pass the filter.
func (f Filter) BuildRealCondition(ed *syntax.Editor) syntax.NodeIndex {
	result := syntax.InvalidNode

	for _, c := range f.conditions {
		var expr syntax.NodeIndex
		if c.negate {
			expr = negate(ed, c.expr)
		} else {
			expr = ed.Clone(syntax.StripParens(ed.Tree().At(c.expr)).Index(), nil)
		}

		if !result.Valid() {
			result = expr
			continue
		}

		result = binary(ed, "&&", result, expr)
	}

	return result
}

// GenerateCode implements [Sequence].
func (f Filter) GenerateCode(g *chain.Generator) syntax.NodeIndex {
	return g.Generate(IdiomFilter.String(), g.Lambda(f.variable, f.BuildRealCondition(g.Editor())))
}

// negate builds a copy of the logical negation of expr.
func negate(ed *syntax.Editor, expr syntax.NodeIndex) syntax.NodeIndex {
	t := ed.Tree()
	c := syntax.StripParens(t.At(expr))
	node := c.Node()

	switch node.Kind {
	case syntax.KindUnary:
		if node.Op == "!" && !node.Postfix {
			return ed.Clone(syntax.StripParens(c.ChildAt(syntax.EdgeUnaryX, -1)).Index(), nil)
		}

	case syntax.KindBinary:
		var op string

		switch node.Op {
		case "==":
			op = "!="
		case "!=":
			op = "=="
		default:
			return not(ed, c.Index())
		}

		x := ed.Clone(c.ChildAt(syntax.EdgeBinaryX, -1).Index(), nil)
		y := ed.Clone(c.ChildAt(syntax.EdgeBinaryY, -1).Index(), nil)

		return binary(ed, op, x, y)

	case syntax.KindLiteral:
		switch node.Text {
		case "true":
			return ed.Add(syntax.Node{Kind: syntax.KindLiteral, Text: "false"})
		case "false":
			return ed.Add(syntax.Node{Kind: syntax.KindLiteral, Text: "true"})
		}
	}

	return not(ed, c.Index())
}

// not builds "!expr", parenthesizing expr when needed.
func not(ed *syntax.Editor, expr syntax.NodeIndex) syntax.NodeIndex {
	n := ed.Add(syntax.Node{Kind: syntax.KindUnary, Op: "!"})
	ed.Append(n, syntax.EdgeUnaryX, operand(ed, ed.Clone(expr, nil), syntax.PrecPrefix))

	return n
}

// binary builds "x op y" from detached operands, parenthesizing them when needed.
func binary(ed *syntax.Editor, op string, x, y syntax.NodeIndex) syntax.NodeIndex {
	prec := syntax.BinaryPrecedence(op)

	n := ed.Add(syntax.Node{Kind: syntax.KindBinary, Op: op})
	ed.Append(n, syntax.EdgeBinaryX, operand(ed, x, prec))
	ed.Append(n, syntax.EdgeBinaryY, operand(ed, y, prec+1))

	return n
}

// operand wraps the detached expression x in parentheses when it binds looser than prec.
func operand(ed *syntax.Editor, x syntax.NodeIndex, prec int) syntax.NodeIndex {
	if ed.Tree().Precedence(x) >= prec {
		return x
	}

	paren := ed.Add(syntax.Node{Kind: syntax.KindParen})
	ed.Append(paren, syntax.EdgeParenX, x)

	return paren
}
