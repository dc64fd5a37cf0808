// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/printer"
	"fillmore-labs.com/loopchain/internal/syntax"
)

var (
	// ErrNoPosition is returned when a node needed for an edit has no source position.
	ErrNoPosition = errors.New("node without source position")

	// ErrOverlappingEdits is returned when text edits overlap.
	ErrOverlappingEdits = errors.New("overlapping edits")
)

// createEdits creates the text edits reproducing a rewrite in the source.
func createEdits(tree *syntax.Tree, src []byte, rw Rewrite) ([]analysis.TextEdit, error) {
	decl, loop := tree.Node(rw.Declaration), tree.Node(rw.Loop)

	if !rw.Initializer.Pos().IsValid() || !loop.Pos.IsValid() || !rw.Prev.Valid() {
		return nil, ErrNoPosition
	}

	var edits []analysis.TextEdit

	// Turn "var" into "val"
	if rw.Downgraded {
		edits = append(edits, analysis.TextEdit{Pos: decl.KeywordPos, End: decl.KeywordPos + keywordLen, NewText: []byte("val")})
	}

	// Replace the initializer, keeping the comments within it
	text := []byte(printer.Node(tree, rw.Result))
	for _, c := range innerComments(tree, rw) {
		text = append(text, ' ')
		text = append(text, tree.Node(c).Text...)
	}

	edits = append(edits, analysis.TextEdit{Pos: rw.Initializer.Pos(), End: rw.Initializer.End(), NewText: text})

	// Remove the loop starting at the end of the preceding line, restoring lost comments
	var buf bytes.Buffer

	indent := indentation(tree.File(), src, loop.Pos)
	for _, c := range rw.Restored {
		buf.WriteByte('\n')                // ignore error
		buf.Write(indent)                  // ignore error
		buf.WriteString(tree.Node(c).Text) // ignore error
	}

	// Comments within the declaration precede the loop, but may end before the initializer
	start := max(tree.Node(rw.Prev).End, rw.Initializer.End())

	edits = append(edits, analysis.TextEdit{Pos: start, End: loop.End, NewText: buf.Bytes()})

	if err := checkEdits(tree.File(), edits); err != nil {
		return nil, err
	}

	return edits, nil
}

// innerComments returns the comments within the replaced initializer. They are attached
// after the declaration and continue its line.
func innerComments(tree *syntax.Tree, rw Rewrite) []syntax.NodeIndex {
	var comments []syntax.NodeIndex

	for c := range tree.At(rw.Declaration).Parent().Preorder(syntax.KindComment) {
		if node := c.Node(); node.Pos >= rw.Initializer.Pos() && node.End <= rw.Initializer.End() {
			comments = append(comments, c.Index())
		}
	}

	return comments
}

// checkEdits verifies that edits do not overlap.
func checkEdits(file *token.File, edits []analysis.TextEdit) error {
	sorted := slices.SortedStableFunc(slices.Values(edits), comparePos)

	for i := 1; i < len(sorted); i++ {
		if prev := sorted[i-1]; sorted[i].Pos < max(prev.Pos, prev.End) {
			return fmt.Errorf("%w at %s", ErrOverlappingEdits, file.Position(sorted[i].Pos))
		}
	}

	return nil
}

func comparePos(a, b analysis.TextEdit) int { return int(a.Pos - b.Pos) }

// indentation returns the leading white space of the line containing pos.
func indentation(file *token.File, src []byte, pos token.Pos) []byte {
	start := file.Offset(file.LineStart(file.Line(pos)))
	line := src[start:file.Offset(pos)]

	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	return line[:i]
}

// ApplyEdits applies non-overlapping text edits to src.
func ApplyEdits(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	edits = slices.SortedStableFunc(slices.Values(edits), comparePos)

	var (
		out  bytes.Buffer
		last int
	)

	for _, edit := range edits {
		start, end := file.Offset(edit.Pos), file.Offset(edit.Pos)
		if edit.End.IsValid() {
			end = file.Offset(edit.End)
		}

		if start < last || end < start {
			return nil, fmt.Errorf("%w at %s", ErrOverlappingEdits, file.Position(edit.Pos))
		}

		out.Write(src[last:start]) // ignore error
		out.Write(edit.NewText)    // ignore error
		last = end
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
