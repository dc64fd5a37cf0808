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

package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// loopchain is the name of the linter.
const loopchain = "loopchain"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	tree      *syntax.Tree
	comments  []syntax.Node // sorted by position
	generated bool
	nolint    bool
}

// NewCurrentFile creates a new [CurrentFile] from a parsed tree.
func NewCurrentFile(tree *syntax.Tree) CurrentFile {
	if tree == nil || tree.File() == nil {
		return CurrentFile{}
	}

	var comments []syntax.Node
	for c := range tree.Root().Preorder(syntax.KindComment) {
		comments = append(comments, c.Node())
	}

	slices.SortFunc(comments, func(a, b syntax.Node) int { return int(a.Pos - b.Pos) })

	generated, nolint := fileHeader(tree)

	return CurrentFile{tree, comments, generated, nolint}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.tree != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint returns true if the file header disables the linter.
func (c CurrentFile) NoLint() bool {
	return c.nolint
}

// Lines returns the number of lines a node spans.
func (c CurrentFile) Lines(n syntax.NodeIndex) int {
	node := c.tree.Node(n)

	return c.tree.Line(node.End) - c.tree.Line(node.Pos) + 1
}

// NoLintComment checks if a line is followed by a //nolint:loopchain comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	line := c.tree.Line(pos)

	// find the first comment starting after the statement
	i, _ := slices.BinarySearchFunc(c.comments, pos,
		func(c syntax.Node, p token.Pos) int { return int(c.Pos - p) })

	for _, comment := range c.comments[i:] {
		if c.tree.Line(comment.Pos) != line {
			return false // not on this line
		}

		if CommentHasNoLint(comment.Text) {
			return true
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:loopchain` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == loopchain || l == "all" {
			return true
		}
	}

	return false
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// fileHeader inspects the comments before the first statement for a generated code
// marker and a //nolint:loopchain directive.
func fileHeader(tree *syntax.Tree) (generated, nolint bool) {
	for _, s := range tree.Root().Statements() {
		node := tree.Node(s)
		if node.Kind != syntax.KindComment {
			break
		}

		generated = generated || generatedPattern.MatchString(node.Text)
		nolint = nolint || CommentHasNoLint(node.Text)
	}

	return generated, nolint
}
