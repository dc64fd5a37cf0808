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

package run

import (
	"slices"

	"fillmore-labs.com/loopchain/internal/astutil"
	"fillmore-labs.com/loopchain/internal/syntax"
	"fillmore-labs.com/loopchain/internal/transform"
)

// saveComments captures all comments within the saving range before the tree is edited.
func saveComments(tree *syntax.Tree, saving transform.Range) []syntax.NodeIndex {
	return slices.Collect(astutil.AllComments(tree, saving.Statements(tree)))
}

// restoreComments inserts copies of saved comments that are no longer part of the tree
// at the end of the restoring range, each on its own line. It returns the new comments.
func restoreComments(ed *syntax.Editor, restoring transform.Range, saved []syntax.NodeIndex) []syntax.NodeIndex {
	t := ed.Tree()

	var restored []syntax.NodeIndex

	for _, c := range saved {
		if t.Attached(c) {
			continue
		}

		node := t.Node(c)
		n := ed.Add(syntax.Node{Kind: syntax.KindComment, Text: node.Text, Pos: node.Pos, End: node.End})
		ed.Insert(restoring.Parent, restoring.Edge, restoring.End+len(restored), n)

		restored = append(restored, n)
	}

	return restored
}
