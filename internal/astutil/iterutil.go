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
	"iter"

	"fillmore-labs.com/loopchain/internal/syntax"
)

// AllComments yields all comments within the given statements, in source order.
func AllComments(t *syntax.Tree, stmts []syntax.NodeIndex) iter.Seq[syntax.NodeIndex] {
	return func(yield func(syntax.NodeIndex) bool) {
		for _, s := range stmts {
			for c := range t.At(s).Preorder(syntax.KindComment) {
				if !yield(c.Index()) {
					return
				}
			}
		}
	}
}
