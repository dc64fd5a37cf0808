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

// Package analyzer implements the loopchain rewriter.
//
// # Overview
//
// Loopchain finds loops in Kotlin sources that search a collection for its first or last
// (matching) element and rewrites them into calls of firstOrNull or lastOrNull.
//
// # Example
//
// Before:
//
//	var found: User? = null
//	for (user in users) {
//	    if (!user.active) continue
//	    found = user
//	    break
//	}
//
// After applying loopchain's suggested fix:
//
//	val found: User? = users.firstOrNull { user -> user.active }
//
// # Usage
//
// [NewRewriter] returns a [Rewriter] for single files, used by the loopchain command.
// [Analyzer] checks the Kotlin files (*.kt, *.kts) in the directories of Go packages
// and can be run by go/analysis drivers and golangci-lint.
//
// Loops can be excluded with a //nolint:loopchain comment on the loop line.
//
// # Limitations
//
// Only statement-level scripts are understood: properties, for loops, if, assignments,
// jumps and expressions. Files with declarations (package, import, fun, class) or while
// and when statements do not parse. [Rewriter.Rewrite] returns [ErrSyntax] for them, the
// [Analyzer] skips them.
package analyzer
