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

package analyzer

import (
	"flag"

	"fillmore-labs.com/loopchain/internal/config"
)

// registerFlags binds the [runOptions] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.Var(newFlagValue(&r.behavior, config.IncludeGenerated), "generated", "rewrite generated files")
	flags.Var(newFlagValue(&r.idioms, config.FindFirst), "find-first", "rewrite loops stopping at the first match")
	flags.Var(newFlagValue(&r.idioms, config.FindLast), "find-last", "rewrite loops keeping the last match")
	flags.Var(newFlagValue(&r.behavior, config.MergeFilter), "merge-filter", "merge a filter into the final call")
	flags.Var(newFlagValue(&r.behavior, config.MakeVal), "make-val", "turn var into val when not reassigned")
}
