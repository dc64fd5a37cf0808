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

package config

// IdiomFlags represents the loop idioms to be rewritten.
type IdiomFlags uint8

const (
	// FindFirst enables rewriting loops that stop at the first match to firstOrNull.
	FindFirst IdiomFlags = 1 << iota

	// FindLast enables rewriting loops that keep the last match to lastOrNull.
	FindLast

	// AllIdioms enables all idioms.
	AllIdioms = FindFirst | FindLast
)

// Config represents behavioral options for the rewriter.
type Config uint8

const (
	// IncludeGenerated specifies whether to rewrite generated files.
	IncludeGenerated Config = 1 << iota

	// MergeFilter determines whether a preceding filter is merged into the predicate of the result call.
	MergeFilter

	// MakeVal indicates that "var" declarations without further writes become "val".
	MakeVal
)

// Idioms is the set of enabled idioms.
type Idioms = BitMask[IdiomFlags]

// Behavior is the set of enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultIdioms returns the idioms enabled by default.
func DefaultIdioms() Idioms {
	return NewBitMask(AllIdioms)
}

// DefaultBehavior returns the behavioral options enabled by default.
func DefaultBehavior() Behavior {
	return NewBitMask(MergeFilter | MakeVal)
}
