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

// Package transform recognizes loop idioms and rewrites them into collection call chains.
//
// Transformations form a closed set, tagged by [Idiom]. Sequence transformations like
// [Filter] consume a prefix of the loop body and produce an intermediate sequence; result
// transformations like [FindAndAssign] consume the rest and replace the loop.
package transform

// Idiom tags a transformation. The string value is the generated function name.
type Idiom uint8

//go:generate go tool stringer -type Idiom -linecomment
const (
	IdiomInvalid   Idiom = iota
	IdiomFilter          // filter
	IdiomFindFirst       // firstOrNull
	IdiomFindLast        // lastOrNull
)
