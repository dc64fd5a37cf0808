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

package match

// ConsumedAll denotes a match consuming all remaining statements.
const ConsumedAll = -1

// Result is the outcome of a successful match.
type Result[T any] struct {
	// Transformation is the matched idiom.
	Transformation T

	// Consumed is the number of statements matched, or [ConsumedAll].
	Consumed int
}

// NewResult creates a [Result] consuming all remaining statements.
func NewResult[T any](t T) Result[T] {
	return Result[T]{Transformation: t, Consumed: ConsumedAll}
}

// ConsumedAll reports whether the match covers all remaining statements of state.
func (r Result[T]) ConsumedAll(state State) bool {
	return r.Consumed == ConsumedAll || r.Consumed >= state.Len()
}
