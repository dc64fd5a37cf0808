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

package usage

import "fillmore-labs.com/loopchain/internal/syntax"

// Reference is a single reference to a declaration.
type Reference struct {
	Node  syntax.NodeIndex
	Usage Flags
}

// Flags indicates how a reference uses the declaration.
type Flags uint8

const (
	// UsageRead indicates the value is read.
	UsageRead Flags = 1 << iota

	// UsageWrite indicates the declaration is reassigned.
	UsageWrite

	// UsageNone indicates no usage.
	UsageNone Flags = 0

	// UsageReadWrite represents a combination of [UsageRead] and [UsageWrite] flags,
	// like in "x += 1".
	UsageReadWrite = UsageRead | UsageWrite
)

// Read indicates the value is read.
func (f Flags) Read() bool {
	return f&UsageRead != 0
}

// Write indicates the declaration is reassigned.
func (f Flags) Write() bool {
	return f&UsageWrite != 0
}
