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

package config_test

import (
	"testing"

	. "fillmore-labs.com/loopchain/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(FindFirst)

	if !b.Enabled(FindFirst) || b.Enabled(FindLast) || b.Enabled(AllIdioms) {
		t.Errorf("Got value %b after NewBitMask", b.Value())
	}

	b.Set(FindLast, true)

	if !b.Enabled(AllIdioms) {
		t.Errorf("Got value %b, want all idioms", b.Value())
	}

	b.Set(FindFirst, false)

	if b.Enabled(FindFirst) || !b.Enabled(FindLast) {
		t.Errorf("Got value %b after disabling", b.Value())
	}

	if b.Enabled(0) {
		t.Error("Empty flag reported as enabled")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if got := DefaultIdioms(); got.Value() != AllIdioms {
		t.Errorf("Got default idioms %b, want %b", got.Value(), AllIdioms)
	}

	behavior := DefaultBehavior()

	for _, tt := range []struct {
		flag Config
		want bool
	}{
		{IncludeGenerated, false},
		{MergeFilter, true},
		{MakeVal, true},
	} {
		if got := behavior.Enabled(tt.flag); got != tt.want {
			t.Errorf("Got Enabled(%b) = %t, want %t", tt.flag, got, tt.want)
		}
	}
}
