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

package level_test

import (
	"testing"

	. "fillmore-labs.com/loopchain/internal/level"
)

func TestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text     string
		want     Color
		terminal bool
		enabled  bool
	}{
		{"", ColorAuto, true, true},
		{"auto", ColorAuto, false, false},
		{"ALWAYS", ColorAlways, false, true},
		{"on", ColorAlways, false, true},
		{"never", ColorNever, true, false},
		{"false", ColorNever, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var c Color
			if err := c.Set(tt.text); err != nil {
				t.Fatalf("Set(%q) failed: %v", tt.text, err)
			}

			if c != tt.want {
				t.Errorf("Got %s, want %s", c, tt.want)
			}

			if got := c.Enabled(tt.terminal); got != tt.enabled {
				t.Errorf("Got Enabled(%t) = %t, want %t", tt.terminal, got, tt.enabled)
			}
		})
	}
}

func TestColorInvalid(t *testing.T) {
	t.Parallel()

	var c Color
	if err := c.Set("sometimes"); err == nil {
		t.Error("Expected error")
	}

	if _, err := Color(42).MarshalText(); err == nil {
		t.Error("Expected marshal error")
	}

	if got, want := Color(42).String(), "Color(42)"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := ColorNever.String(), "never"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
