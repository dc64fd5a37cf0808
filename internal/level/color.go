// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

// Package level provides enumerated command line settings.
package level

import (
	"fmt"
	"strings"
)

// Color specifies when to use colored output.
type Color uint8

const (
	// ColorAuto enables color when writing to a terminal.
	ColorAuto Color = iota

	// ColorAlways forces colored output.
	ColorAlways

	// ColorNever disables colored output.
	ColorNever
)

// MarshalText implements [encoding.TextMarshaler].
func (o Color) MarshalText() ([]byte, error) {
	switch o {
	case ColorAuto:
		return []byte("auto"), nil

	case ColorAlways:
		return []byte("always"), nil

	case ColorNever:
		return []byte("never"), nil

	default:
		return nil, fmt.Errorf("unknown color level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*o = ColorAuto

	case "always", "true", "on":
		*o = ColorAlways

	case "never", "false", "off":
		*o = ColorNever

	default:
		return fmt.Errorf("unknown color level %q", string(text))
	}

	return nil
}

// String implements [fmt.Stringer].
func (o Color) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Color(%d)", o)
	}

	return string(text)
}

// Set implements [flag.Value].
func (o *Color) Set(s string) error {
	return o.UnmarshalText([]byte(s))
}

// Enabled decides whether to use color, given whether the output is a terminal.
func (o Color) Enabled(terminal bool) bool {
	switch o {
	case ColorAlways:
		return true

	case ColorNever:
		return false

	default:
		return terminal
	}
}
