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

package gclplugin

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	loopchain "fillmore-labs.com/loopchain/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
// The command line tool reads the same keys from a YAML file.
type Settings struct {
	// Generated enables rewriting generated files.
	Generated *bool `json:"generated,omitzero"    yaml:"generated"`
	// FindFirst enables rewriting loops that stop at the first match.
	FindFirst *bool `json:"find-first,omitzero"   yaml:"find-first"`
	// FindLast enables rewriting loops that keep the last match.
	FindLast *bool `json:"find-last,omitzero"    yaml:"find-last"`
	// MergeFilter enables merging a preceding filter into the final call.
	MergeFilter *bool `json:"merge-filter,omitzero" yaml:"merge-filter"`
	// MakeVal enables turning "var" into "val" when nothing else writes the variable.
	MakeVal *bool `json:"make-val,omitzero"     yaml:"make-val"`
}

// Options converts [Settings] into a list of [loopchain.Option] for the loopchain analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []loopchain.Option {
	var opts []loopchain.Option

	opts = appendOption(opts, s.Generated, loopchain.WithGenerated)
	opts = appendOption(opts, s.FindFirst, loopchain.WithFindFirst)
	opts = appendOption(opts, s.FindLast, loopchain.WithFindLast)
	opts = appendOption(opts, s.MergeFilter, loopchain.WithMergeFilter)
	opts = appendOption(opts, s.MakeVal, loopchain.WithMakeVal)

	return opts
}

// appendOption appends a non-nil setting to a [loopchain.Option] list.
func appendOption[T any](opts []loopchain.Option, value *T, constructor func(T) loopchain.Option) []loopchain.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// ReadSettings decodes YAML [Settings], rejecting unknown keys. An empty document yields zero settings.
func ReadSettings(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("can't decode settings: %w", err)
	}

	return s, nil
}
