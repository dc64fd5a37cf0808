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

package run

import (
	"log/slog"

	"fillmore-labs.com/loopchain/internal/config"
)

// Options represent configuration options for the loop rewriter.
type Options struct {
	// Idioms represent the idioms to be rewritten.
	Idioms config.Idioms

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// Logger receives debug records of matches and refusals.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Idioms:   config.DefaultIdioms(),
		Behavior: config.DefaultBehavior(),
		Logger:   slog.New(slog.DiscardHandler),
	}
}
