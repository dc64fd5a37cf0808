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

package analyzer

import (
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/config"
	"fillmore-labs.com/loopchain/internal/run"
)

// runOptions represent configuration runOptions for the loopchain analyzer.
type runOptions struct {
	// idioms represents the idioms to be rewritten.
	idioms config.Idioms

	// behavior holds behavioral options.
	behavior config.Behavior

	// logger receives debug output.
	logger *slog.Logger
}

// makeRunOptions returns a [runOptions] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

// defaultRunOptions initializes and returns a new Options instance with default values.
func defaultRunOptions() *runOptions {
	d := run.DefaultOptions()

	return &runOptions{
		idioms:   d.Idioms,
		behavior: d.Behavior,
		logger:   d.Logger,
	}
}

// pipeline returns the options of the rewriting pipeline.
func (r *runOptions) pipeline() *run.Options {
	return &run.Options{
		Idioms:   r.idioms,
		Behavior: r.behavior,
		Logger:   r.logger,
	}
}

// analyzer returns a loopchain *[analysis.Analyzer] instance.
func (r *runOptions) analyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		URL:  url,
		Run:  r.run,
	}

	registerFlags(&a.Flags, r)

	return a
}
