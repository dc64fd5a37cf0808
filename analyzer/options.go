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

	"fillmore-labs.com/loopchain/internal/config"
)

// Option configures specific behavior of a [New] loopchain analyzer or a [NewRewriter] rewriter.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure rewriting generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFindFirst is an [Option] to configure whether loops stopping at the first match are rewritten to firstOrNull.
func WithFindFirst(findFirst bool) Option { return findFirstOption{findFirst: findFirst} }

type findFirstOption struct{ findFirst bool }

func (o findFirstOption) apply(r *runOptions) {
	r.idioms.Set(config.FindFirst, o.findFirst)
}

func (o findFirstOption) LogAttr() slog.Attr {
	return slog.Bool("find-first", o.findFirst)
}

// WithFindLast is an [Option] to configure whether loops keeping the last match are rewritten to lastOrNull.
func WithFindLast(findLast bool) Option { return findLastOption{findLast: findLast} }

type findLastOption struct{ findLast bool }

func (o findLastOption) apply(r *runOptions) {
	r.idioms.Set(config.FindLast, o.findLast)
}

func (o findLastOption) LogAttr() slog.Attr {
	return slog.Bool("find-last", o.findLast)
}

// WithMergeFilter is an [Option] to configure merging a filter into the predicate of the final call.
// When disabled, a separate filter call is generated.
func WithMergeFilter(mergeFilter bool) Option { return mergeFilterOption{mergeFilter: mergeFilter} }

type mergeFilterOption struct{ mergeFilter bool }

func (o mergeFilterOption) apply(r *runOptions) {
	r.behavior.Set(config.MergeFilter, o.mergeFilter)
}

func (o mergeFilterOption) LogAttr() slog.Attr {
	return slog.Bool("merge-filter", o.mergeFilter)
}

// WithMakeVal is an [Option] to configure turning "var" declarations into "val" when they are not reassigned.
func WithMakeVal(makeVal bool) Option { return makeValOption{makeVal: makeVal} }

type makeValOption struct{ makeVal bool }

func (o makeValOption) apply(r *runOptions) {
	r.behavior.Set(config.MakeVal, o.makeVal)
}

func (o makeValOption) LogAttr() slog.Attr {
	return slog.Bool("make-val", o.makeVal)
}

// WithLogger is an [Option] to set the logger for debug output. A nil logger discards.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	if o.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
		return
	}

	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
