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

package analyzer_test

import (
	"context"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/loopchain/analyzer"
)

const search = `var last: Line? = null // latest
for (line in lines) {
    if (line.blank) continue
    last = line
}
emit(last)
`

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options Option
		want    string
	}{
		{
			name:    "Default",
			options: Options{},
			want:    "val last: Line? = lines.lastOrNull { line -> !line.blank } // latest\nemit(last)\n",
		},
		{
			name:    "NoMerge",
			options: WithMergeFilter(false),
			want:    "val last: Line? = lines.filter { line -> !line.blank }.lastOrNull() // latest\nemit(last)\n",
		},
		{
			name:    "Var",
			options: WithMakeVal(false),
			want:    "var last: Line? = lines.lastOrNull { line -> !line.blank } // latest\nemit(last)\n",
		},
		{
			name:    "Disabled",
			options: WithFindLast(false),
			want:    search,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRewriter(tt.options, WithLogger(slogt.New(t)))

			res, err := r.Rewrite(t.Context(), "search.kt", []byte(search))
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(res.Source))
			assert.Equal(t, tt.want != search, res.Changed())
			assert.Len(t, res.Diagnostics, res.Rewrites)

			for _, d := range res.Diagnostics {
				assert.Equal(t, "search.kt", res.Fset.Position(d.Pos).Filename)
			}
		})
	}
}

func TestRewriteInitializerComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "before",
			src:  "var x: Int? = /* none yet */ null\nfor (e in xs) {\n    x = e\n    break\n}\n",
			want: "val x: Int? = /* none yet */ xs.firstOrNull()\n",
		},
		{
			name: "within",
			src:  "var x: Int? = (null /* n */)\nfor (e in xs) {\n    x = e\n    break\n}\n",
			want: "val x: Int? = xs.firstOrNull() /* n */\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := NewRewriter().Rewrite(t.Context(), "p.kt", []byte(tt.src))
			require.NoError(t, err)

			assert.Equal(t, tt.want, string(res.Source))
			assert.Equal(t, 1, res.Rewrites)
		})
	}
}

func TestRewriteSyntaxError(t *testing.T) {
	t.Parallel()

	r := NewRewriter()

	_, err := r.Rewrite(t.Context(), "broken.kt", []byte("for (e in xs) {\n"))
	require.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), "broken.kt:")
}

func TestRewriteCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewRewriter().Rewrite(ctx, "search.kt", []byte(search))
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithGenerated(true), nil, Options{WithFindFirst(false)}}

	got := opts.LogValue().Group()
	require.Len(t, got, 3)
	assert.Equal(t, "nil", got[1].Key)
}
