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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/loopchain/internal/parser"
)

// extensions are the file name extensions of checked source files.
var extensions = []string{".kt", ".kts"}

// run executes the loopchain analyzer's pipeline on the source files next to a Go package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// External test packages share the directory
	if strings.HasSuffix(p.Pkg.Name(), "_test") {
		return nil, nil
	}

	ctx := context.Background()
	pipeline := r.pipeline()

	files, err := sourceFiles(p)
	if err != nil {
		return nil, fmt.Errorf("loopchain: %w", err)
	}

	for _, filename := range files {
		src, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("loopchain: %w", err)
		}

		tree, err := parser.Parse(p.Fset, filename, src)
		if err != nil {
			r.logger.LogAttrs(ctx, slog.LevelDebug, "skipping file with syntax errors",
				slog.String("file", filename), slog.Any("error", err))

			continue
		}

		for _, diagnostic := range pipeline.Run(ctx, tree, src) {
			p.Report(diagnostic)
		}
	}

	return nil, nil
}

// sourceFiles returns the checked source files in the directories of the package's Go files.
func sourceFiles(p *analysis.Pass) ([]string, error) {
	var dirs []string

	for _, f := range p.Files {
		if tf := p.Fset.File(f.FileStart); tf != nil {
			if dir := filepath.Dir(tf.Name()); !slices.Contains(dirs, dir) {
				dirs = append(dirs, dir)
			}
		}
	}

	var files []string

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}

		for _, e := range entries {
			if e.Type().IsRegular() && slices.Contains(extensions, filepath.Ext(e.Name())) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	slices.Sort(files)

	return files, nil
}
