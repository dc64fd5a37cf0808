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

// Loopchain rewrites search loops in Kotlin sources into collection call chains.
//
// Usage:
//
//	loopchain [flags] [path ...]
//
// Paths may be files or directories, directories are searched recursively for *.kt and *.kts files.
// Without -w or -d, loopchain prints one line per rewritable loop.
//
// Sources are statement-level scripts: properties, loops, conditionals, assignments and
// expressions. Declarations (package, import, fun, class) and while or when statements are
// not supported, files containing them are reported as syntax errors and left unchanged.
package main

import (
	"context"
	"fmt"
	"os"
)

var version = "v0.0.1"

func main() {
	cmd := newCommand(os.Stdout, os.Stderr)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
