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

/*
Package gclplugin registers the [loopchain] analyzer as a golangci-lint module plugin.

golangci-lint only loads Go packages. The analyzer therefore runs on every package and
reads the Kotlin scripts (*.kt, *.kts) stored in the package directories itself, so the
plugin requests the cheapest load mode. Suggested fixes refer to the Kotlin files.
Scripts the analyzer cannot parse, such as files with fun or class declarations, are
skipped without a report.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/loopchain
	    import: fillmore-labs.com/loopchain/gclplugin
	    version: v0.0.1

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - loopchain
	  settings:
	    custom:
	      loopchain:
	        type: module
	        description: "loopchain replaces search loops with collection calls."
	        original-url: "https://fillmore-labs.com/loopchain"
	        settings:
	          merge-filter: true
	          make-val: false

The keys of [Settings] are generated, find-first, find-last, merge-filter and make-val.
Generated files are always inspected, golangci-lint excludes their issues itself.

4. Run the linter:

	./golangci-lint run .

[loopchain]: https://github.com/fillmore-labs/loopchain#loopchain
*/
package gclplugin
