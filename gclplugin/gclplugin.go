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

package gclplugin

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	loopchain "fillmore-labs.com/loopchain/analyzer"
)

func init() { register.Plugin("loopchain", New) }

// New decodes the settings of a .golangci.yaml custom linter entry into a [Plugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return Plugin{settings: settings}, nil
}

// Plugin builds the loopchain analyzer for golangci-lint.
type Plugin struct {
	settings Settings
}

// GetLoadMode implements [register.LinterPlugin]. The analyzer parses Kotlin files itself
// and needs no Go type information, only the file set to locate package directories.
func (Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers implements [register.LinterPlugin]. Generated Kotlin files are inspected
// as well, golangci-lint applies its own exclusion rules to reported issues.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	opts := append(p.settings.Options(), loopchain.WithGenerated(true))

	return []*analysis.Analyzer{loopchain.New(opts...)}, nil
}
