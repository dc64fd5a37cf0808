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

package parser

import "fillmore-labs.com/loopchain/internal/syntax"

// scope maps names to their declarations.
type scope struct {
	outer *scope
	names map[string]syntax.NodeIndex
}

func (p *parser) openScope() {
	p.scope = &scope{outer: p.scope}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (p *parser) declare(name string, n syntax.NodeIndex) {
	if name == "_" {
		return
	}

	if p.scope.names == nil {
		p.scope.names = make(map[string]syntax.NodeIndex)
	}

	p.scope.names[name] = n
}

// resolve returns the innermost declaration of name, or [syntax.InvalidNode].
func (p *parser) resolve(name string) syntax.NodeIndex {
	for s := p.scope; s != nil; s = s.outer {
		if n, ok := s.names[name]; ok {
			return n
		}
	}

	return syntax.InvalidNode
}
