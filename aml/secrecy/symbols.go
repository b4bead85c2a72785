// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package secrecy

import "github.com/amlang/amc/aml/ast"

// Labels is the symbol table built by the extraction pass. It maps
// declaration nodes (fields, parameters, method signatures) to their
// declared secrecy label. The checking pass reads it but never writes it.
type Labels map[ast.Node]Label

// Of returns the label recorded for the declaration, or the lattice
// minimum when the declaration carries no annotation.
func (s Labels) Of(decl ast.Node, lattice *Lattice) Label {
	if decl == nil {
		return lattice.Min()
	}
	if label, ok := s[decl]; ok {
		return label
	}
	return lattice.Min()
}
