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

// Package ast holds the syntax tree of an AML model as produced by the
// parser. Nodes are plain structs; semantic passes walk the tree directly.
package ast

import "fmt"

// Pos is the source location of a node, counted from 1.
// It is embedded in every node type.
type Pos struct {
	Line   int
	Column int
}

// Position returns the location of the node in its source unit.
func (p Pos) Position() Pos { return p }

func (Pos) isNode() {}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is the interface implemented by all nodes in the tree.
type Node interface {
	// Position returns the location of the node in its source unit.
	Position() Pos
	isNode()
}

// Identifier holds a parsed identifier.
type Identifier struct {
	Pos
	Value string
}

func (i *Identifier) String() string { return i.Value }

// Model is the root of a parsed program, holding all compilation units and
// the security lattice declaration, if the program carries one.
type Model struct {
	Pos
	Units   []*CompilationUnit
	Lattice *LatticeDecl
}

// CompilationUnit is the tree of a single source file.
type CompilationUnit struct {
	Pos
	Name    string
	Modules []*Module
}

// Module is a named group of interface and class declarations.
type Module struct {
	Pos
	Name       *Identifier
	Interfaces []*InterfaceDecl
	Classes    []*ClassDecl
}
