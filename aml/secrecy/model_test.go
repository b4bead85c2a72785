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

// Builders for the hand-assembled models the tests analyse, standing in
// for parser output.

func id(line int, value string) *ast.Identifier {
	return &ast.Identifier{Pos: ast.Pos{Line: line}, Value: value}
}

func secrecyAnn(line int, label string) *ast.Annotation {
	return &ast.Annotation{
		Pos:  ast.Pos{Line: line},
		Name: id(line, "Secrecy"),
		Value: &ast.DataConstructor{
			Pos:         ast.Pos{Line: line},
			Constructor: id(line, label),
		},
	}
}

// typeUse builds a type reference, annotated when label is non-empty.
func typeUse(line int, name, label string) *ast.TypeUse {
	t := &ast.TypeUse{Pos: ast.Pos{Line: line}, Name: id(line, name)}
	if label != "" {
		t.Annotations = ast.Annotations{secrecyAnn(line, label)}
	}
	return t
}

func field(line int, typ, name, label string) *ast.FieldDecl {
	return &ast.FieldDecl{
		Pos:  ast.Pos{Line: line},
		Type: typeUse(line, typ, label),
		Name: id(line, name),
	}
}

func param(line int, typ, name, label string) *ast.ParamDecl {
	p := &ast.ParamDecl{
		Pos:  ast.Pos{Line: line},
		Type: typeUse(line, typ, ""),
		Name: id(line, name),
	}
	if label != "" {
		p.Annotations = ast.Annotations{secrecyAnn(line, label)}
	}
	return p
}

func sig(line int, name string, ret *ast.TypeUse, params ...*ast.ParamDecl) *ast.MethodSig {
	return &ast.MethodSig{
		Pos:        ast.Pos{Line: line},
		Name:       id(line, name),
		ReturnType: ret,
		Params:     params,
	}
}

func method(s *ast.MethodSig, statements ...ast.Node) *ast.MethodImpl {
	return &ast.MethodImpl{
		Pos:  s.Pos,
		Sig:  s,
		Body: &ast.Block{Pos: s.Pos, Statements: statements},
	}
}

func use(line int, decl ast.Node, name string) *ast.VarOrFieldUse {
	return &ast.VarOrFieldUse{Pos: ast.Pos{Line: line}, Name: id(line, name), Decl: decl}
}

func num(line int, value string) *ast.Number {
	return &ast.Number{Pos: ast.Pos{Line: line}, Value: value}
}

func assign(line int, target *ast.VarOrFieldUse, value ast.Node) *ast.Assign {
	return &ast.Assign{Pos: ast.Pos{Line: line}, LHS: target, RHS: value}
}

func varDeclStmt(line int, typ, name, label string, value ast.Node) *ast.VarDeclStmt {
	v := &ast.VarDeclStmt{
		Pos:   ast.Pos{Line: line},
		Type:  typeUse(line, typ, ""),
		Name:  id(line, name),
		Value: value,
	}
	if label != "" {
		v.Annotations = ast.Annotations{secrecyAnn(line, label)}
	}
	return v
}

func orderedLattice(pairs ...[2]string) *ast.LatticeDecl {
	decl := &ast.LatticeDecl{Pos: ast.Pos{Line: 1}}
	for _, p := range pairs {
		decl.Orders = append(decl.Orders, &ast.LatticeOrder{
			Pos:    ast.Pos{Line: 1},
			Lower:  id(1, p[0]),
			Higher: id(1, p[1]),
		})
	}
	return decl
}

func lowHighLattice() *ast.LatticeDecl {
	return orderedLattice([2]string{"Low", "High"})
}

// singleClassModel wraps declarations in one unit and module, the shape
// the parser produces for a single-file program.
func singleClassModel(lattice *ast.LatticeDecl, interfaces []*ast.InterfaceDecl, classes ...*ast.ClassDecl) *ast.Model {
	return &ast.Model{
		Lattice: lattice,
		Units: []*ast.CompilationUnit{{
			Name: "main",
			Modules: []*ast.Module{{
				Name:       id(1, "Main"),
				Interfaces: interfaces,
				Classes:    classes,
			}},
		}},
	}
}
