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

package ast

// InterfaceDecl is the declaration of an interface and its method signatures.
type InterfaceDecl struct {
	Pos
	Name    *Identifier
	Methods []*MethodSig
}

// ClassDecl is the declaration of a class, its fields and method bodies.
type ClassDecl struct {
	Pos
	Name       *Identifier
	Implements []*Identifier
	Fields     []*FieldDecl
	Methods    []*MethodImpl
}

// MethodSig is a method signature, used both in interface declarations and
// as the signature part of a class method implementation.
type MethodSig struct {
	Pos
	Name       *Identifier
	ReturnType *TypeUse
	Params     []*ParamDecl
}

// MethodImpl is a method body in a class declaration.
type MethodImpl struct {
	Pos
	Sig  *MethodSig
	Body *Block
}

// FieldDecl is a class field declaration. Annotations on the field are
// carried by its TypeUse.
type FieldDecl struct {
	Pos
	Type    *TypeUse
	Name    *Identifier
	Default Node
}

// ParamDecl is a formal method parameter.
type ParamDecl struct {
	Pos
	Annotations Annotations
	Type        *TypeUse
	Name        *Identifier
}

// TypeUse is a reference to a type by name, optionally annotated.
type TypeUse struct {
	Pos
	Annotations Annotations
	Name        *Identifier
}

func (t *TypeUse) String() string { return t.Name.Value }

// LatticeDecl declares the security lattice of the program as a list of
// orderings between labels.
type LatticeDecl struct {
	Pos
	Orders []*LatticeOrder
}

// LatticeOrder is a single ordering entry, stating Lower is below Higher.
type LatticeOrder struct {
	Pos
	Lower  *Identifier
	Higher *Identifier
}
