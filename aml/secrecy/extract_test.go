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

import (
	"testing"

	"github.com/amlang/amc/aml/ast"
	"github.com/amlang/amc/core/assert"
	"github.com/amlang/amc/core/log"
)

func runExtraction(t *testing.T, m *ast.Model) (Labels, Issues) {
	issues := Issues{}
	e := &extraction{
		ctx:     log.Testing(t),
		lattice: DefaultLattice(),
		labels:  Labels{},
		issues:  &issues,
	}
	e.model(m)
	return e.labels, issues
}

func TestExtractDeclarationLabels(t *testing.T) {
	ctx := log.Testing(t)
	hField := field(2, "Int", "secret", "High")
	plain := field(3, "Int", "counter", "")
	p := param(4, "Int", "amount", "Low")
	s := sig(4, "deposit", typeUse(4, "Unit", "High"), p)
	m := singleClassModel(lowHighLattice(), nil, &ast.ClassDecl{
		Pos:     ast.Pos{Line: 1},
		Name:    id(1, "Account"),
		Fields:  []*ast.FieldDecl{hField, plain},
		Methods: []*ast.MethodImpl{method(s)},
	})

	labels, issues := runExtraction(t, m)
	assert.For(ctx, "issues").That(len(issues)).Equals(0)
	assert.For(ctx, "field label").That(labels.Of(hField, DefaultLattice())).Equals(High)
	assert.For(ctx, "unlabelled field").That(labels.Of(plain, DefaultLattice())).Equals(Low)
	assert.For(ctx, "param label").That(labels.Of(p, DefaultLattice())).Equals(Low)
	assert.For(ctx, "return label").That(labels.Of(s, DefaultLattice())).Equals(High)
}

func TestExtractWrongAnnotationValue(t *testing.T) {
	ctx := log.Testing(t)
	bad := field(3, "Int", "pin", "Medium")
	m := singleClassModel(lowHighLattice(), nil, &ast.ClassDecl{
		Pos:    ast.Pos{Line: 1},
		Name:   id(1, "Account"),
		Fields: []*ast.FieldDecl{bad},
	})

	labels, issues := runExtraction(t, m)
	assert.For(ctx, "issue count").That(len(issues)).Equals(1)
	assert.For(ctx, "kind").That(issues[0].Kind).Equals(WrongAnnotationValue)
	assert.For(ctx, "line").That(issues[0].At.Line).Equals(3)
	_, stored := labels[bad]
	assert.For(ctx, "label stored").ThatBoolean(stored).IsFalse()
}

func TestOverrideReturnTooHigh(t *testing.T) {
	ctx := log.Testing(t)
	iface := &ast.InterfaceDecl{
		Pos:     ast.Pos{Line: 1},
		Name:    id(1, "Reader"),
		Methods: []*ast.MethodSig{sig(2, "read", typeUse(2, "Int", "Low"))},
	}
	impl := sig(6, "read", typeUse(6, "Int", "High"))
	class := &ast.ClassDecl{
		Pos:        ast.Pos{Line: 5},
		Name:       id(5, "FileReader"),
		Implements: []*ast.Identifier{id(5, "Reader")},
		Methods:    []*ast.MethodImpl{method(impl)},
	}

	_, issues := runExtraction(t, singleClassModel(lowHighLattice(), []*ast.InterfaceDecl{iface}, class))
	assert.For(ctx, "issue count").That(len(issues)).Equals(1)
	assert.For(ctx, "kind").That(issues[0].Kind).Equals(LeakageAtMost)
	assert.For(ctx, "anchored at return type").That(issues[0].At.Line).Equals(6)
	assert.For(ctx, "message").ThatString(issues[0].Message).Equals("level must be at most Low but was High")
}

func TestOverrideParameterTooHigh(t *testing.T) {
	ctx := log.Testing(t)
	iface := &ast.InterfaceDecl{
		Pos:  ast.Pos{Line: 1},
		Name: id(1, "Writer"),
		Methods: []*ast.MethodSig{
			sig(2, "write", typeUse(2, "Unit", ""), param(2, "Int", "value", "Low")),
		},
	}
	impl := sig(6, "write", typeUse(6, "Unit", ""), param(6, "Int", "value", "High"))
	class := &ast.ClassDecl{
		Pos:        ast.Pos{Line: 5},
		Name:       id(5, "LogWriter"),
		Implements: []*ast.Identifier{id(5, "Writer")},
		Methods:    []*ast.MethodImpl{method(impl)},
	}

	_, issues := runExtraction(t, singleClassModel(lowHighLattice(), []*ast.InterfaceDecl{iface}, class))
	assert.For(ctx, "issue count").That(len(issues)).Equals(1)
	assert.For(ctx, "kind").That(issues[0].Kind).Equals(LeakageAtMost)
	assert.For(ctx, "anchored at return type").That(issues[0].At.Line).Equals(6)
}

func TestOverrideRenamedParameterFailsMatch(t *testing.T) {
	ctx := log.Testing(t)
	iface := &ast.InterfaceDecl{
		Pos:  ast.Pos{Line: 1},
		Name: id(1, "Writer"),
		Methods: []*ast.MethodSig{
			sig(2, "write", typeUse(2, "Unit", ""), param(2, "Int", "value", "Low")),
		},
	}
	impl := sig(6, "write", typeUse(6, "Unit", ""), param(6, "Int", "renamed", "High"))
	class := &ast.ClassDecl{
		Pos:        ast.Pos{Line: 5},
		Name:       id(5, "LogWriter"),
		Implements: []*ast.Identifier{id(5, "Writer")},
		Methods:    []*ast.MethodImpl{method(impl)},
	}

	_, issues := runExtraction(t, singleClassModel(lowHighLattice(), []*ast.InterfaceDecl{iface}, class))
	assert.For(ctx, "no match means no issues").That(len(issues)).Equals(0)
}

func TestOverrideReorderedParametersMatch(t *testing.T) {
	ctx := log.Testing(t)
	iface := &ast.InterfaceDecl{
		Pos:  ast.Pos{Line: 1},
		Name: id(1, "Mixer"),
		Methods: []*ast.MethodSig{
			sig(2, "mix", typeUse(2, "Unit", ""),
				param(2, "Int", "a", "Low"),
				param(2, "Bool", "b", "")),
		},
	}
	impl := sig(6, "mix", typeUse(6, "Unit", ""),
		param(6, "Bool", "b", ""),
		param(6, "Int", "a", "High"))
	class := &ast.ClassDecl{
		Pos:        ast.Pos{Line: 5},
		Name:       id(5, "AudioMixer"),
		Implements: []*ast.Identifier{id(5, "Mixer")},
		Methods:    []*ast.MethodImpl{method(impl)},
	}

	_, issues := runExtraction(t, singleClassModel(lowHighLattice(), []*ast.InterfaceDecl{iface}, class))
	assert.For(ctx, "issue count").That(len(issues)).Equals(1)
	assert.For(ctx, "kind").That(issues[0].Kind).Equals(LeakageAtMost)
}

func TestOverrideUnlabelledInterfaceSkipped(t *testing.T) {
	ctx := log.Testing(t)
	iface := &ast.InterfaceDecl{
		Pos:     ast.Pos{Line: 1},
		Name:    id(1, "Reader"),
		Methods: []*ast.MethodSig{sig(2, "read", typeUse(2, "Int", ""))},
	}
	impl := sig(6, "read", typeUse(6, "Int", "High"))
	class := &ast.ClassDecl{
		Pos:        ast.Pos{Line: 5},
		Name:       id(5, "FileReader"),
		Implements: []*ast.Identifier{id(5, "Reader")},
		Methods:    []*ast.MethodImpl{method(impl)},
	}

	_, issues := runExtraction(t, singleClassModel(lowHighLattice(), []*ast.InterfaceDecl{iface}, class))
	assert.For(ctx, "unlabelled interface places no bound").That(len(issues)).Equals(0)
}
