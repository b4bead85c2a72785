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

// Package secrecy implements the static information-flow analysis run
// over parsed AML models. It extracts secrecy labels from annotations,
// then walks every method body tracking the program counter level across
// conditionals, loops and asynchronous synchronisation points, reporting
// any flow from a higher label into a lower sink.
package secrecy

import (
	"context"
	"sort"

	"github.com/amlang/amc/aml/ast"
	"github.com/amlang/amc/core/fault"
	"github.com/amlang/amc/core/log"
	"github.com/google/uuid"
)

const abortAnalysis = fault.Const("secrecy analysis aborted")

// checker is the context shared by the statement walker and the
// expression evaluator for the analysis of one method body.
type checker struct {
	ctx     context.Context
	lattice *Lattice
	labels  Labels
	locals  map[ast.Node]Label
	pc      pcStack
	issues  *Issues
	method  *ast.MethodImpl
}

// Check runs the secrecy analysis over the model. When the model carries
// no lattice declaration the analysis is disabled and returns no issues.
// A malformed lattice declaration is returned as an error and no method
// is analysed.
func Check(ctx context.Context, model *ast.Model) (Issues, error) {
	if model.Lattice == nil {
		log.D(ctx, "secrecy: no lattice declared, analysis disabled")
		return nil, nil
	}
	lattice, err := NewLattice(model.Lattice)
	if err != nil {
		return nil, err
	}
	return CheckWithLattice(ctx, model, lattice)
}

// CheckWithLattice runs the analysis against an externally supplied
// lattice, such as one loaded from a shared definition file.
func CheckWithLattice(ctx context.Context, model *ast.Model, lattice *Lattice) (issues Issues, err error) {
	defer func() {
		switch r := recover(); r {
		case nil:
		case abortAnalysis:
			issues, err = nil, abortAnalysis
		default:
			panic(r)
		}
	}()
	e := &extraction{ctx: ctx, lattice: lattice, labels: Labels{}, issues: &issues}
	e.model(model)
	for _, unit := range model.Units {
		for _, module := range unit.Modules {
			for _, class := range module.Classes {
				for _, m := range class.Methods {
					log.D(ctx, "secrecy: checking %v.%v", class.Name, m.Sig.Name)
					c := &checker{
						ctx:     ctx,
						lattice: lattice,
						labels:  e.labels,
						locals:  map[ast.Node]Label{},
						issues:  &issues,
						method:  m,
					}
					block(c, m.Body)
				}
			}
		}
	}
	sort.Sort(issues)
	return issues, nil
}

func block(c *checker, b *ast.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		statement(c, s)
	}
}

func statement(c *checker, in ast.Node) {
	switch in := in.(type) {
	case *ast.VarDeclStmt:
		varDecl(c, in)
	case *ast.Assign:
		from := expression(c, in.RHS)
		to := c.levelOf(in.LHS.Decl)
		if !c.lattice.Leq(from, to) {
			c.issues.leakageFromTo(in, from, to)
		}
	case *ast.Return:
		from := c.joinPC(c.lattice.Min())
		if in.Value != nil {
			from = expression(c, in.Value)
		}
		to := c.labels.Of(c.method.Sig, c.lattice)
		if !c.lattice.Leq(from, to) {
			c.issues.leakageFromTo(in, from, to)
		}
	case *ast.Branch:
		guard := expression(c, in.Condition)
		c.withFrame(uuid.NewString(), guard, func() { block(c, in.True) })
		if in.False != nil {
			c.withFrame(uuid.NewString(), guard, func() { block(c, in.False) })
		}
	case *ast.While:
		guard := expression(c, in.Condition)
		c.withFrame(uuid.NewString(), guard, func() { block(c, in.Body) })
	case *ast.AwaitStmt:
		await(c, in)
	case *ast.ExprStmt:
		expression(c, in.Expression)
	case *ast.Block:
		block(c, in)
	}
}

// varDecl records the declared label of a local variable when present,
// checking the initialiser against it. An unannotated declaration with
// an initialiser records the initialiser's level so later uses of the
// variable carry it.
func varDecl(c *checker, in *ast.VarDeclStmt) {
	declared, annotated := secrecyLabel(c.lattice, in.Annotations, c.issues)
	if annotated {
		c.locals[in] = declared
	}
	if in.Value == nil {
		return
	}
	from := expression(c, in.Value)
	if annotated {
		if !c.lattice.Leq(from, declared) {
			c.issues.leakageFromTo(in, from, declared)
		}
		return
	}
	c.locals[in] = from
}

// await pushes a persistent PC frame at the level of the awaited
// expression. The frame stays until a get on the same future variable,
// or until the method analysis ends.
func await(c *checker, in *ast.AwaitStmt) {
	level := expression(c, in.Future)
	origin := uuid.NewString()
	if use, ok := in.Future.(*ast.VarOrFieldUse); ok {
		origin = use.Name.Value
	}
	log.D(c.ctx, "secrecy: await on %s at level %s", origin, level)
	c.pc.push(origin, level)
}

// withFrame runs body with an extra PC frame pushed, restoring the stack
// even when body exits early. The frame is removed by origin so that
// await frames pushed inside the body stay behind.
func (c *checker) withFrame(origin string, level Label, body func()) {
	c.pc.push(origin, level)
	defer c.pc.popOrigin(origin)
	body()
}

func (c *checker) joinPC(level Label) Label {
	return c.lattice.Join(level, c.pc.eval(c.lattice))
}

// levelOf returns the level of a use of the given declaration, reading
// method-local declarations before the extracted symbol table.
func (c *checker) levelOf(decl ast.Node) Label {
	if decl == nil {
		return c.lattice.Min()
	}
	if label, ok := c.locals[decl]; ok {
		return label
	}
	return c.labels.Of(decl, c.lattice)
}
