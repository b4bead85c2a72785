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
	"context"

	"github.com/amlang/amc/aml/ast"
	"github.com/amlang/amc/core/log"
)

// secrecyAnnotation is the name of the typed annotation carrying a label.
const secrecyAnnotation = "Secrecy"

// extraction is the first pass over the model. It reads the secrecy
// annotations of declarations into the symbol table and checks override
// compatibility between classes and the interfaces they implement.
type extraction struct {
	ctx     context.Context
	lattice *Lattice
	labels  Labels
	issues  *Issues
}

func (e *extraction) model(m *ast.Model) {
	interfaces := map[string]*ast.InterfaceDecl{}
	for _, unit := range m.Units {
		for _, module := range unit.Modules {
			for _, i := range module.Interfaces {
				interfaces[i.Name.Value] = i
				e.interfaceDecl(i)
			}
		}
	}
	for _, unit := range m.Units {
		for _, module := range unit.Modules {
			for _, c := range module.Classes {
				e.classDecl(c, interfaces)
			}
		}
	}
}

func (e *extraction) interfaceDecl(i *ast.InterfaceDecl) {
	log.D(e.ctx, "secrecy: extracting interface %v", i.Name)
	for _, sig := range i.Methods {
		e.signature(sig)
	}
}

func (e *extraction) classDecl(c *ast.ClassDecl, interfaces map[string]*ast.InterfaceDecl) {
	log.D(e.ctx, "secrecy: extracting class %v", c.Name)
	for _, f := range c.Fields {
		if label, ok := secrecyLabel(e.lattice, f.Type.Annotations, e.issues); ok {
			e.labels[f] = label
		}
	}
	for _, m := range c.Methods {
		e.signature(m.Sig)
	}
	for _, name := range c.Implements {
		iface := interfaces[name.Value]
		if iface == nil {
			continue
		}
		for _, m := range c.Methods {
			for _, declared := range iface.Methods {
				if !e.harvested(declared) || !signaturesMatch(m.Sig, declared) {
					continue
				}
				e.override(m.Sig, declared)
			}
		}
	}
}

// signature records the return and parameter labels of a method signature.
func (e *extraction) signature(sig *ast.MethodSig) {
	if label, ok := secrecyLabel(e.lattice, sig.ReturnType.Annotations, e.issues); ok {
		e.labels[sig] = label
	}
	for _, p := range sig.Params {
		if label, ok := secrecyLabel(e.lattice, p.Annotations, e.issues); ok {
			e.labels[p] = label
		}
	}
}

// harvested reports whether the interface signature carries any recorded
// label. Unlabelled interface methods place no bound on implementations.
func (e *extraction) harvested(sig *ast.MethodSig) bool {
	if _, ok := e.labels[sig]; ok {
		return true
	}
	for _, p := range sig.Params {
		if _, ok := e.labels[p]; ok {
			return true
		}
	}
	return false
}

// override checks that the implementation's labels do not exceed the
// labels declared by the interface. Violations are anchored at the
// implementation's return type.
func (e *extraction) override(impl, declared *ast.MethodSig) {
	di := e.labels.Of(declared, e.lattice)
	ci := e.labels.Of(impl, e.lattice)
	if !e.lattice.Leq(ci, di) {
		e.issues.leakageAtMost(impl.ReturnType, di, ci)
	}
	byName := make(map[string]*ast.ParamDecl, len(declared.Params))
	for _, p := range declared.Params {
		byName[p.Name.Value] = p
	}
	for _, p := range impl.Params {
		dp := byName[p.Name.Value]
		if dp == nil {
			continue
		}
		dl := e.labels.Of(dp, e.lattice)
		cl := e.labels.Of(p, e.lattice)
		if !e.lattice.Leq(cl, dl) {
			e.issues.leakageAtMost(impl.ReturnType, dl, cl)
		}
	}
}

// secrecyLabel reads the label of a Secrecy annotation, if one applies.
// The annotation must be typed with the Secrecy name and carry a data
// constructor value whose constructor name is the label; anything else
// is ignored. A label missing from the lattice is reported and not
// stored.
func secrecyLabel(lattice *Lattice, annotations ast.Annotations, issues *Issues) (Label, bool) {
	a := annotations.GetAnnotation(secrecyAnnotation)
	if a == nil {
		return "", false
	}
	value, ok := a.Value.(*ast.DataConstructor)
	if !ok {
		return "", false
	}
	label := Label(value.Constructor.Value)
	if !lattice.IsValid(label) {
		issues.wrongAnnotationValue(a, label)
		return "", false
	}
	return label, true
}

// signaturesMatch reports whether the two signatures agree on name,
// return type, arity and the multiset of parameter name and type pairs.
func signaturesMatch(a, b *ast.MethodSig) bool {
	if a.Name.Value != b.Name.Value {
		return false
	}
	if a.ReturnType.String() != b.ReturnType.String() {
		return false
	}
	if len(a.Params) != len(b.Params) {
		return false
	}
	counts := make(map[[2]string]int, len(a.Params))
	for _, p := range a.Params {
		counts[[2]string{p.Name.Value, p.Type.String()}]++
	}
	for _, p := range b.Params {
		key := [2]string{p.Name.Value, p.Type.String()}
		counts[key]--
		if counts[key] < 0 {
			return false
		}
	}
	return true
}
