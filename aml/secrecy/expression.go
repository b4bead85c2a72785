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

// expression returns the secrecy level of an expression. Every form
// joins with the current PC level, so the result is never below the PC.
func expression(c *checker, in ast.Node) Label {
	switch in := in.(type) {
	case *ast.BinaryOp:
		return c.joinPC(c.lattice.Join(expression(c, in.LHS), expression(c, in.RHS)))
	case *ast.UnaryOp:
		return c.joinPC(expression(c, in.Expression))
	case *ast.VarOrFieldUse:
		return c.joinPC(c.levelOf(in.Decl))
	case *ast.FnApp:
		level := c.lattice.Min()
		for _, a := range in.Arguments {
			level = c.lattice.Join(level, expression(c, a))
		}
		return c.joinPC(level)
	case *ast.AsyncCall:
		return call(c, in, in.Method, in.Arguments)
	case *ast.SyncCall:
		return call(c, in, in.Method, in.Arguments)
	case *ast.GetExpr:
		if use, ok := in.Future.(*ast.VarOrFieldUse); ok {
			c.pc.release(use.Name.Value)
		}
		return c.joinPC(c.lattice.Min())
	default:
		return c.joinPC(c.lattice.Min())
	}
}

// call checks each argument against the declared parameter label and
// returns the level of the call result. Async and sync calls follow the
// same rule.
func call(c *checker, at ast.Node, sig *ast.MethodSig, args []ast.Node) Label {
	if sig == nil {
		for _, arg := range args {
			expression(c, arg)
		}
		return c.joinPC(c.lattice.Min())
	}
	for i, arg := range args {
		supplied := expression(c, arg)
		if i >= len(sig.Params) {
			continue
		}
		declared := c.labels.Of(sig.Params[i], c.lattice)
		if !c.lattice.Leq(supplied, declared) {
			c.issues.parameterTooHigh(at, supplied, declared)
		}
	}
	return c.joinPC(c.labels.Of(sig, c.lattice))
}
