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
	"fmt"

	"github.com/amlang/amc/aml/ast"
)

// Kind classifies a secrecy diagnostic.
type Kind int

const (
	// WrongAnnotationValue reports an annotation label missing from the lattice.
	WrongAnnotationValue Kind = iota
	// LeakageFromTo reports a flow from a source into a lower sink.
	LeakageFromTo
	// LeakageAtMost reports an override raising a level above its declaration.
	LeakageAtMost
	// ParameterTooHigh reports a call argument above the declared parameter level.
	ParameterTooHigh
)

func (k Kind) String() string {
	switch k {
	case WrongAnnotationValue:
		return "WrongAnnotationValue"
	case LeakageFromTo:
		return "LeakageFromTo"
	case LeakageAtMost:
		return "LeakageAtMost"
	case ParameterTooHigh:
		return "ParameterTooHigh"
	default:
		return "Unknown"
	}
}

// Issue is a single diagnostic found by the analysis.
type Issue struct {
	At      ast.Pos
	Kind    Kind
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%s", i.At.Line, i.Message)
}

// Issues is an ordered list of diagnostics. It is append-only during
// analysis and sorted by position before being returned.
type Issues []Issue

func (l Issues) Len() int      { return len(l) }
func (l Issues) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l Issues) Less(i, j int) bool {
	a, b := l[i], l[j]
	if a.At.Line != b.At.Line {
		return a.At.Line < b.At.Line
	}
	if a.At.Column != b.At.Column {
		return a.At.Column < b.At.Column
	}
	return a.Kind < b.Kind
}

// Error summarises the list as a single string.
func (l Issues) Error() string {
	switch len(l) {
	case 0:
		return "no issues"
	case 1:
		return l[0].String()
	default:
		return fmt.Sprintf("%v (and %d more issues)", l[0], len(l)-1)
	}
}

func (l *Issues) add(at ast.Node, kind Kind, msg string, args ...interface{}) {
	*l = append(*l, Issue{At: at.Position(), Kind: kind, Message: fmt.Sprintf(msg, args...)})
}

func (l *Issues) wrongAnnotationValue(at ast.Node, label Label) {
	l.add(at, WrongAnnotationValue, "wrong annotation value %s", label)
}

func (l *Issues) leakageFromTo(at ast.Node, from, to Label) {
	l.add(at, LeakageFromTo, "leakage of level %s into sink of level %s", from, to)
}

func (l *Issues) leakageAtMost(at ast.Node, declared, actual Label) {
	l.add(at, LeakageAtMost, "level must be at most %s but was %s", declared, actual)
}

func (l *Issues) parameterTooHigh(at ast.Node, supplied, declared Label) {
	l.add(at, ParameterTooHigh, "argument of level %s passed to parameter of level %s", supplied, declared)
}
