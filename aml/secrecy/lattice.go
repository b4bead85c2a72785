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
	"sort"

	"github.com/amlang/amc/aml/ast"
	"github.com/pkg/errors"
)

// Label is a secrecy level drawn from the lattice.
type Label string

// The labels of the default two point lattice.
const (
	Low  Label = "Low"
	High Label = "High"
)

// Lattice is a finite set of secrecy labels with their partial order.
// A lattice is validated on construction and immutable afterwards: every
// pair of labels has a unique join, and there is a unique minimum label.
type Lattice struct {
	labels []Label
	up     map[Label]map[Label]bool
	joins  map[Label]map[Label]Label
	min    Label
}

// DefaultLattice returns the lattice holding Low below High.
func DefaultLattice() *Lattice {
	l, err := newLattice([]Label{Low, High}, [][2]Label{{Low, High}})
	if err != nil {
		panic(err)
	}
	return l
}

// NewLattice builds a lattice from the orderings of a parsed lattice
// declaration. The label set is the set of labels the orderings mention.
// A declaration whose orderings do not form a lattice with a unique
// minimum returns an error.
func NewLattice(decl *ast.LatticeDecl) (*Lattice, error) {
	seen := map[Label]bool{}
	labels := []Label{}
	orders := make([][2]Label, 0, len(decl.Orders))
	for _, o := range decl.Orders {
		lower, higher := Label(o.Lower.Value), Label(o.Higher.Value)
		for _, l := range []Label{lower, higher} {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
		orders = append(orders, [2]Label{lower, higher})
	}
	return newLattice(labels, orders)
}

func newLattice(labels []Label, orders [][2]Label) (*Lattice, error) {
	if len(labels) == 0 {
		return nil, errors.New("lattice declares no labels")
	}
	up := make(map[Label]map[Label]bool, len(labels))
	for _, l := range labels {
		up[l] = map[Label]bool{l: true}
	}
	for _, o := range orders {
		for _, l := range []Label{o[0], o[1]} {
			if up[l] == nil {
				return nil, errors.Errorf("ordering uses undeclared label %s", l)
			}
		}
		up[o[0]][o[1]] = true
	}
	for _, k := range labels {
		for _, i := range labels {
			if !up[i][k] {
				continue
			}
			for _, j := range labels {
				if up[k][j] {
					up[i][j] = true
				}
			}
		}
	}
	for _, a := range labels {
		for _, b := range labels {
			if a != b && up[a][b] && up[b][a] {
				return nil, errors.Errorf("labels %s and %s order each other", a, b)
			}
		}
	}
	min, found := Label(""), false
	for _, l := range labels {
		if len(up[l]) == len(labels) {
			min, found = l, true
			break
		}
	}
	if !found {
		return nil, errors.New("lattice has no minimum label")
	}
	joins := make(map[Label]map[Label]Label, len(labels))
	for _, a := range labels {
		joins[a] = make(map[Label]Label, len(labels))
		for _, b := range labels {
			join, ok := leastUpperBound(labels, up, a, b)
			if !ok {
				return nil, errors.Errorf("labels %s and %s have no unique join", a, b)
			}
			joins[a][b] = join
		}
	}
	sorted := append([]Label{}, labels...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &Lattice{labels: sorted, up: up, joins: joins, min: min}, nil
}

func leastUpperBound(labels []Label, up map[Label]map[Label]bool, a, b Label) (Label, bool) {
	bounds := []Label{}
	for _, c := range labels {
		if up[a][c] && up[b][c] {
			bounds = append(bounds, c)
		}
	}
	for _, c := range bounds {
		least := true
		for _, d := range bounds {
			if !up[c][d] {
				least = false
				break
			}
		}
		if least {
			return c, true
		}
	}
	return "", false
}

// IsValid reports whether the label is one of the declared labels.
func (l *Lattice) IsValid(label Label) bool {
	return l.up[label] != nil
}

// Leq reports whether a is below or equal to b.
func (l *Lattice) Leq(a, b Label) bool {
	return l.up[a][b]
}

// Join returns the least upper bound of the two labels.
// Both labels must be valid for this lattice.
func (l *Lattice) Join(a, b Label) Label {
	join, ok := l.joins[a][b]
	if !ok {
		panic(abortAnalysis)
	}
	return join
}

// Up returns the sorted set of labels at or above the given label.
func (l *Lattice) Up(label Label) []Label {
	out := []Label{}
	for _, c := range l.labels {
		if l.up[label][c] {
			out = append(out, c)
		}
	}
	return out
}

// Min returns the minimum label, the default for unannotated declarations.
func (l *Lattice) Min() Label {
	return l.min
}

// Labels returns the sorted set of declared labels.
func (l *Lattice) Labels() []Label {
	return append([]Label{}, l.labels...)
}
