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

	"github.com/amlang/amc/core/assert"
	"github.com/amlang/amc/core/log"
)

func TestParseLattice(t *testing.T) {
	ctx := log.Testing(t)
	l, err := ParseLattice([]byte(`
labels: [Public, Internal, Secret]
order:
  - {below: Public, above: Internal}
  - {below: Internal, above: Secret}
min: Public
`))
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "min").That(l.Min()).Equals(Label("Public"))
	assert.For(ctx, "leq").ThatBoolean(l.Leq("Public", "Secret")).IsTrue()
}

func TestParseLatticeErrors(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name string
		data string
	}{
		{"not yaml", "{{{{"},
		{"no labels", "labels: []"},
		{"undeclared order label", `
labels: [Low]
order:
  - {below: Low, above: High}
`},
		{"wrong minimum", `
labels: [Low, High]
order:
  - {below: Low, above: High}
min: High
`},
	} {
		ctx := log.SubTest(ctx, t)
		_, err := ParseLattice([]byte(test.data))
		assert.For(ctx, "%s err", test.name).ThatError(err).Failed()
	}
}

func TestLoadLattice(t *testing.T) {
	ctx := log.Testing(t)
	l, err := LoadLattice("testdata/lattice.yaml")
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "min").That(l.Min()).Equals(Label("Public"))
	assert.For(ctx, "labels").That(l.Labels()).DeepEquals([]Label{"Internal", "Public", "Secret"})
}

func TestLoadLatticeMissingFile(t *testing.T) {
	ctx := log.Testing(t)
	_, err := LoadLattice("testdata/does_not_exist.yaml")
	assert.For(ctx, "err").ThatError(err).Failed()
}
