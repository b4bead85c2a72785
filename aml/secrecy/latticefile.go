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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// latticeFile is the on-disk form of a shared lattice definition.
type latticeFile struct {
	Labels []string `yaml:"labels"`
	Order  []struct {
		Below string `yaml:"below"`
		Above string `yaml:"above"`
	} `yaml:"order"`
	Min string `yaml:"min"`
}

// LoadLattice reads a lattice definition from a YAML file. This lets
// deployments share one lattice across many models instead of declaring
// it in every unit.
func LoadLattice(path string) (*Lattice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading lattice definition")
	}
	lattice, err := ParseLattice(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading lattice definition %s", path)
	}
	return lattice, nil
}

// ParseLattice builds a lattice from the YAML form of a definition.
func ParseLattice(data []byte) (*Lattice, error) {
	file := latticeFile{}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parsing lattice definition")
	}
	labels := make([]Label, 0, len(file.Labels))
	for _, l := range file.Labels {
		labels = append(labels, Label(l))
	}
	orders := make([][2]Label, 0, len(file.Order))
	for _, o := range file.Order {
		orders = append(orders, [2]Label{Label(o.Below), Label(o.Above)})
	}
	lattice, err := newLattice(labels, orders)
	if err != nil {
		return nil, err
	}
	if file.Min != "" && Label(file.Min) != lattice.min {
		return nil, errors.Errorf("declared minimum %s does not match derived minimum %s",
			file.Min, lattice.min)
	}
	return lattice, nil
}
