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

// Annotation is a metadata tag on a declaration or type use.
// Typed annotations carry their type name and a value expression.
type Annotation struct {
	Pos
	Name  *Identifier
	Value Node
}

// Annotations is the set of annotations applied to an entity.
type Annotations []*Annotation

// GetAnnotation returns the annotation with the matching name, or nil.
func (a Annotations) GetAnnotation(name string) *Annotation {
	for _, entry := range a {
		if entry.Name.Value == name {
			return entry
		}
	}
	return nil
}
