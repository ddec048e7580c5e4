// Copyright 2024 The tfkernel Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package registry

import (
	"gopkg.in/yaml.v2"

	"github.com/latticeforge/tfkernel/core"
)

// kindDump is one entry of DumpYAML's output: just enough of a KindSpec to
// be useful as a debugging/documentation artifact, never a serialization
// of a program's NExpr.
type kindDump struct {
	Owner  string   `yaml:"owner"`
	Inputs []string `yaml:"inputs,omitempty"`
	Output string   `yaml:"output,omitempty"`
	Shape  string   `yaml:"shape,omitempty"`
}

// DumpYAML marshals the registry's table of kinds, their declared specs and
// owning plugin, for inspection by a human or a test fixture.
func (r *Registry) DumpYAML() ([]byte, error) {
	dump := make(map[string]kindDump, len(r.kinds))
	for kind, spec := range r.kinds {
		inputs := make([]string, len(spec.Inputs))
		for i, t := range spec.Inputs {
			inputs[i] = t.Tag
		}
		shape := "plain"
		switch r.shapes[kind] {
		case core.ShapeTuple:
			shape = "tuple"
		case core.ShapeRecord:
			shape = "record"
		}
		dump[kind] = kindDump{
			Owner:  r.owner[kind],
			Inputs: inputs,
			Output: spec.Output.Tag,
			Shape:  shape,
		}
	}
	return yaml.Marshal(dump)
}
