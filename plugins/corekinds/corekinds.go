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

// Package corekinds provides the structural node kinds that don't belong to
// any domain plugin: property/index access, tuples, records, and the
// lambda-parameter binding site read off the fold trampoline's scope stack.
package corekinds

import "github.com/latticeforge/tfkernel/core"

// Name is this plugin's namespace.
const Name = "core"

// Plugin is corekinds' core.Plugin implementation.
type Plugin struct{}

// New returns the corekinds plugin.
func New() Plugin { return Plugin{} }

func (Plugin) Name() string { return Name }

func (Plugin) Kinds() map[string]core.KindSpec {
	return map[string]core.KindSpec{
		"core/access": {Inputs: nil, Output: core.Type{}},
		"core/tuple":  {Inputs: nil, Output: core.Array(core.Type{})},
		"core/record": {Inputs: nil, Output: core.Record(nil)},
		// core/lambda_param's children are always empty and its output
		// depends entirely on whatever value the enclosing scope bound to
		// it, so no static KindSpec.Output is meaningful beyond "unknown".
		"core/lambda_param": {Inputs: nil, Output: core.Type{}},
	}
}

func (Plugin) Shapes() map[string]core.Shape {
	return map[string]core.Shape{
		"core/tuple":  core.ShapeTuple,
		"core/record": core.ShapeRecord,
	}
}

func (Plugin) Lifts() map[string]string { return nil }

func (Plugin) Traits() []core.TraitImpl { return nil }

// DefaultInterpreter omits core/lambda_param: it's one of core/fold's
// reserved kinds, evaluated directly off the scope stack rather than
// through a registered handler.
func (Plugin) DefaultInterpreter() map[string]core.Handler {
	return map[string]core.Handler{
		"core/access": accessHandler,
		"core/tuple":  tupleHandler,
		"core/record": recordHandler,
	}
}

// Access builds a core/access CExpr reading selector off parent.
func Access(parent *core.CExpr, selector any) *core.CExpr {
	return core.Access(parent, selector)
}

// Tuple builds a core/tuple CExpr over elements, in order.
func Tuple(elements ...*core.CExpr) *core.CExpr {
	args := make([]any, len(elements))
	for i, e := range elements {
		args[i] = e
	}
	return core.MakeCExpr("core/tuple", args, core.Array(core.Type{}))
}

// Record builds a core/record CExpr over fields.
func Record(fields map[string]*core.CExpr) *core.CExpr {
	f := make(map[string]any, len(fields))
	for k, v := range fields {
		f[k] = v
	}
	return core.MakeCExpr("core/record", []any{f}, core.Record(nil))
}

// LambdaParam builds a core/lambda_param binding site named name. Two calls
// with the same name produce the same content-address id, so every read of
// "the same" parameter inside one construction shares a single node — which
// is exactly what lets a binder (e.g. fiber/par_map) address it by id.
func LambdaParam(name string) *core.CExpr {
	return core.MakeCExpr("core/lambda_param", []any{core.Opaque{Value: name}}, core.Type{})
}
