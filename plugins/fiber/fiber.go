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

// Package fiber provides the two concurrency-flavored kinds that ship with
// only a sequential default: fiber/timeout and fiber/par_map. Both are
// ordinary registered handlers, not reserved forms — fiber/par_map is the
// one handler in this module that pushes bindings onto core/lambda_param's
// scope stack, via StepYieldScoped, but it never needs to inspect a child's
// failure or reach shared mutable state, so the plain Handler/Coroutine
// contract is enough.
package fiber

import "github.com/latticeforge/tfkernel/core"

// Name is this plugin's namespace.
const Name = "fiber"

// Plugin is fiber's core.Plugin implementation.
type Plugin struct{}

// New returns the fiber plugin.
func New() Plugin { return Plugin{} }

func (Plugin) Name() string { return Name }

func (Plugin) Kinds() map[string]core.KindSpec {
	unknown := core.Type{}
	return map[string]core.KindSpec{
		"fiber/timeout": {Inputs: []core.Type{unknown}, Output: unknown},
		// fiber/par_map's children are [collection, param, body]: the
		// lambda-parameter binding site isn't itself a value-producing
		// operand in the usual sense, so its declared Inputs still spans
		// all three positions to pin the arity, but only positions 0 and 2
		// carry a type-checkable Output.
		"fiber/par_map": {Inputs: []core.Type{core.Array(unknown), unknown, unknown}, Output: core.Array(unknown)},
	}
}

func (Plugin) Shapes() map[string]core.Shape { return nil }

func (Plugin) Lifts() map[string]string { return nil }

func (Plugin) Traits() []core.TraitImpl { return nil }

func (Plugin) DefaultInterpreter() map[string]core.Handler {
	return map[string]core.Handler{
		"fiber/timeout": timeoutHandler,
		"fiber/par_map": parMapHandler,
	}
}

// Timeout builds a fiber/timeout CExpr: evaluates body and returns its
// value, subject to deadline in a handler that actually bounds evaluation
// time. The default handler registered here ignores deadline entirely and
// evaluates body straight through, exactly as sequential as any other node
// — a concurrency/timeout-aware handler is an embedder's override.
func Timeout(deadlineMillis int, body *core.CExpr) *core.CExpr {
	return core.MakeCExpr("fiber/timeout", []any{core.Opaque{Value: deadlineMillis}, body}, core.Type{})
}

// ParMap builds a fiber/par_map CExpr: for each element of collection, binds
// param to it and evaluates body, collecting the results in order. The
// default handler registered here evaluates elements sequentially, one at a
// time — real concurrency is an embedder's override of this one handler.
func ParMap(collection *core.CExpr, param *core.CExpr, body *core.CExpr) *core.CExpr {
	return core.MakeCExpr("fiber/par_map", []any{collection, param, body}, core.Array(core.Type{}))
}
