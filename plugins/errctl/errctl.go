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

// Package errctl provides the error-handling control kinds: error/try,
// error/attempt, error/guard and error/settle. Like plugins/state, this
// package only declares the kinds (for the registry's arity/shape checks)
// and their ctors; evaluation lives in core/fold as a reserved form, because
// only the trampoline can observe whether evaluating a child failed and
// decide what to do next.
package errctl

import "github.com/latticeforge/tfkernel/core"

// Name is this plugin's namespace.
const Name = "error"

// Plugin is errctl's core.Plugin implementation.
type Plugin struct{}

// New returns the errctl plugin.
func New() Plugin { return Plugin{} }

func (Plugin) Name() string { return Name }

func (Plugin) Kinds() map[string]core.KindSpec {
	unknown := core.Type{}
	return map[string]core.KindSpec{
		"error/try":     {Inputs: []core.Type{unknown, unknown}, Output: unknown},
		"error/attempt": {Inputs: []core.Type{unknown}, Output: core.Record(nil)},
		"error/guard":   {Inputs: []core.Type{core.Prim("boolean"), unknown}, Output: unknown},
		// error/settle takes a variable number of children (one per awaited
		// branch), so it declares no fixed Inputs; buildChildren falls back
		// to accepting whatever operands the ctor supplies.
		"error/settle": {Inputs: nil, Output: core.Record(nil)},
	}
}

func (Plugin) Shapes() map[string]core.Shape {
	return map[string]core.Shape{
		"error/settle": core.ShapeTuple,
	}
}

func (Plugin) Lifts() map[string]string { return nil }

func (Plugin) Traits() []core.TraitImpl { return nil }

// DefaultInterpreter is empty: all four kinds are reserved, evaluated
// directly by core/fold.
func (Plugin) DefaultInterpreter() map[string]core.Handler { return nil }

// Try builds an error/try CExpr: evaluates attempt, falling back to
// fallback if attempt's evaluation raises an error.
func Try(attempt, fallback *core.CExpr) *core.CExpr {
	return core.MakeCExpr("error/try", []any{attempt, fallback}, core.Type{})
}

// Attempt builds an error/attempt CExpr: evaluates body and returns a
// record tagging the outcome, {"ok": bool, "value"/"err": ...}, rather than
// propagating a failure to its own caller.
func Attempt(body *core.CExpr) *core.CExpr {
	return core.MakeCExpr("error/attempt", []any{body}, core.Record(nil))
}

// Guard builds an error/guard CExpr: evaluates cond, raising a guard
// failure unless it is boolean true, then evaluates and returns body.
func Guard(cond, body *core.CExpr) *core.CExpr {
	return core.MakeCExpr("error/guard", []any{cond, body}, core.Type{})
}

// Settle builds an error/settle CExpr: evaluates every branch independently
// and returns {"fulfilled": [...], "rejected": [...]}, never failing itself
// regardless of how many branches do.
func Settle(branches ...*core.CExpr) *core.CExpr {
	args := make([]any, len(branches))
	for i, b := range branches {
		args[i] = b
	}
	return core.MakeCExpr("error/settle", args, core.Record(nil))
}
