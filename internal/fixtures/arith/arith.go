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

// Package arith is a fixture plugin: just enough of a numeric/string/boolean
// vocabulary to exercise core/registry, core/elaborate, core/fold and
// core/dispatch end to end — a minimal stand-in type family that exists only
// so the machinery around it has something concrete to drive. Nothing under
// core/ or plugins/ imports this package; only tests do.
package arith

import "github.com/latticeforge/tfkernel/core"

// Name is this fixture plugin's namespace.
const Name = "arith"

// Plugin is arith's core.Plugin implementation.
type Plugin struct{}

// New returns the arith fixture plugin.
func New() Plugin { return Plugin{} }

func (Plugin) Name() string { return Name }

func (Plugin) Kinds() map[string]core.KindSpec {
	number := core.Prim("number")
	boolean := core.Prim("boolean")
	str := core.Prim("string")
	return map[string]core.KindSpec{
		"num/literal":  {Inputs: nil, Output: number},
		"str/literal":  {Inputs: nil, Output: str},
		"bool/literal": {Inputs: nil, Output: boolean},
		"num/add":      {Inputs: []core.Type{number, number}, Output: number},
		"num/sub":      {Inputs: []core.Type{number, number}, Output: number},
		"num/mul":      {Inputs: []core.Type{number, number}, Output: number},
		"num/eq":       {Inputs: []core.Type{number, number}, Output: boolean},
		"arith/fail":   {Inputs: nil, Output: core.Type{}},
	}
}

func (Plugin) Shapes() map[string]core.Shape { return nil }

// Lifts routes raw numeric/string/boolean literals encountered as bare
// operands (not built through Num/Str/Bool) to the matching literal kind, so
// e.g. Add(Num(1), 2) and Add(Num(1), Num(2)) elaborate to the same shape.
// The lifted literal keeps the raw Go value as its payload (int 2, not
// float64 2), so it does not share a node with Num(2).
func (Plugin) Lifts() map[string]string {
	return map[string]string{
		"number":  "num/literal",
		"string":  "str/literal",
		"boolean": "bool/literal",
	}
}

// Traits declares "number" as an eq and semiring implementor, so
// core/dispatch can resolve generic eq/add/mul calls to the concrete
// num/eq, num/add, num/mul kinds.
func (Plugin) Traits() []core.TraitImpl {
	return []core.TraitImpl{
		{Trait: "eq", Type: "number", NodeKinds: map[string]string{"eq": "num/eq"}},
		{Trait: "semiring", Type: "number", NodeKinds: map[string]string{"add": "num/add", "mul": "num/mul"}},
	}
}

func (Plugin) DefaultInterpreter() map[string]core.Handler {
	return map[string]core.Handler{
		"num/literal":  literalHandler,
		"str/literal":  literalHandler,
		"bool/literal": literalHandler,
		"num/add":      binaryHandler(func(a, b float64) any { return a + b }),
		"num/sub":      binaryHandler(func(a, b float64) any { return a - b }),
		"num/mul":      binaryHandler(func(a, b float64) any { return a * b }),
		"num/eq":       binaryHandler(func(a, b float64) any { return a == b }),
		"arith/fail":   failHandler,
	}
}

// Num builds a num/literal CExpr holding v.
func Num(v float64) *core.CExpr {
	return core.MakeCExpr("num/literal", []any{core.Opaque{Value: v}}, core.Prim("number"))
}

// Str builds a str/literal CExpr holding v.
func Str(v string) *core.CExpr {
	return core.MakeCExpr("str/literal", []any{core.Opaque{Value: v}}, core.Prim("string"))
}

// Bool builds a bool/literal CExpr holding v.
func Bool(v bool) *core.CExpr {
	return core.MakeCExpr("bool/literal", []any{core.Opaque{Value: v}}, core.Prim("boolean"))
}

// Fail builds an arith/fail CExpr: evaluating it always raises an error
// whose message is msg, for exercising error/try and friends.
func Fail(msg string) *core.CExpr {
	return core.MakeCExpr("arith/fail", []any{core.Opaque{Value: msg}}, core.Type{})
}

// Add, Sub, Mul and Eq build the corresponding binary CExpr. Either operand
// may be a raw Go value instead of a *core.CExpr; app() lifts it through
// Lifts() at elaboration time.
func Add(a, b any) *core.CExpr { return binary("num/add", a, b, core.Prim("number")) }
func Sub(a, b any) *core.CExpr { return binary("num/sub", a, b, core.Prim("number")) }
func Mul(a, b any) *core.CExpr { return binary("num/mul", a, b, core.Prim("number")) }
func Eq(a, b any) *core.CExpr  { return binary("num/eq", a, b, core.Prim("boolean")) }

func binary(kind string, a, b any, output core.Type) *core.CExpr {
	return core.MakeCExpr(kind, []any{a, b}, output)
}
