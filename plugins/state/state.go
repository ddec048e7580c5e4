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

// Package state provides the mutable-cell kinds: st/let, st/get, st/set and
// st/push. Every evaluation owns a fresh key->value store, allocated by
// core/fold at the start of a Fold call; st/get is volatile (a read must
// always observe the store's current contents, never a memoized value from
// an earlier visit), and st/let/st/set/st/push mutate it.
//
// All four kinds are declared here for registration (KindSpec, Shape) and
// construction, but none has an entry in DefaultInterpreter: core/fold
// evaluates them directly as reserved forms, the same treatment
// core/lambda_param gets in plugins/corekinds, because only the trampoline
// itself has a place to hold state shared across every node in one fold.
package state

import "github.com/latticeforge/tfkernel/core"

// Name is this plugin's namespace.
const Name = "st"

// Plugin is state's core.Plugin implementation.
type Plugin struct{}

// New returns the state plugin.
func New() Plugin { return Plugin{} }

func (Plugin) Name() string { return Name }

func (Plugin) Kinds() map[string]core.KindSpec {
	unknown := core.Type{}
	return map[string]core.KindSpec{
		"st/let":  {Inputs: []core.Type{unknown}, Output: unknown},
		"st/get":  {Inputs: nil, Output: unknown},
		"st/set":  {Inputs: []core.Type{unknown}, Output: unknown},
		"st/push": {Inputs: []core.Type{unknown}, Output: core.Array(unknown)},
	}
}

func (Plugin) Shapes() map[string]core.Shape { return nil }

func (Plugin) Lifts() map[string]string { return nil }

func (Plugin) Traits() []core.TraitImpl { return nil }

// DefaultInterpreter is empty: st/let, st/get, st/set and st/push are all
// reserved kinds core/fold evaluates directly against its per-fold store.
func (Plugin) DefaultInterpreter() map[string]core.Handler { return nil }

// Let builds an st/let CExpr that initializes cell name to init's value and
// returns it.
func Let(name string, init *core.CExpr) *core.CExpr {
	return core.MakeCExpr("st/let", []any{core.Opaque{Value: name}, init}, core.Type{})
}

// Get builds an st/get CExpr reading cell name's current value. It is
// volatile: two reads of the same Get node in one fold can return different
// values if a Set or Push lands between them.
func Get(name string) *core.CExpr {
	return core.MakeCExpr("st/get", []any{core.Opaque{Value: name}}, core.Type{})
}

// Set builds an st/set CExpr overwriting cell name with value's evaluated
// result, returning that value.
func Set(name string, value *core.CExpr) *core.CExpr {
	return core.MakeCExpr("st/set", []any{core.Opaque{Value: name}, value}, core.Type{})
}

// Push builds an st/push CExpr appending value's evaluated result onto cell
// name (treated as a slice, created empty if unset), returning the updated
// slice.
func Push(name string, value *core.CExpr) *core.CExpr {
	return core.MakeCExpr("st/push", []any{core.Opaque{Value: name}, value}, core.Array(core.Type{}))
}
