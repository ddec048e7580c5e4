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

package dispatch

import "github.com/latticeforge/tfkernel/core"

// Dispatcher resolves typeclass operations (the constructor functions
// contributed by plugins like "eq", "semiring", "ord" that don't themselves
// name a node kind) to a concrete kind, grouping the registered TraitImpls
// by trait name.
type Dispatcher struct {
	byTrait map[string][]core.TraitImpl
}

// NewDispatcher builds a Dispatcher from every plugin's Traits().
func NewDispatcher(impls []core.TraitImpl) *Dispatcher {
	d := &Dispatcher{byTrait: make(map[string][]core.TraitImpl)}
	for _, impl := range impls {
		d.byTrait[impl.Trait] = append(d.byTrait[impl.Trait], impl)
	}
	return d
}

// Resolve picks the concrete kind implementing op under trait for args, and
// builds the resulting CExpr with the standard ordered-children shape.
//
// If exactly one impl is registered for trait, it is selected unconditionally
// (no type inference needed). Otherwise the operand type is inferred from
// the first arg carrying a known declared output type, and the impl whose
// Type matches is selected; zero matches is UnresolvedTrait, two or more is
// AmbiguousTrait.
func (d *Dispatcher) Resolve(trait, op string, output core.Type, args ...*core.CExpr) (*core.CExpr, error) {
	impls := d.byTrait[trait]
	if len(impls) == 0 {
		return nil, ErrUnresolvedTrait.New(op, "<no impls for trait "+trait+">")
	}
	if len(impls) == 1 {
		return d.build(impls[0], op, output, args)
	}

	tag, err := inferArgType(args)
	if err != nil {
		return nil, err
	}

	var matched []core.TraitImpl
	for _, impl := range impls {
		if impl.Type == tag {
			matched = append(matched, impl)
		}
	}
	switch len(matched) {
	case 0:
		return nil, ErrUnresolvedTrait.New(op, tag)
	case 1:
		return d.build(matched[0], op, output, args)
	default:
		return nil, ErrAmbiguousTrait.New(op, candidateTypes(matched))
	}
}

func (d *Dispatcher) build(impl core.TraitImpl, op string, output core.Type, args []*core.CExpr) (*core.CExpr, error) {
	kind, ok := impl.NodeKinds[op]
	if !ok {
		return nil, ErrUnresolvedTrait.New(op, impl.Type)
	}
	anyArgs := make([]any, len(args))
	for i, a := range args {
		anyArgs[i] = a
	}
	return core.MakeCExpr(kind, anyArgs, output), nil
}

// inferArgType reports the declared output type of the first arg that
// carries one. Typeclass ctors are expected to be called with operands that
// are already elaborated-or-literal CExprs (plugin ctors lift raw Go values
// to literal CExprs before reaching dispatch), so their Output is normally
// known by construction.
func inferArgType(args []*core.CExpr) (string, error) {
	for _, a := range args {
		if a != nil && !a.Output.IsUnknown() {
			return a.Output.Tag, nil
		}
	}
	return "", ErrUnresolvedTrait.New("<dispatch>", "<no typed operand>")
}

func candidateTypes(impls []core.TraitImpl) []string {
	out := make([]string, len(impls))
	for i, impl := range impls {
		out[i] = impl.Type
	}
	return out
}
