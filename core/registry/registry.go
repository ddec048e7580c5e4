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
	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/dispatch"
	"github.com/latticeforge/tfkernel/core/elaborate"
	"github.com/latticeforge/tfkernel/core/fold"
)

// Registry is the composed view of a set of plugins: every kind's spec,
// structural shape and lift entry, every trait implementation, and the
// concrete interpreter built by Defaults. It satisfies elaborate.Catalog
// directly, so a *Registry is what App/Fold are called against.
type Registry struct {
	plugins []core.Plugin

	kinds  map[string]core.KindSpec
	shapes map[string]core.Shape
	lifts  map[string]string
	owner  map[string]string
	traits []core.TraitImpl

	interpreter core.Interpreter
	dispatcher  *dispatch.Dispatcher
}

// New composes plugins into a Registry, building its interpreter via
// Defaults(plugins, overrides). overrides may be nil.
func New(plugins []core.Plugin, overrides core.Interpreter) (*Registry, error) {
	r := &Registry{
		plugins: append([]core.Plugin(nil), plugins...),
		kinds:   make(map[string]core.KindSpec),
		shapes:  make(map[string]core.Shape),
		lifts:   make(map[string]string),
		owner:   make(map[string]string),
	}
	for _, p := range plugins {
		for kind, spec := range p.Kinds() {
			r.kinds[kind] = spec
			r.owner[kind] = p.Name()
		}
		for kind, shape := range p.Shapes() {
			r.shapes[kind] = shape
		}
		for tag, kind := range p.Lifts() {
			r.lifts[tag] = kind
		}
		r.traits = append(r.traits, p.Traits()...)
	}

	interp, err := Defaults(plugins, overrides)
	if err != nil {
		return nil, err
	}
	r.interpreter = interp
	return r, nil
}

// Defaults composes an interpreter from every plugin's DefaultInterpreter(),
// then layers overrides on top (overrides win; later plugins win over
// earlier ones for a kind both declare a default for). A plugin that
// declares a node kind with neither a default nor an override — and that
// isn't one of fold's reserved built-in kinds — fails composition with
// ErrNoInterpreter.
func Defaults(plugins []core.Plugin, overrides core.Interpreter) (core.Interpreter, error) {
	reserved := fold.ReservedKinds()
	interp := make(core.Interpreter)
	for _, p := range plugins {
		def := p.DefaultInterpreter()
		for kind, h := range def {
			interp[kind] = h
		}
		for kind := range p.Kinds() {
			if reserved[kind] {
				continue
			}
			_, hasDef := def[kind]
			_, hasOverride := overrides[kind]
			if !hasDef && !hasOverride {
				return nil, ErrNoInterpreter.New(p.Name())
			}
		}
	}
	for kind, h := range overrides {
		interp[kind] = h
	}
	return interp, nil
}

// KindSpec implements elaborate.Catalog.
func (r *Registry) KindSpec(kind string) (core.KindSpec, bool) {
	spec, ok := r.kinds[kind]
	return spec, ok
}

// Shape implements elaborate.Catalog.
func (r *Registry) Shape(kind string) core.Shape {
	if s, ok := r.shapes[kind]; ok {
		return s
	}
	return core.ShapePlain
}

// Lift implements elaborate.Catalog.
func (r *Registry) Lift(tag string) (string, bool) {
	k, ok := r.lifts[tag]
	return k, ok
}

// Owner reports which plugin declared kind.
func (r *Registry) Owner(kind string) (string, bool) {
	name, ok := r.owner[kind]
	return name, ok
}

// Interpreter returns the composed kind -> handler table.
func (r *Registry) Interpreter() core.Interpreter { return r.interpreter }

// SetOverride replaces (or adds) the handler for kind, for callers that
// need to patch the interpreter after composition — e.g. swapping in a
// real concurrent fiber/par_map handler. Call Validate afterward if kind
// was previously unresolved.
func (r *Registry) SetOverride(kind string, h core.Handler) {
	r.interpreter[kind] = h
}

// Dispatcher returns the typeclass dispatcher built from every plugin's
// Traits(), constructing it lazily on first use.
func (r *Registry) Dispatcher() *dispatch.Dispatcher {
	if r.dispatcher == nil {
		r.dispatcher = dispatch.NewDispatcher(r.traits)
	}
	return r.dispatcher
}

// App normalizes root into an NExpr against this registry's kind/shape/lift
// tables.
func (r *Registry) App(root *core.CExpr) (core.NExpr, error) {
	return elaborate.App(root, r)
}

// Fold evaluates expr with this registry's composed interpreter.
func (r *Registry) Fold(expr core.NExpr, opts *fold.Options) (any, error) {
	return fold.Fold(expr, r.interpreter, opts)
}

// Validate re-checks that every declared kind (excluding fold's reserved
// built-ins) has a handler in the current interpreter. Defaults already
// performs this check once at composition time; Validate exists so an
// embedder that mutates the interpreter afterward (SetOverride) can re-run
// the same check without rebuilding the Registry from scratch.
func (r *Registry) Validate() error {
	reserved := fold.ReservedKinds()
	for kind := range r.kinds {
		if reserved[kind] {
			continue
		}
		if _, ok := r.interpreter[kind]; !ok {
			return ErrNoInterpreter.New(r.owner[kind])
		}
	}
	return nil
}
