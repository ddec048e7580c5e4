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

// Package tfkernel is the root package: Kernel bundles a composed plugin
// registry and a set of default fold options behind one entry point, so a
// caller doesn't have to wire core/elaborate, core/fold and core/registry
// by hand for the common case.
package tfkernel

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/dispatch"
	"github.com/latticeforge/tfkernel/core/fold"
	"github.com/latticeforge/tfkernel/core/registry"
	"github.com/latticeforge/tfkernel/core/transform"
)

// Kernel is a ready-to-use DAG builder/evaluator over a fixed set of
// plugins: one struct an embedder constructs once and calls repeatedly,
// instead of threading a registry and options through every call site.
type Kernel struct {
	Registry *registry.Registry
	Options  *fold.Options
}

// New composes plugins into a Kernel. overrides may be nil; it is layered
// on top of every plugin's DefaultInterpreter() the same way
// registry.New does.
func New(plugins []core.Plugin, overrides core.Interpreter) (*Kernel, error) {
	reg, err := registry.New(plugins, overrides)
	if err != nil {
		return nil, err
	}
	return &Kernel{Registry: reg, Options: &fold.Options{}}, nil
}

// WithLogger returns k with its fold Options pointed at logger, so
// subsequent Fold calls emit trace lines when logger is at DebugLevel.
func (k *Kernel) WithLogger(logger *logrus.Logger) *Kernel {
	opts := *k.Options
	opts.Logger = logger
	k.Options = &opts
	return k
}

// WithVolatileKinds returns k with extraVolatile unioned into its fold
// Options, on top of fold.DefaultVolatileKinds().
func (k *Kernel) WithVolatileKinds(extraVolatile map[string]bool) *Kernel {
	opts := *k.Options
	merged := make(map[string]bool, len(opts.VolatileKinds)+len(extraVolatile))
	for kind := range opts.VolatileKinds {
		merged[kind] = true
	}
	for kind := range extraVolatile {
		merged[kind] = true
	}
	opts.VolatileKinds = merged
	k.Options = &opts
	return k
}

// Build normalizes root into an NExpr against k's registry. Any failure
// (unknown kind, arity/type mismatch, unliftable literal) is wrapped with
// "building expression" context, since app()'s own error carries only the
// offending node's local detail.
func (k *Kernel) Build(root *core.CExpr) (core.NExpr, error) {
	expr, err := k.Registry.App(root)
	if err != nil {
		return core.NExpr{}, errors.Wrap(err, "building expression")
	}
	return expr, nil
}

// Fold evaluates expr with k's composed interpreter and default options.
func (k *Kernel) Fold(expr core.NExpr) (any, error) {
	v, err := k.Registry.Fold(expr, k.Options)
	if err != nil {
		return nil, errors.Wrap(err, "folding expression")
	}
	return v, nil
}

// Eval is Build followed by Fold, for the common case of evaluating a fresh
// construction without inspecting the intermediate NExpr.
func (k *Kernel) Eval(root *core.CExpr) (any, error) {
	expr, err := k.Build(root)
	if err != nil {
		return nil, err
	}
	return k.Fold(expr)
}

// Dirty opens expr for mutation via the transform algebra.
func (k *Kernel) Dirty(expr core.NExpr) core.DirtyExpr { return transform.Dirty(expr) }

// Commit validates and closes a DirtyExpr back into a foldable NExpr.
func (k *Kernel) Commit(d core.DirtyExpr) (core.NExpr, error) { return transform.Commit(d) }

// Dispatcher returns k's typeclass dispatcher, for resolving a generic
// trait call (e.g. "eq") to a concrete node kind before construction.
func (k *Kernel) Dispatcher() *dispatch.Dispatcher { return k.Registry.Dispatcher() }
