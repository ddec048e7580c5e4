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

package core

// KindSpec is a plugin-declared contract for one node kind: the expected
// output types of its operands (in order) and its own declared output type.
type KindSpec struct {
	Inputs []Type
	Output Type
}

// TraitImpl is a plugin-declared typeclass implementation: for the runtime
// type tag Type, NodeKinds maps an operation name (e.g. "add") to the
// concrete node kind that implements it for that type (e.g. "num/add").
type TraitImpl struct {
	Trait     string
	Type      string
	NodeKinds map[string]string
}

// Plugin is a bundle of node kinds, their specs, literal-lifting rules,
// typeclass implementations and default handlers, all under one namespace
// ctors — the user-facing
// constructor functions that build CExprs — are ordinary exported functions
// on the plugin's own package; the kernel never calls them, so they are not
// part of this interface.
type Plugin interface {
	// Name is the plugin's unique namespace, e.g. "num" or "st".
	Name() string

	// Kinds returns the KindSpec for every kind this plugin declares,
	// keyed by the fully namespaced kind tag (e.g. "num/add").
	Kinds() map[string]KindSpec

	// Shapes returns the structural Shape for kinds whose children are not
	// ShapePlain. Kinds absent from the map default to ShapePlain.
	Shapes() map[string]Shape

	// Lifts maps a primitive type tag (as produced by type inference over a
	// raw literal) to the literal kind that should hold it, e.g.
	// "number" -> "num/literal".
	Lifts() map[string]string

	// Traits returns this plugin's typeclass implementations, if any.
	Traits() []TraitImpl

	// DefaultInterpreter returns the handler this plugin registers for each
	// of its kinds that can actually be evaluated. Kinds that exist only to
	// be resolved by typeclass dispatch (never appearing as a node kind
	// themselves) are omitted.
	DefaultInterpreter() map[string]Handler
}
