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

// Package dispatch resolves a typeclass operation (e.g. "add" under the
// "semiring" trait) to a concrete node kind by inferring the operand type
// and consulting the registered TraitImpls, rewriting the call into an
// ordinary CExpr of that concrete kind.
package dispatch

import goerrors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnresolvedTrait is raised when no registered TraitImpl matches
	// the inferred operand type for an operation.
	ErrUnresolvedTrait = goerrors.NewKind("no trait implementation for op %q, type %q")

	// ErrAmbiguousTrait is raised when two or more TraitImpls match.
	ErrAmbiguousTrait = goerrors.NewKind("ambiguous trait implementation for op %q: candidates %v")
)
