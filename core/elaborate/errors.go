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

// Package elaborate implements app(): the post-order walk that turns a
// content-addressed CExpr into a normalized, sequentially-indexed NExpr.
package elaborate

import goerrors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnknownKind is raised when a CExpr's kind isn't declared by any
	// registered plugin.
	ErrUnknownKind = goerrors.NewKind("unknown kind %q")

	// ErrArityMismatch is raised when a kind's declared input count
	// doesn't match the number of operands it was constructed with.
	ErrArityMismatch = goerrors.NewKind("kind %q: expected %d children, got %d")

	// ErrTypeMismatch is raised when an operand's declared output type
	// doesn't match the expected input type at its position.
	ErrTypeMismatch = goerrors.NewKind("kind %q: operand %d: expected type %q, got %q")

	// ErrUnliftableLiteral is raised when a raw arg has no registered
	// lifts entry for its inferred primitive type.
	ErrUnliftableLiteral = goerrors.NewKind("no lift registered for literal %v (%T)")
)
