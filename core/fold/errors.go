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

// Package fold implements the stack-safe, memoizing fold trampoline: the
// Frame stack driving per-kind coroutine handlers, volatile/taint
// propagation, the scope stack for scoped child requests, and the small set
// of reserved control-flow kinds (core/lambda_param, error/try and its
// siblings) that the trampoline evaluates directly rather than dispatching
// through the registered interpreter.
package fold

import goerrors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnknownHandler is raised when no handler is registered for a kind
	// encountered during fold.
	ErrUnknownHandler = goerrors.NewKind("no handler registered for kind %q")

	// ErrMissingNode is raised when a handler yields a child whose id
	// isn't present in the adjacency map.
	ErrMissingNode = goerrors.NewKind("node %q not present in adjacency map")

	// ErrBadChildIndex is raised when a handler yields an index beyond its
	// node's child count.
	ErrBadChildIndex = goerrors.NewKind("node %q (kind %q): child index %d out of range")

	// ErrRootNotEvaluated is a defensive error: unreachable if handlers
	// and the trampoline loop are correct.
	ErrRootNotEvaluated = goerrors.NewKind("root %q was never evaluated")

	// ErrUnboundLambdaParam is raised when core/lambda_param is evaluated
	// outside any scope that binds its id — a supplement to the taxonomy
	// for the one failure mode specific to the reserved lambda-parameter
	// form.
	ErrUnboundLambdaParam = goerrors.NewKind("lambda parameter %q has no binding in scope")

	// ErrGuardFailed is the handler-thrown value error/guard produces when
	// its condition child evaluates to anything other than boolean true.
	ErrGuardFailed = goerrors.NewKind("guard %q failed")

	// ErrUnboundCell is raised when st/get reads a cell name that no st/let
	// in the same fold has initialized yet.
	ErrUnboundCell = goerrors.NewKind("state cell %q has no value in this fold")

	// ErrRunID is raised when Fold cannot mint a run id for a new
	// invocation.
	ErrRunID = goerrors.NewKind("failed to generate fold run id: %s")
)
