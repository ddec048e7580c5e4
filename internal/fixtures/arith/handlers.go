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

package arith

import (
	goerrors "gopkg.in/src-d/go-errors.v1"

	"github.com/latticeforge/tfkernel/core"
)

// ErrFixtureFailure is the error arith/fail always raises, carrying its
// node's message payload verbatim.
var ErrFixtureFailure = goerrors.NewKind("%s")

// failHandler always fails on Start with the node's message payload.
func failHandler(_ string, entry core.NodeEntry) core.Coroutine {
	return &failCo{msg: entry.Out}
}

type failCo struct{ msg any }

func (c *failCo) Start() (core.Step, error) { return core.Step{}, ErrFixtureFailure.New(c.msg) }

func (c *failCo) Resume(any) (core.Step, error) { return core.Step{}, ErrFixtureFailure.New(c.msg) }

// literalHandler returns a coroutine that returns the node's payload
// without yielding for any child; num/literal, str/literal and bool/literal
// all share this handler.
func literalHandler(_ string, entry core.NodeEntry) core.Coroutine {
	return &literalCo{value: entry.Out}
}

type literalCo struct{ value any }

func (c *literalCo) Start() (core.Step, error) { return core.Return(c.value), nil }

func (c *literalCo) Resume(any) (core.Step, error) { return core.Return(c.value), nil }

// binaryHandler builds a Handler for a two-child numeric operation: evaluate
// child 0, then child 1, then apply op to both as float64s.
func binaryHandler(op func(a, b float64) any) core.Handler {
	return func(_ string, _ core.NodeEntry) core.Coroutine {
		return &binaryCo{op: op}
	}
}

type binaryCo struct {
	op   func(a, b float64) any
	left float64
	have bool
}

func (c *binaryCo) Start() (core.Step, error) { return core.Yield(0), nil }

func (c *binaryCo) Resume(v any) (core.Step, error) {
	if !c.have {
		c.have = true
		c.left = toFloat(v)
		return core.Yield(1), nil
	}
	return core.Return(c.op(c.left, toFloat(v))), nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}
