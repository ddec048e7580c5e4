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

package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/dispatch"
	"github.com/latticeforge/tfkernel/internal/fixtures/arith"
)

func newDispatcher() *dispatch.Dispatcher {
	return dispatch.NewDispatcher(arith.New().Traits())
}

func TestResolveSingleImpl(t *testing.T) {
	require := require.New(t)
	d := newDispatcher()

	ce, err := d.Resolve("semiring", "add", core.Prim("number"), arith.Num(1), arith.Num(2))
	require.NoError(err)
	require.Equal("num/add", ce.Kind)
}

func TestResolveByInferredOperandType(t *testing.T) {
	require := require.New(t)
	// A second eq impl puts Resolve on the multi-impl path, so the concrete
	// kind is picked from the operands' declared output type.
	impls := append(arith.New().Traits(), core.TraitImpl{Trait: "eq", Type: "string", NodeKinds: map[string]string{"eq": "str/eq"}})
	d := dispatch.NewDispatcher(impls)

	ce, err := d.Resolve("eq", "eq", core.Prim("boolean"), arith.Num(1), arith.Num(2))
	require.NoError(err)
	require.Equal("num/eq", ce.Kind)

	ce, err = d.Resolve("eq", "eq", core.Prim("boolean"), arith.Str("a"), arith.Str("b"))
	require.NoError(err)
	require.Equal("str/eq", ce.Kind)
}

func TestResolveUnknownTrait(t *testing.T) {
	require := require.New(t)
	d := newDispatcher()

	_, err := d.Resolve("ord", "lt", core.Prim("boolean"), arith.Num(1), arith.Num(2))
	require.Error(err)
	require.True(dispatch.ErrUnresolvedTrait.Is(err))
}

func TestResolveUnknownOp(t *testing.T) {
	require := require.New(t)
	d := newDispatcher()

	_, err := d.Resolve("semiring", "divide", core.Prim("number"), arith.Num(1), arith.Num(2))
	require.Error(err)
	require.True(dispatch.ErrUnresolvedTrait.Is(err))
}
