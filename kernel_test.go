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

package tfkernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/tfkernel"
	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/transform"
	"github.com/latticeforge/tfkernel/internal/fixtures/arith"
	"github.com/latticeforge/tfkernel/plugins/corekinds"
	"github.com/latticeforge/tfkernel/plugins/errctl"
	"github.com/latticeforge/tfkernel/plugins/fiber"
	"github.com/latticeforge/tfkernel/plugins/state"
)

func newTestKernel(t *testing.T) *tfkernel.Kernel {
	t.Helper()
	k, err := tfkernel.New([]core.Plugin{
		corekinds.New(),
		arith.New(),
		state.New(),
		errctl.New(),
		fiber.New(),
	}, nil)
	require.NoError(t, err)
	return k
}

func TestArithmeticSharing(t *testing.T) {
	require := require.New(t)
	k := newTestKernel(t)

	root := arith.Mul(arith.Add(arith.Num(3), arith.Num(4)), arith.Num(5))
	expr, err := k.Build(root)
	require.NoError(err)
	require.Len(expr.Adj, 5)

	v, err := k.Fold(expr)
	require.NoError(err)
	require.Equal(float64(35), v)
}

func TestDAGSharing(t *testing.T) {
	require := require.New(t)
	k := newTestKernel(t)

	three := arith.Num(3)
	root := arith.Add(three, three)
	expr, err := k.Build(root)
	require.NoError(err)
	require.Len(expr.Adj, 2)

	entry, ok := expr.Get(expr.RootID)
	require.True(ok)
	ids := core.ExtractChildIds(entry.Children)
	require.Equal(ids[0], ids[1])

	v, err := k.Fold(expr)
	require.NoError(err)
	require.Equal(float64(6), v)
}

func TestVolatileStateCells(t *testing.T) {
	require := require.New(t)
	k := newTestKernel(t)

	// let x := 1 in (set x 2; get x) — modeled with error/settle sequencing
	// the set before the get, since corekinds has no dedicated "begin" form.
	root := errctl.Settle(
		state.Let("x", arith.Num(1)),
		state.Set("x", arith.Num(2)),
		state.Get("x"),
	)
	expr, err := k.Build(root)
	require.NoError(err)

	v, err := k.Fold(expr)
	require.NoError(err)
	settled := v.(map[string]any)
	fulfilled := settled["fulfilled"].([]any)
	require.Equal(float64(2), fulfilled[2])

	// A second, independent fold over the same NExpr gets its own fresh
	// store and observes the same sequence again.
	v2, err := k.Fold(expr)
	require.NoError(err)
	require.Equal(v, v2)
}

func TestErrorRecovery(t *testing.T) {
	require := require.New(t)
	k := newTestKernel(t)

	recovered := errctl.Try(arith.Fail("boom"), arith.Num(42))
	v, err := k.Eval(recovered)
	require.NoError(err)
	require.Equal(float64(42), v)

	_, err = k.Eval(arith.Fail("boom"))
	require.Error(err)
	require.Contains(err.Error(), "boom")
}

func TestReplaceThenFold(t *testing.T) {
	require := require.New(t)
	k := newTestKernel(t)

	expr, err := k.Build(arith.Add(arith.Num(10), arith.Num(3)))
	require.NoError(err)

	mutated := transform.ReplaceWhere(expr, transform.ByKind("num/add"), "num/sub")
	committed, err := k.Commit(k.Dirty(mutated))
	require.NoError(err)

	v, err := k.Fold(committed)
	require.NoError(err)
	require.Equal(float64(7), v)
}

func TestFiberParMapSequential(t *testing.T) {
	require := require.New(t)
	k := newTestKernel(t)

	param := corekinds.LambdaParam("item")
	body := arith.Add(param, arith.Num(1))
	root := fiber.ParMap(corekinds.Tuple(arith.Num(1), arith.Num(2), arith.Num(3)), param, body)

	v, err := k.Eval(root)
	require.NoError(err)
	require.Equal([]any{float64(2), float64(3), float64(4)}, v)
}
