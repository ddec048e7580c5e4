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

package fold_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/fold"
)

type constCo struct{ v any }

func (c *constCo) Start() (core.Step, error)    { return core.Return(c.v), nil }
func (c *constCo) Resume(any) (core.Step, error) { return core.Return(c.v), nil }

type addCo struct{ left float64 }

func (c *addCo) Start() (core.Step, error) { return core.Yield(0), nil }
func (c *addCo) Resume(v any) (core.Step, error) {
	if c.left == 0 {
		c.left = v.(float64)
		return core.Yield(1), nil
	}
	return core.Return(c.left + v.(float64)), nil
}

// sharedLeafExpr builds a tiny adjacency where one leaf is visited via two
// distinct parent edges, so a correct memoizing fold evaluates it once.
func sharedLeafExpr() core.NExpr {
	adj := core.Adjacency{
		"a": {Kind: "lit", Out: 3.0},
		"b": {Kind: "add", Children: core.PlainChildren("a", "a")},
	}
	return core.NExpr{RootID: "b", Adj: adj, Counter: "c"}
}

func TestFoldMemoizesSharedLeaf(t *testing.T) {
	require := require.New(t)
	calls := 0
	interp := core.Interpreter{
		"lit": func(_ string, entry core.NodeEntry) core.Coroutine {
			calls++
			return &constCo{v: entry.Out}
		},
		"add": func(_ string, _ core.NodeEntry) core.Coroutine { return &addCo{} },
	}

	expr := sharedLeafExpr()
	v, err := fold.Fold(expr, interp, nil)
	require.NoError(err)
	require.Equal(6.0, v)
	require.Equal(1, calls, "the shared leaf should only be evaluated once per fold")
}

func TestFoldRevisitsVolatileKind(t *testing.T) {
	require := require.New(t)
	calls := 0
	interp := core.Interpreter{
		"lit": func(_ string, entry core.NodeEntry) core.Coroutine {
			calls++
			return &constCo{v: entry.Out}
		},
		"add": func(_ string, _ core.NodeEntry) core.Coroutine { return &addCo{} },
	}

	expr := sharedLeafExpr()
	opts := &fold.Options{VolatileKinds: map[string]bool{"lit": true}}
	v, err := fold.Fold(expr, interp, opts)
	require.NoError(err)
	require.Equal(6.0, v)
	require.Equal(2, calls, "a volatile kind re-evaluates on every visit even when content-identical")
}

func TestFoldOnRunIDCallback(t *testing.T) {
	require := require.New(t)
	interp := core.Interpreter{
		"lit": func(_ string, entry core.NodeEntry) core.Coroutine { return &constCo{v: entry.Out} },
	}
	expr := core.NExpr{RootID: "a", Adj: core.Adjacency{"a": {Kind: "lit", Out: 1.0}}, Counter: "b"}

	var seen string
	_, err := fold.Fold(expr, interp, &fold.Options{OnRunID: func(id string) { seen = id }})
	require.NoError(err)
	require.NotEmpty(seen)
}

func TestFoldUnknownHandler(t *testing.T) {
	require := require.New(t)
	expr := core.NExpr{RootID: "a", Adj: core.Adjacency{"a": {Kind: "mystery"}}, Counter: "b"}
	_, err := fold.Fold(expr, core.Interpreter{}, nil)
	require.Error(err)
	require.True(fold.ErrUnknownHandler.Is(err))
}
