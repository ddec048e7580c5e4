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

package transform_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/registry"
	"github.com/latticeforge/tfkernel/core/transform"
	"github.com/latticeforge/tfkernel/internal/fixtures/arith"
)

func buildAdd(t *testing.T) core.NExpr {
	t.Helper()
	reg, err := registry.New([]core.Plugin{arith.New()}, nil)
	require.NoError(t, err)
	expr, err := reg.App(arith.Add(arith.Num(10), arith.Num(3)))
	require.NoError(t, err)
	return expr
}

func TestReplaceWhereSwapsKindOnly(t *testing.T) {
	require := require.New(t)
	expr := buildAdd(t)

	mutated := transform.ReplaceWhere(expr, transform.ByKind("num/add"), "num/sub")

	addIDs := transform.SelectWhere(expr, transform.ByKind("num/add"))
	require.Len(addIDs, 1)
	subEntry, ok := mutated.Get(addIDs[0])
	require.True(ok)
	require.Equal("num/sub", subEntry.Kind)

	// Children and payload are untouched by the kind swap — diffing the
	// two entries' Children with cmp should report no difference there.
	origEntry, _ := expr.Get(addIDs[0])
	if diff := cmp.Diff(origEntry.Children, subEntry.Children); diff != "" {
		t.Fatalf("ReplaceWhere altered children unexpectedly:\n%s\nfull entry: %s", diff, spew.Sdump(subEntry))
	}
}

func TestSpliceWhereCollapsesToFirstChild(t *testing.T) {
	require := require.New(t)
	expr := buildAdd(t)

	literalIDs := transform.SelectWhere(expr, transform.ByKindGlob("num/lit"))
	require.NotEmpty(literalIDs)
	addIDs := transform.SelectWhere(expr, transform.ByKind("num/add"))
	require.Len(addIDs, 1)

	spliced := transform.SpliceWhere(expr, transform.ByKind("num/add"))
	_, hasAdd := spliced.Get(addIDs[0])
	require.False(hasAdd, "spliced entry must be gone from the result")
	require.Contains(literalIDs, spliced.RootID, "root should collapse onto the add node's first child")
}

func TestWrapByNameInsertsFreshNode(t *testing.T) {
	require := require.New(t)
	expr := buildAdd(t)

	wrapped, newID := transform.WrapByName(expr, expr.RootID, "fiber/timeout")
	require.Equal(newID, wrapped.RootID)

	entry, ok := wrapped.Get(newID)
	require.True(ok)
	require.Equal("fiber/timeout", entry.Kind)
	require.Equal([]string{expr.RootID}, core.ExtractChildIds(entry.Children))
}

func TestGCDropsUnreachableButKeepsAliases(t *testing.T) {
	require := require.New(t)
	expr := buildAdd(t)

	named := transform.Name(expr, "sum", expr.RootID)
	orphanID := named.Counter
	adj := make(core.Adjacency, len(named.Adj)+1)
	for id, e := range named.Adj {
		adj[id] = e
	}
	adj[orphanID] = core.NodeEntry{Kind: "num/literal", Out: 99.0}
	withOrphan := core.NExpr{RootID: named.RootID, Adj: adj, Counter: core.NextID(orphanID)}

	collected := transform.GC(withOrphan)
	_, orphanSurvived := collected.Get(orphanID)
	require.False(orphanSurvived)

	aliasEntry, ok := collected.Get(core.AliasKey("sum"))
	require.True(ok, "alias keys survive GC regardless of reachability")
	require.Equal([]string{collected.RootID}, core.ExtractChildIds(aliasEntry.Children))
}

func TestPipeAppliesLeftToRight(t *testing.T) {
	require := require.New(t)
	expr := buildAdd(t)

	piped := transform.Pipe(expr,
		func(n core.NExpr) core.NExpr {
			return transform.ReplaceWhere(n, transform.ByKind("num/add"), "num/sub")
		},
		// The second step names the num/sub node, which only exists once the
		// first step has run.
		func(n core.NExpr) core.NExpr {
			subIDs := transform.SelectWhere(n, transform.ByKind("num/sub"))
			if len(subIDs) == 0 {
				return n
			}
			return transform.Name(n, "result", subIDs[0])
		},
	)

	subIDs := transform.SelectWhere(piped, transform.ByKind("num/sub"))
	require.Len(subIDs, 1)
	aliasEntry, ok := piped.Get(core.AliasKey("result"))
	require.True(ok)
	require.Equal([]string{subIDs[0]}, core.ExtractChildIds(aliasEntry.Children))
}
