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

package transform

import "github.com/latticeforge/tfkernel/core"

// Dirty opens a mutable workspace view over n. The mutating transforms in
// this package (MapWhere, ReplaceWhere, SpliceWhere, WrapByName, Name, GC)
// accept and return plain NExpr values directly — DirtyExpr exists for
// callers who want the explicit open/edit/Commit lifecycle with validation
// at the end, e.g. a multi-step edit where only the final result should be
// checked for dangling references.
func Dirty(n core.NExpr) core.DirtyExpr { return core.FromNExpr(n) }

// Commit validates a DirtyExpr and returns the resulting NExpr: the root id
// must be present in the adjacency map, every entry's flattened children
// must resolve to keys in the map, and the counter is repaired to exceed
// every ordinary id present (transforms like GC don't bother tracking it).
func Commit(d core.DirtyExpr) (core.NExpr, error) {
	if _, ok := d.Adj[d.RootID]; !ok {
		return core.NExpr{}, ErrMissingRoot.New(d.RootID)
	}

	maxRank := 0
	for id, entry := range d.Adj {
		if !core.IsAliasKey(id) {
			if r := core.Rank(id); r > maxRank {
				maxRank = r
			}
		}
		for _, child := range core.ExtractChildIds(entry.Children) {
			if _, ok := d.Adj[child]; !ok {
				return core.NExpr{}, ErrDanglingChild.New(id, child)
			}
		}
	}

	counter := d.Counter
	if core.Rank(counter) <= maxRank {
		counter = core.NextID(core.Unrank(maxRank))
	}
	return core.NExpr{RootID: d.RootID, Adj: d.Adj, Counter: counter}, nil
}
