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

import (
	"sort"
	"strings"

	"github.com/latticeforge/tfkernel/core"
)

// Predicate is a pure test over one adjacency entry, identified by id.
type Predicate func(adj core.Adjacency, id string) bool

// ByKind matches entries whose kind is exactly k.
func ByKind(k string) Predicate {
	return func(adj core.Adjacency, id string) bool {
		e, ok := adj[id]
		return ok && e.Kind == k
	}
}

// ByKindGlob matches entries whose kind starts with prefix.
func ByKindGlob(prefix string) Predicate {
	return func(adj core.Adjacency, id string) bool {
		e, ok := adj[id]
		return ok && strings.HasPrefix(e.Kind, prefix)
	}
}

// IsLeaf matches entries with no children, after flattening.
func IsLeaf() Predicate {
	return func(adj core.Adjacency, id string) bool {
		e, ok := adj[id]
		return ok && e.Children.Len() == 0
	}
}

// HasChildCount matches entries whose flattened child count equals n.
func HasChildCount(n int) Predicate {
	return func(adj core.Adjacency, id string) bool {
		e, ok := adj[id]
		return ok && e.Children.Len() == n
	}
}

// And matches when every predicate matches.
func And(preds ...Predicate) Predicate {
	return func(adj core.Adjacency, id string) bool {
		for _, p := range preds {
			if !p(adj, id) {
				return false
			}
		}
		return true
	}
}

// Or matches when at least one predicate matches.
func Or(preds ...Predicate) Predicate {
	return func(adj core.Adjacency, id string) bool {
		for _, p := range preds {
			if p(adj, id) {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(adj core.Adjacency, id string) bool { return !p(adj, id) }
}

// SelectWhere walks the full adjacency map and returns the ids matching
// pred, in allocation order (ordinary ids before aliases, aliases sorted by
// name) so that results are reproducible across runs.
func SelectWhere(n core.NExpr, pred Predicate) []string {
	var ids []string
	for id := range n.Adj {
		if pred(n.Adj, id) {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		aAlias, bAlias := core.IsAliasKey(a), core.IsAliasKey(b)
		if aAlias != bAlias {
			return !aAlias
		}
		if aAlias {
			return a < b
		}
		return core.IDLess(a, b)
	})
}
