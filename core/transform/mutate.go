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

// MapWhere replaces every entry matching pred with f(id, entry); entries
// that don't match are retained verbatim. f is responsible for returning an
// entry whose children still resolve inside the result's adjacency.
func MapWhere(n core.NExpr, pred Predicate, f func(id string, entry core.NodeEntry) core.NodeEntry) core.NExpr {
	adj := make(core.Adjacency, len(n.Adj))
	for id, e := range n.Adj {
		if pred(n.Adj, id) {
			adj[id] = f(id, e)
		} else {
			adj[id] = e
		}
	}
	return core.NExpr{RootID: n.RootID, Adj: adj, Counter: n.Counter}
}

// ReplaceWhere is MapWhere's common case: swap the kind field on every
// matching entry, leaving children and payload untouched.
func ReplaceWhere(n core.NExpr, pred Predicate, newKind string) core.NExpr {
	return MapWhere(n, pred, func(_ string, e core.NodeEntry) core.NodeEntry {
		e.Kind = newKind
		return e
	})
}

// SpliceWhere excises every entry matching pred, rewriting every reference
// to a matched id to that entry's first child id. A matched entry with no
// children leaves its references dangling (Commit will report them). If the
// root itself matches and has a child, the root becomes that child.
func SpliceWhere(n core.NExpr, pred Predicate) core.NExpr {
	replacement := make(map[string]string)
	for id, e := range n.Adj {
		if !pred(n.Adj, id) {
			continue
		}
		kids := core.ExtractChildIds(e.Children)
		if len(kids) > 0 {
			replacement[id] = kids[0]
		} else {
			replacement[id] = ""
		}
	}
	if len(replacement) == 0 {
		return n
	}

	adj := make(core.Adjacency, len(n.Adj))
	for id, e := range n.Adj {
		if _, matched := replacement[id]; matched {
			continue
		}
		adj[id] = rewriteEntry(e, replacement)
	}
	rootID := resolveSplice(n.RootID, replacement)
	return core.NExpr{RootID: rootID, Adj: adj, Counter: n.Counter}
}

// resolveSplice follows the replacement chain to its end, so that splicing
// several matched nodes in one pass still fully collapses a run of them.
func resolveSplice(id string, replacement map[string]string) string {
	seen := make(map[string]bool)
	for {
		target, matched := replacement[id]
		if !matched {
			return id
		}
		if target == "" || seen[target] {
			return target
		}
		seen[target] = true
		id = target
	}
}

func rewriteEntry(e core.NodeEntry, replacement map[string]string) core.NodeEntry {
	return core.NodeEntry{Kind: e.Kind, Children: rewriteChildren(e.Children, replacement), Out: e.Out}
}

func rewriteChildren(c core.Children, replacement map[string]string) core.Children {
	if c.IsRecord() {
		fields := make(map[string]string, len(c.Fields))
		for k, v := range c.Fields {
			fields[k] = resolveSplice(v, replacement)
		}
		return core.RecordChildren(fields)
	}
	ids := make([]string, len(c.Ids))
	for i, v := range c.Ids {
		ids[i] = resolveSplice(v, replacement)
	}
	return core.Children{Ids: ids}
}

// WrapByName inserts a freshly allocated node {kind: wrapperKind, children:
// [targetID]}, rewrites every other reference to targetID to the new id,
// and returns the result along with the new id. The wrapper becomes root
// iff targetID was root.
func WrapByName(n core.NExpr, targetID, wrapperKind string) (core.NExpr, string) {
	newID := n.Counter
	replacement := map[string]string{targetID: newID}

	adj := make(core.Adjacency, len(n.Adj)+1)
	for id, e := range n.Adj {
		adj[id] = rewriteEntry(e, replacement)
	}
	adj[newID] = core.NodeEntry{Kind: wrapperKind, Children: core.PlainChildren(targetID)}

	rootID := n.RootID
	if rootID == targetID {
		rootID = newID
	}
	return core.NExpr{RootID: rootID, Adj: adj, Counter: core.NextID(newID)}, newID
}

// Name adds an alias entry @n pointing at targetID. Aliases don't consume
// the sequential id counter.
func Name(n core.NExpr, alias, targetID string) core.NExpr {
	adj := make(core.Adjacency, len(n.Adj)+1)
	for id, e := range n.Adj {
		adj[id] = e
	}
	adj[core.AliasKey(alias)] = core.NodeEntry{Kind: core.AliasKind, Children: core.PlainChildren(targetID)}
	return core.NExpr{RootID: n.RootID, Adj: adj, Counter: n.Counter}
}

// GC drops every entry unreachable from the root, preserving all @* alias
// keys regardless of reachability.
func GC(n core.NExpr) core.NExpr {
	live := LiveAdj(n.Adj, n.RootID)
	adj := make(core.Adjacency, len(live))
	for id, e := range n.Adj {
		if core.IsAliasKey(id) {
			adj[id] = e
			continue
		}
		if _, ok := live[id]; ok {
			adj[id] = e
		}
	}
	return core.NExpr{RootID: n.RootID, Adj: adj, Counter: n.Counter}
}

// LiveAdj performs a forward walk from rootID, following ordinary child
// links with structural shapes flattened, and returns the reachable id set.
func LiveAdj(adj core.Adjacency, rootID string) map[string]struct{} {
	live := make(map[string]struct{})
	if rootID == "" {
		return live
	}
	var walk func(id string)
	walk = func(id string) {
		if _, seen := live[id]; seen {
			return
		}
		e, ok := adj[id]
		if !ok {
			return
		}
		live[id] = struct{}{}
		for _, child := range core.ExtractChildIds(e.Children) {
			walk(child)
		}
	}
	walk(rootID)
	return live
}

// Pipe applies steps left to right: Pipe(n, f1, f2) == f2(f1(n)).
func Pipe(n core.NExpr, steps ...func(core.NExpr) core.NExpr) core.NExpr {
	for _, step := range steps {
		n = step(n)
	}
	return n
}
