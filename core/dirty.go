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

package core

// DirtyExpr is a mutable workspace view over the same physical
// representation as NExpr. The type distinguishes "validated" (NExpr) from
// "under construction" (DirtyExpr, produced by core/transform.Dirty and
// consumed by core/transform.Commit). tfkernel drops the
// origin language's phantom type-level tracking of this distinction
// since Go has no structural subtyping to exploit for it; DirtyExpr simply
// carries the same fields and the invariant lives in Commit's validation.
type DirtyExpr struct {
	RootID  string
	Adj     Adjacency
	Counter string
}

// ToNExpr reinterprets a DirtyExpr as an NExpr without validation. Callers
// outside core/transform should go through Commit instead.
func (d DirtyExpr) ToNExpr() NExpr {
	return NExpr{RootID: d.RootID, Adj: d.Adj, Counter: d.Counter}
}

// FromNExpr opens an editable view over n. The returned DirtyExpr shares n's
// Adj map by reference; callers that mutate it should clone first via
// NExpr.Clone.
func FromNExpr(n NExpr) DirtyExpr {
	return DirtyExpr{RootID: n.RootID, Adj: n.Adj, Counter: n.Counter}
}
