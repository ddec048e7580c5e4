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

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/hashstructure"
)

// CExpr is a construction-time, content-addressed expression: a kind, its
// raw args (which may themselves be *CExpr, literals, slices or maps), an
// output-type witness, and an id computed deterministically from (kind,
// args). Two CExprs built from identical (kind, args) carry the same id,
// which is what lets app() collapse them into a single adjacency entry.
type CExpr struct {
	ID     string
	Kind   string
	Args   []any
	Output Type
}

// MakeCExpr builds a CExpr, computing its content-address id from kind and
// args. args is caller-supplied; arity/shape validation is deferred to app().
func MakeCExpr(kind string, args []any, output Type) *CExpr {
	return &CExpr{
		ID:     contentID(kind, args),
		Kind:   kind,
		Args:   args,
		Output: output,
	}
}

// contentID computes H(kind, canonicalize(args)) as a base-36 string. It
// never fails: hashstructure.Hash can only error on unhashable Go values
// (funcs, chans) reaching it. canonicalize replaces CExpr operands with
// their ids but passes every other value through unchanged, so such a value
// can reach the hash; the fallback makes a stray opaque value (an
// embedder's custom payload) degrade to a still-stable, if coarser, address
// instead of failing construction.
func contentID(kind string, args []any) string {
	payload := struct {
		Kind string
		Args []any
	}{Kind: kind, Args: canonicalize(args)}

	sum, err := hashstructure.Hash(payload, nil)
	if err != nil {
		sum = fnv64(fmt.Sprintf("%s|%v", kind, payload.Args))
	}
	return "c" + strconv.FormatUint(sum, 36)
}

// canonicalize produces a stable, hashable serialization of args: CExpr
// operands are replaced by their own content-address id (so structurally
// equal subtrees hash identically regardless of pointer identity), and
// slices/maps are walked recursively.
func canonicalize(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = canonicalizeOne(a)
	}
	return out
}

func canonicalizeOne(a any) any {
	switch v := a.(type) {
	case *CExpr:
		return v.ID
	case Opaque:
		return Opaque{Value: canonicalizeOne(v.Value)}
	case []any:
		return canonicalize(v)
	case map[string]any:
		m := make(map[string]any, len(v))
		for k, vv := range v {
			m[k] = canonicalizeOne(vv)
		}
		return m
	default:
		return v
	}
}

// Opaque wraps an arg that app() should store verbatim as the resulting
// node's Out payload instead of elaborating/lifting it as a child — e.g. an
// access selector, a state-cell name, or a literal's raw value. Plugin
// ctors that need a leaf payload wrap it with
// Opaque so the elaborator can tell payload positions apart from operand
// positions in CExpr.Args.
type Opaque struct{ Value any }

// fnv64 is the fallback hash used only when hashstructure.Hash rejects the
// canonicalized payload outright.
func fnv64(s string) uint64 {
	const (
		offset uint64 = 14695981039346656037
		prime  uint64 = 1099511628211
	)
	h := offset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

// Access synthesizes a core/access CExpr reading a field or index off
// parent, per the accessor-overlay contract: "each step emits a new
// CExpr of kind core/access, args [parent, selector], declared output taken
// from the parent's declared record/array shape."
func Access(parent *CExpr, selector any) *CExpr {
	return MakeCExpr("core/access", []any{parent, Opaque{Value: selector}}, accessOutputType(parent.Output, selector))
}

func accessOutputType(parent Type, selector any) Type {
	switch sel := selector.(type) {
	case string:
		if parent.IsRecord() {
			if t, ok := parent.Fields[sel]; ok {
				return t
			}
		}
	case int:
		if parent.IsArray() {
			return *parent.Elem
		}
	}
	return Type{}
}
