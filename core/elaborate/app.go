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

package elaborate

import "github.com/latticeforge/tfkernel/core"

// Catalog is the lookup surface app() needs from a plugin registry. It is
// declared here, independently of core/registry, so that elaborate never
// imports registry (registry imports elaborate to expose App as a method,
// and Go doesn't allow the cycle back).
type Catalog interface {
	// KindSpec returns the declared contract for kind, and whether kind is
	// registered at all.
	KindSpec(kind string) (core.KindSpec, bool)

	// Shape returns the structural shape for kind (ShapePlain if the owning
	// plugin didn't declare one).
	Shape(kind string) core.Shape

	// Lift returns the literal kind registered for a primitive type tag.
	Lift(tag string) (string, bool)
}

// App runs app(): the post-order walk that turns root into a normalized
// NExpr. Identical CExprs (same content-address id) collapse to a single
// adjacency entry and a single sequential id, which is what gives the
// resulting graph its sharing.
func App(root *core.CExpr, catalog Catalog) (core.NExpr, error) {
	st := &walker{
		catalog: catalog,
		seen:    make(map[string]string),
		adj:     make(core.Adjacency),
		gen:     core.NewIDGenerator(),
	}
	rootID, err := st.elaborate(root)
	if err != nil {
		return core.NExpr{}, err
	}
	return core.NExpr{RootID: rootID, Adj: st.adj, Counter: st.gen.Peek()}, nil
}

type walker struct {
	catalog Catalog
	seen    map[string]string // CExpr.ID -> allocated sequential id
	adj     core.Adjacency
	gen     *core.IDGenerator
}

// elaborate allocates (or reuses) the sequential id for ce, recursively
// elaborating its operands first. ce.ID already captures (kind, args)
// structurally, so memoizing on it is what collapses two CExprs built from
// identical ctor calls into one adjacency entry.
func (w *walker) elaborate(ce *core.CExpr) (string, error) {
	if id, ok := w.seen[ce.ID]; ok {
		return id, nil
	}

	spec, ok := w.catalog.KindSpec(ce.Kind)
	if !ok {
		return "", ErrUnknownKind.New(ce.Kind)
	}
	shape := w.catalog.Shape(ce.Kind)

	var operands []any
	var out any
	for _, a := range ce.Args {
		if op, isOpaque := a.(core.Opaque); isOpaque {
			out = op.Value
			continue
		}
		operands = append(operands, a)
	}

	children, err := w.buildChildren(ce.Kind, shape, spec, operands)
	if err != nil {
		return "", err
	}

	id := w.gen.Next()
	w.seen[ce.ID] = id
	w.adj[id] = core.NodeEntry{Kind: ce.Kind, Children: children, Out: out}
	return id, nil
}

func (w *walker) buildChildren(kind string, shape core.Shape, spec core.KindSpec, operands []any) (core.Children, error) {
	if shape == core.ShapeRecord {
		if len(operands) != 1 {
			return core.Children{}, ErrArityMismatch.New(kind, 1, len(operands))
		}
		fields, ok := operands[0].(map[string]any)
		if !ok {
			return core.Children{}, ErrArityMismatch.New(kind, 1, len(operands))
		}
		ids := make(map[string]string, len(fields))
		for name, v := range fields {
			cid, err := w.resolveOperand(kind, -1, spec, v)
			if err != nil {
				return core.Children{}, err
			}
			ids[name] = cid
		}
		return core.RecordChildren(ids), nil
	}

	if len(spec.Inputs) > 0 && len(operands) != len(spec.Inputs) {
		return core.Children{}, ErrArityMismatch.New(kind, len(spec.Inputs), len(operands))
	}
	ids := make([]string, len(operands))
	for i, v := range operands {
		cid, err := w.resolveOperand(kind, i, spec, v)
		if err != nil {
			return core.Children{}, err
		}
		ids[i] = cid
	}
	if shape == core.ShapeTuple {
		return core.TupleChildren(ids...), nil
	}
	return core.PlainChildren(ids...), nil
}

// resolveOperand elaborates a child CExpr, or lifts a raw literal into a
// synthetic literal CExpr first so it goes through the same content-address
// dedup path as any other operand (two occurrences of the same raw literal
// value at different call sites collapse to one node, exactly like two
// explicit ctor calls would).
func (w *walker) resolveOperand(kind string, pos int, spec core.KindSpec, v any) (string, error) {
	ce, ok := v.(*core.CExpr)
	if !ok {
		tag, inferred := core.InferPrimitiveTag(v)
		if !inferred {
			return "", ErrUnliftableLiteral.New(v, v)
		}
		liftKind, hasLift := w.catalog.Lift(tag)
		if !hasLift {
			return "", ErrUnliftableLiteral.New(v, v)
		}
		ce = core.MakeCExpr(liftKind, []any{core.Opaque{Value: v}}, core.Prim(tag))
	}

	childID, err := w.elaborate(ce)
	if err != nil {
		return "", err
	}
	if pos >= 0 && pos < len(spec.Inputs) {
		if err := checkType(kind, pos, spec.Inputs[pos], ce.Output); err != nil {
			return "", err
		}
	}
	return childID, nil
}

func checkType(kind string, pos int, expected, got core.Type) error {
	if expected.IsUnknown() || got.IsUnknown() {
		return nil
	}
	if expected.Tag != got.Tag {
		return ErrTypeMismatch.New(kind, pos, describeType(expected), describeType(got))
	}
	return nil
}

func describeType(t core.Type) string {
	if t.Tag == "" {
		return "<unknown>"
	}
	return t.Tag
}
