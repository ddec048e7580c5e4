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

import "sort"

// Shape describes the arrangement of a kind's children, as declared by the
// owning plugin's `shapes` table.
type Shape int

const (
	// ShapePlain is the default: an ordered list of operand ids.
	ShapePlain Shape = iota
	// ShapeTuple is a single array of element ids (e.g. core/tuple).
	ShapeTuple
	// ShapeRecord is a field-name to child-id mapping (e.g. core/record).
	ShapeRecord
)

// Children holds one node's child references, in whichever of the three
// shapes its kind uses. Exactly one of Ids or Fields is populated; Ids also
// backs ShapePlain and ShapeTuple, since on the wire they are both just
// `[childId...]` and differ only in what the fold handler does with them.
type Children struct {
	Ids    []string
	Fields map[string]string
}

// PlainChildren builds an ordinary ordered child list.
func PlainChildren(ids ...string) Children {
	return Children{Ids: append([]string(nil), ids...)}
}

// TupleChildren builds a tuple-shaped child list (same wire shape as
// PlainChildren; kept distinct for readability at call sites).
func TupleChildren(ids ...string) Children {
	return Children{Ids: append([]string(nil), ids...)}
}

// RecordChildren builds a record-shaped mapping from field name to child id.
func RecordChildren(fields map[string]string) Children {
	cp := make(map[string]string, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Children{Fields: cp}
}

// IsRecord reports whether c uses the record shape.
func (c Children) IsRecord() bool { return c.Fields != nil }

// ExtractChildIds flattens either shape into the linear, deterministically
// ordered set of child ids used for reachability analysis and validation.
// Record fields are visited in sorted key order so that extraction is
// reproducible regardless of Go's randomized map iteration.
func ExtractChildIds(c Children) []string {
	if c.IsRecord() {
		keys := make([]string, 0, len(c.Fields))
		for k := range c.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		ids := make([]string, 0, len(keys))
		for _, k := range keys {
			ids = append(ids, c.Fields[k])
		}
		return ids
	}
	return append([]string(nil), c.Ids...)
}

// Len returns the flattened child count, for hasChildCount-style predicates.
func (c Children) Len() int { return len(ExtractChildIds(c)) }
