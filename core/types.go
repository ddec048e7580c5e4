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

// Package core holds the data model shared by every other tfkernel package:
// CExpr and NExpr, the NodeEntry adjacency map, the id generator, structural
// child shapes, and the Plugin/KindSpec/TraitImpl contract. Nothing in this
// package walks or evaluates a graph; that lives in elaborate, transform and
// fold.
package core

// Type is an output-type witness. Primitive types set only Tag (e.g.
// "number", "string", "boolean"). Record types set Fields; array types set
// Elem. The zero Type (empty Tag, nil Fields/Elem) means "unknown/dynamic"
// and is what the accessor overlay falls back to when it can't resolve a
// selector statically.
type Type struct {
	Tag    string
	Fields map[string]Type
	Elem   *Type
}

// IsRecord reports whether t is declared as a record (field-addressable) type.
func (t Type) IsRecord() bool { return t.Fields != nil }

// IsArray reports whether t is declared as an array (index-addressable) type.
func (t Type) IsArray() bool { return t.Elem != nil }

// IsUnknown reports whether t carries no usable type information.
func (t Type) IsUnknown() bool { return t.Tag == "" && t.Fields == nil && t.Elem == nil }

// Array builds the Type of an array whose elements have type elem.
func Array(elem Type) Type { return Type{Tag: "array", Elem: &elem} }

// Record builds the Type of a record with the given named fields.
func Record(fields map[string]Type) Type { return Type{Tag: "record", Fields: fields} }

// Prim builds a primitive Type with the given tag.
func Prim(tag string) Type { return Type{Tag: tag} }
