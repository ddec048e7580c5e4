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

// Package transform implements the DAG transformation algebra: predicates,
// selectWhere, the mutating transforms (mapWhere, replaceWhere, spliceWhere,
// wrapByName, name), gc, the dirty/commit lifecycle, and pipe composition.
package transform

import goerrors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrDanglingChild is raised by Commit when an entry references a
	// child id absent from the adjacency map.
	ErrDanglingChild = goerrors.NewKind("node %q references missing child %q")

	// ErrMissingRoot is raised by Commit when the root id isn't a key in
	// the adjacency map.
	ErrMissingRoot = goerrors.NewKind("root %q not present in adjacency map")
)
