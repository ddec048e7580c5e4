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

package corekinds

import (
	"sort"

	"github.com/latticeforge/tfkernel/core"
)

// accessHandler evaluates the parent (child 0) and applies the entry's
// stored selector to the resulting value.
func accessHandler(_ string, entry core.NodeEntry) core.Coroutine {
	return &accessCo{selector: entry.Out}
}

type accessCo struct {
	selector any
}

func (c *accessCo) Start() (core.Step, error) { return core.Yield(0), nil }

func (c *accessCo) Resume(parent any) (core.Step, error) {
	switch sel := c.selector.(type) {
	case string:
		if m, ok := parent.(map[string]any); ok {
			return core.Return(m[sel]), nil
		}
	case int:
		if s, ok := parent.([]any); ok && sel >= 0 && sel < len(s) {
			return core.Return(s[sel]), nil
		}
	}
	return core.Return(nil), nil
}

// tupleHandler evaluates every child in order and returns the collected
// slice.
func tupleHandler(_ string, entry core.NodeEntry) core.Coroutine {
	return &tupleCo{n: entry.Children.Len(), out: make([]any, 0, entry.Children.Len())}
}

type tupleCo struct {
	n   int
	idx int
	out []any
}

func (c *tupleCo) Start() (core.Step, error) {
	if c.n == 0 {
		return core.Return([]any{}), nil
	}
	return core.Yield(0), nil
}

func (c *tupleCo) Resume(v any) (core.Step, error) {
	c.out = append(c.out, v)
	c.idx++
	if c.idx >= c.n {
		return core.Return(c.out), nil
	}
	return core.Yield(c.idx), nil
}

// recordHandler evaluates every field's child, in sorted field-name order
// (matching core.ExtractChildIds), and returns a field-name-keyed map.
func recordHandler(_ string, entry core.NodeEntry) core.Coroutine {
	keys := make([]string, 0, len(entry.Children.Fields))
	for k := range entry.Children.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &recordCo{keys: keys, out: make(map[string]any, len(keys))}
}

type recordCo struct {
	keys []string
	idx  int
	out  map[string]any
}

func (c *recordCo) Start() (core.Step, error) {
	if len(c.keys) == 0 {
		return core.Return(map[string]any{}), nil
	}
	return core.Yield(0), nil
}

func (c *recordCo) Resume(v any) (core.Step, error) {
	c.out[c.keys[c.idx]] = v
	c.idx++
	if c.idx >= len(c.keys) {
		return core.Return(c.out), nil
	}
	return core.Yield(c.idx), nil
}
