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

package fiber

import "github.com/latticeforge/tfkernel/core"

// timeoutHandler evaluates body (child 0) and returns its value unchanged.
// The deadline payload is carried on the node purely for an override
// handler to read; the default ignores it.
func timeoutHandler(_ string, _ core.NodeEntry) core.Coroutine { return &timeoutCo{} }

type timeoutCo struct{}

func (c *timeoutCo) Start() (core.Step, error) { return core.Yield(0), nil }

func (c *timeoutCo) Resume(v any) (core.Step, error) { return core.Return(v), nil }

// parMapHandler evaluates collection (child 0), then evaluates body (child
// 2) once per element, binding param (child 1) to that element via a
// scoped yield, collecting results in order.
func parMapHandler(_ string, entry core.NodeEntry) core.Coroutine {
	ids := core.ExtractChildIds(entry.Children)
	paramID := ""
	if len(ids) > 1 {
		paramID = ids[1]
	}
	return &parMapCo{paramID: paramID}
}

type parMapCo struct {
	paramID    string
	collection []any
	idx        int
	out        []any
	gotColl    bool
}

func (c *parMapCo) Start() (core.Step, error) { return core.Yield(0), nil }

func (c *parMapCo) Resume(v any) (core.Step, error) {
	if !c.gotColl {
		c.gotColl = true
		coll, _ := v.([]any)
		c.collection = coll
		c.out = make([]any, 0, len(coll))
		if len(coll) == 0 {
			return core.Return(c.out), nil
		}
		return core.YieldScoped(2, core.Binding{ParamID: c.paramID, Value: coll[0]}), nil
	}
	c.out = append(c.out, v)
	c.idx++
	if c.idx >= len(c.collection) {
		return core.Return(c.out), nil
	}
	return core.YieldScoped(2, core.Binding{ParamID: c.paramID, Value: c.collection[c.idx]}), nil
}
