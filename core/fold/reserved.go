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

package fold

import "github.com/latticeforge/tfkernel/core"

// lambdaParamKind is the reserved kind reading a value off the scope stack
// instead of consuming children. It is always volatile.
const lambdaParamKind = "core/lambda_param"

// Reserved kinds whose evaluation the trampoline implements directly rather
// than through a registered Handler. Two families land here for two
// different reasons: the error/* forms need to inspect whether evaluating a
// subtree failed before deciding what to evaluate next, which the plain
// yield/resume coroutine protocol has no way to express (a handler can
// request a child's value or return its own; it cannot be told "that
// child's evaluation failed, try something else"); the st/* forms need
// access to the one mutable table shared across every node in a fold,
// which a per-node Handler closure has no way to reach either. Treating
// both as built-in forms — the same distinction most interpreters draw
// between primitive special forms and ordinary pluggable operations — keeps
// the Handler/Coroutine contract uniform for every other kind.
var reservedKindSet = map[string]bool{
	lambdaParamKind: true,
	"error/try":     true,
	"error/attempt": true,
	"error/guard":   true,
	"error/settle":  true,
	"st/let":        true,
	"st/get":        true,
	"st/set":        true,
	"st/push":       true,
}

// ReservedKinds reports the set of kinds the trampoline evaluates without
// consulting the registered interpreter. core/registry's Validate() treats
// these as exempt from the "every kind needs a handler" check.
func ReservedKinds() map[string]bool {
	out := make(map[string]bool, len(reservedKindSet))
	for k := range reservedKindSet {
		out[k] = true
	}
	return out
}

func isReservedKind(kind string) bool { return reservedKindSet[kind] }

// evalReserved evaluates a reserved-kind node directly, returning its value,
// whether evaluating it touched a volatile/tainted dependency (so the
// caller can propagate taint), and any error.
func (t *trampoline) evalReserved(id string, entry core.NodeEntry) (any, bool, error) {
	children := core.ExtractChildIds(entry.Children)

	switch entry.Kind {
	case lambdaParamKind:
		v, err := t.lookupScope(id)
		return v, true, err

	case "error/try":
		if len(children) != 2 {
			return nil, false, ErrBadChildIndex.New(id, entry.Kind, len(children))
		}
		t.logTrace(id, entry.Kind, "attempt")
		value, err := t.run(children[0])
		if err == nil {
			return value, t.tainted[children[0]], nil
		}
		t.logTrace(id, entry.Kind, "fallback")
		value, err = t.run(children[1])
		return value, t.tainted[children[1]], err

	case "error/attempt":
		if len(children) != 1 {
			return nil, false, ErrBadChildIndex.New(id, entry.Kind, len(children))
		}
		value, err := t.run(children[0])
		if err != nil {
			return map[string]any{"ok": false, "err": err.Error()}, false, nil
		}
		return map[string]any{"ok": true, "value": value}, t.tainted[children[0]], nil

	case "error/guard":
		if len(children) != 2 {
			return nil, false, ErrBadChildIndex.New(id, entry.Kind, len(children))
		}
		cond, err := t.run(children[0])
		if err != nil {
			return nil, false, err
		}
		ok, _ := cond.(bool)
		if !ok {
			return nil, false, ErrGuardFailed.New(id)
		}
		value, err := t.run(children[1])
		return value, t.tainted[children[0]] || t.tainted[children[1]], err

	case "error/settle":
		fulfilled := make([]any, 0, len(children))
		rejected := make([]any, 0)
		anyTainted := false
		for _, c := range children {
			v, err := t.run(c)
			if err != nil {
				rejected = append(rejected, err.Error())
				continue
			}
			fulfilled = append(fulfilled, v)
			if t.tainted[c] {
				anyTainted = true
			}
		}
		return map[string]any{"fulfilled": fulfilled, "rejected": rejected}, anyTainted, nil

	case "st/let":
		if len(children) != 1 {
			return nil, false, ErrBadChildIndex.New(id, entry.Kind, len(children))
		}
		name, _ := entry.Out.(string)
		value, err := t.run(children[0])
		if err != nil {
			return nil, false, err
		}
		t.store[name] = value
		return value, t.tainted[children[0]], nil

	case "st/get":
		name, _ := entry.Out.(string)
		value, ok := t.store[name]
		if !ok {
			return nil, true, ErrUnboundCell.New(name)
		}
		return value, true, nil

	case "st/set":
		if len(children) != 1 {
			return nil, false, ErrBadChildIndex.New(id, entry.Kind, len(children))
		}
		name, _ := entry.Out.(string)
		value, err := t.run(children[0])
		if err != nil {
			return nil, false, err
		}
		t.store[name] = value
		return value, t.tainted[children[0]], nil

	case "st/push":
		if len(children) != 1 {
			return nil, false, ErrBadChildIndex.New(id, entry.Kind, len(children))
		}
		name, _ := entry.Out.(string)
		value, err := t.run(children[0])
		if err != nil {
			return nil, false, err
		}
		existing, _ := t.store[name].([]any)
		updated := append(append([]any(nil), existing...), value)
		t.store[name] = updated
		return updated, t.tainted[children[0]], nil

	default:
		return nil, false, ErrUnknownHandler.New(entry.Kind)
	}
}

// lookupScope searches the scope stack top-down for a binding whose
// ParamID matches id, the node id of the core/lambda_param being read.
func (t *trampoline) lookupScope(id string) (any, error) {
	for i := len(t.scopeStack) - 1; i >= 0; i-- {
		for _, b := range t.scopeStack[i] {
			if b.ParamID == id {
				return b.Value, nil
			}
		}
	}
	return nil, ErrUnboundLambdaParam.New(id)
}

func (t *trampoline) popScope() {
	t.scopeStack = t.scopeStack[:len(t.scopeStack)-1]
}
