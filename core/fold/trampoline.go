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

import (
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/latticeforge/tfkernel/core"
)

// frame is one entry on the trampoline's explicit stack: a node being
// evaluated, the coroutine driving its handler, and whether any child it
// has consumed so far was volatile or tainted.
type frame struct {
	id           string
	entry        core.NodeEntry
	co           core.Coroutine
	started      bool
	childTainted bool
	scoped       bool
}

// trampoline holds the state shared across one Fold invocation: the
// read-only adjacency map and interpreter, the volatile set, the
// per-invocation memo and taint tables, and the scope stack for scoped
// child requests.
type trampoline struct {
	adj      core.Adjacency
	interp   core.Interpreter
	volatile map[string]bool

	memo    map[string]any
	tainted map[string]bool

	scopeStack [][]core.Binding

	// store is the fresh-per-fold mutable key->value cell table backing
	// st/let, st/get, st/set and st/push. Like the scope stack, it has no
	// home in the Handler/Coroutine contract (a handler has no way to reach
	// state shared across sibling nodes), so the reserved-kind forms in
	// reserved.go read and write it directly.
	store map[string]any

	logger *logrus.Logger
	runID  string
}

// Fold walks expr with interp, driving each node's handler to completion
// via the stack-safe trampoline described by core.Coroutine, and returns
// the root's computed value.
func Fold(expr core.NExpr, interp core.Interpreter, opts *Options) (any, error) {
	runUUID, err := uuid.NewV4()
	if err != nil {
		return nil, ErrRunID.New(err)
	}
	runID := runUUID.String()
	if opts != nil && opts.OnRunID != nil {
		opts.OnRunID(runID)
	}
	t := &trampoline{
		adj:      expr.Adj,
		interp:   interp,
		volatile: opts.volatileSet(),
		memo:     make(map[string]any),
		tainted:  make(map[string]bool),
		store:    make(map[string]any),
		logger:   opts.logger(),
		runID:    runID,
	}
	return t.run(expr.RootID)
}

// run evaluates the subtree rooted at id to completion. It is the
// trampoline's single entry point: called once for the whole fold, and
// called again (sharing this trampoline's memo/tainted/scope state) by
// evalReserved when a reserved control-flow kind needs to know whether
// evaluating one of its children failed. That nested use trades a bounded
// amount of Go call-stack depth — proportional to how deeply error/try and
// friends are nested, not to the DAG's overall depth — for the ability to
// express catch/fallback semantics at all.
func (t *trampoline) run(rootID string) (any, error) {
	entry, ok := t.adj[rootID]
	if !ok {
		return nil, ErrMissingNode.New(rootID)
	}

	if isReservedKind(entry.Kind) {
		value, childTainted, err := t.evalReserved(rootID, entry)
		if err != nil {
			return nil, err
		}
		t.recordResult(rootID, entry.Kind, childTainted, value)
		return value, nil
	}

	if t.volatile[entry.Kind] || t.tainted[rootID] {
		delete(t.memo, rootID)
	} else if v, hit := t.memo[rootID]; hit {
		return v, nil
	}

	var stack []*frame
	if err := t.push(&stack, rootID, false); err != nil {
		return nil, err
	}

	var pending any

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		var step core.Step
		var err error
		if top.started {
			step, err = top.co.Resume(pending)
		} else {
			top.started = true
			step, err = top.co.Start()
		}
		if err != nil {
			return nil, err
		}

		switch step.Kind {
		case core.StepReturn:
			stack = stack[:len(stack)-1]
			if top.scoped {
				t.popScope()
			}
			isTainted := t.recordResult(top.id, top.entry.Kind, top.childTainted, step.Value)
			t.logReturn(top.id, top.entry.Kind, isTainted)
			if len(stack) == 0 {
				return step.Value, nil
			}
			if isTainted {
				stack[len(stack)-1].childTainted = true
			}
			pending = step.Value

		case core.StepYield, core.StepYieldScoped:
			childIDs := core.ExtractChildIds(top.entry.Children)
			if step.Index < 0 || step.Index >= len(childIDs) {
				return nil, ErrBadChildIndex.New(top.id, top.entry.Kind, step.Index)
			}
			childID := childIDs[step.Index]
			childEntry, ok := t.adj[childID]
			if !ok {
				return nil, ErrMissingNode.New(childID)
			}

			if isReservedKind(childEntry.Kind) {
				if step.Kind == core.StepYieldScoped {
					t.scopeStack = append(t.scopeStack, step.Bindings)
				}
				value, childTainted, rerr := t.evalReserved(childID, childEntry)
				if step.Kind == core.StepYieldScoped {
					t.popScope()
				}
				if rerr != nil {
					return nil, rerr
				}
				if t.recordResult(childID, childEntry.Kind, childTainted, value) {
					top.childTainted = true
				}
				pending = value
				continue
			}

			volatileChild := t.volatile[childEntry.Kind]
			taintedChild := t.tainted[childID]
			if volatileChild || taintedChild {
				delete(t.memo, childID)
				top.childTainted = true
			} else if v, hit := t.memo[childID]; hit {
				t.logMemoHit(childID, childEntry.Kind)
				pending = v
				continue
			}

			if step.Kind == core.StepYieldScoped {
				t.scopeStack = append(t.scopeStack, step.Bindings)
			}
			if err := t.push(&stack, childID, step.Kind == core.StepYieldScoped); err != nil {
				return nil, err
			}
		}
	}
	return nil, ErrRootNotEvaluated.New(rootID)
}

// recordResult applies the standard memoize-unless-tainted rule for a
// completed node and returns whether it ended up tainted.
func (t *trampoline) recordResult(id, kind string, childTainted bool, value any) bool {
	isTainted := t.volatile[kind] || childTainted
	if isTainted {
		t.tainted[id] = true
	} else {
		t.memo[id] = value
	}
	return isTainted
}

func (t *trampoline) push(stack *[]*frame, id string, scoped bool) error {
	entry, ok := t.adj[id]
	if !ok {
		return ErrMissingNode.New(id)
	}
	handler, ok := t.interp[entry.Kind]
	if !ok {
		return ErrUnknownHandler.New(entry.Kind)
	}
	co := handler(id, entry)
	*stack = append(*stack, &frame{id: id, entry: entry, co: co, scoped: scoped})
	t.logPush(id, entry.Kind)
	return nil
}
