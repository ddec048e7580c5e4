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

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/latticeforge/tfkernel/core"
	"github.com/latticeforge/tfkernel/core/registry"
	"github.com/latticeforge/tfkernel/internal/fixtures/arith"
)

type incompletePlugin struct{}

func (incompletePlugin) Name() string { return "incomplete" }
func (incompletePlugin) Kinds() map[string]core.KindSpec {
	return map[string]core.KindSpec{"incomplete/op": {Inputs: nil, Output: core.Type{}}}
}
func (incompletePlugin) Shapes() map[string]core.Shape             { return nil }
func (incompletePlugin) Lifts() map[string]string                  { return nil }
func (incompletePlugin) Traits() []core.TraitImpl                  { return nil }
func (incompletePlugin) DefaultInterpreter() map[string]core.Handler { return nil }

func TestNewFailsWithoutAnyHandler(t *testing.T) {
	require := require.New(t)
	_, err := registry.New([]core.Plugin{incompletePlugin{}}, nil)
	require.Error(err)
	require.True(registry.ErrNoInterpreter.Is(err))
}

func TestNewSucceedsWithOverrideOnly(t *testing.T) {
	require := require.New(t)
	reg, err := registry.New([]core.Plugin{incompletePlugin{}}, core.Interpreter{
		"incomplete/op": func(_ string, _ core.NodeEntry) core.Coroutine { return nil },
	})
	require.NoError(err)
	require.NotNil(reg)
	require.Contains(reg.Interpreter(), "incomplete/op")
}

func TestSetOverrideAndValidate(t *testing.T) {
	require := require.New(t)
	reg, err := registry.New([]core.Plugin{incompletePlugin{}}, core.Interpreter{
		"incomplete/op": func(_ string, _ core.NodeEntry) core.Coroutine { return nil },
	})
	require.NoError(err)
	require.NoError(reg.Validate())

	reg.SetOverride("incomplete/op", func(_ string, _ core.NodeEntry) core.Coroutine { return nil })
	require.NoError(reg.Validate())
}

func TestOwnerTracksDeclaringPlugin(t *testing.T) {
	require := require.New(t)
	reg, err := registry.New([]core.Plugin{arith.New()}, nil)
	require.NoError(err)

	owner, ok := reg.Owner("num/add")
	require.True(ok)
	require.Equal(arith.Name, owner)

	_, ok = reg.Owner("nonexistent/kind")
	require.False(ok)
}

func TestDumpYAMLReflectsRegisteredKinds(t *testing.T) {
	require := require.New(t)
	reg, err := registry.New([]core.Plugin{arith.New()}, nil)
	require.NoError(err)

	out, err := reg.DumpYAML()
	require.NoError(err)

	var dump map[string]map[string]any
	require.NoError(yaml.Unmarshal(out, &dump))
	entry, ok := dump["num/add"]
	require.True(ok)
	require.Equal(arith.Name, entry["owner"])
}
