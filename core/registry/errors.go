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

// Package registry composes a concrete Registry (kinds, shapes, lifts,
// traits and a defaults-plus-overrides interpreter) out of a set of
// plugins, and exposes it as the app()/fold() entry point an embedder
// actually calls.
package registry

import goerrors "gopkg.in/src-d/go-errors.v1"

// ErrNoInterpreter is raised when a plugin declares node kinds but neither
// its own default_interpreter nor the caller's overrides supply a handler
// for one of them.
var ErrNoInterpreter = goerrors.NewKind("plugin %q declares kinds with no default handler or override")
