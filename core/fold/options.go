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

import "github.com/sirupsen/logrus"

// Options tunes one Fold invocation. The zero value is valid: default
// volatile kinds, no run-id callback, no logging.
type Options struct {
	// VolatileKinds is unioned with DefaultVolatileKinds() for this run.
	VolatileKinds map[string]bool

	// OnRunID, if set, receives the uuid tagging this fold invocation
	// before evaluation starts, so log lines from concurrent folds can be
	// told apart.
	OnRunID func(runID string)

	// Logger, if set and at logrus.DebugLevel, makes the trampoline emit
	// structured trace lines for frame pushes, frame returns, memo hits and
	// reserved-kind steps.
	// Nil (the default) means no logging.
	Logger *logrus.Logger
}

// DefaultVolatileKinds returns the baseline set of kinds that always bypass
// memoization: core/lambda_param (re-read per lexical application) and
// st/get (observes the mutable state store).
func DefaultVolatileKinds() map[string]bool {
	return map[string]bool{
		lambdaParamKind: true,
		"st/get":        true,
	}
}

func (o *Options) volatileSet() map[string]bool {
	out := DefaultVolatileKinds()
	if o == nil {
		return out
	}
	for k := range o.VolatileKinds {
		out[k] = true
	}
	return out
}

func (o *Options) logger() *logrus.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}
