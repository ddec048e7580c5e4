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

func (t *trampoline) enabled() bool {
	return t.logger != nil && t.logger.IsLevelEnabled(logrus.DebugLevel)
}

func (t *trampoline) fields(id, kind string) logrus.Fields {
	return logrus.Fields{"run_id": t.runID, "id": id, "kind": kind}
}

func (t *trampoline) logPush(id, kind string) {
	if !t.enabled() {
		return
	}
	t.logger.WithFields(t.fields(id, kind)).Debug("fold: push frame")
}

func (t *trampoline) logReturn(id, kind string, tainted bool) {
	if !t.enabled() {
		return
	}
	fields := t.fields(id, kind)
	fields["tainted"] = tainted
	t.logger.WithFields(fields).Debug("fold: frame returned")
}

func (t *trampoline) logMemoHit(id, kind string) {
	if !t.enabled() {
		return
	}
	t.logger.WithFields(t.fields(id, kind)).Debug("fold: memo hit")
}

func (t *trampoline) logTrace(id, kind, note string) {
	if !t.enabled() {
		return
	}
	fields := t.fields(id, kind)
	fields["note"] = note
	t.logger.WithFields(fields).Debug("fold: reserved-kind step")
}
