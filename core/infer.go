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

package core

import "github.com/spf13/cast"

// InferPrimitiveTag reports the primitive type tag app()'s literal-lifting
// uses to classify a raw, un-lifted Go value. Typeclass dispatch does not
// call it: core/dispatch reads the operands' declared Output instead. A literal already carries a
// concrete Go type, so classification is primarily a type switch; cast's
// ToBoolE/ToFloat64E/ToStringE are tried in that order as a fallback for
// values an embedder hands in through a looser representation (json.Number,
// a fmt.Stringer, etc.) that don't match one of Go's native kinds directly.
func InferPrimitiveTag(v any) (string, bool) {
	switch v.(type) {
	case bool:
		return "boolean", true
	case string:
		return "string", true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return "number", true
	}
	if _, err := cast.ToBoolE(v); err == nil {
		return "boolean", true
	}
	if _, err := cast.ToFloat64E(v); err == nil {
		return "number", true
	}
	if _, err := cast.ToStringE(v); err == nil {
		return "string", true
	}
	return "", false
}
