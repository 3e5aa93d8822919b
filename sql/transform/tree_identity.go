// Copyright 2024 The joinreorder Authors.
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

// Package transform implements bottom-up rewriting for sql.Expression
// trees, in the style of the teacher's own transform package: rebuild a
// node only if one of its children actually changed.
package transform

// TreeIdentity reports whether a transformation produced a structurally
// new tree or returned the original unchanged. Callers use this to avoid
// reallocating parents whose children didn't actually change.
type TreeIdentity bool

const (
	// SameTree means the transformation returned its input unchanged.
	SameTree TreeIdentity = false
	// NewTree means the transformation produced a new value.
	NewTree TreeIdentity = true
)

// Coalesce combines two TreeIdentity values: the result is NewTree if
// either input is.
func (t TreeIdentity) Coalesce(other TreeIdentity) TreeIdentity {
	return t || other
}
