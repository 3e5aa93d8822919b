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

package sql

import "fmt"

// Edge is a canonicalized unordered pair of input indices: A is always
// the smaller of the two. It identifies a join-graph edge, i.e. an
// equality predicate between two distinct MultiJoin inputs.
type Edge struct {
	A, B int
}

// NewEdge canonicalizes (i,j) into an Edge with A < B.
func NewEdge(i, j int) Edge {
	if i < j {
		return Edge{A: i, B: j}
	}
	return Edge{A: j, B: i}
}

// String implements fmt.Stringer.
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.A, e.B)
}
