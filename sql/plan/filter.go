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

package plan

import (
	"fmt"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/expression"
)

// Filter applies a residual predicate above its child. It is a no-op
// pass-through on schema.
type Filter struct {
	Child sql.Node
	Cond  expression.Condition
}

// NewFilter builds a Filter node over child.
func NewFilter(child sql.Node, cond expression.Condition) *Filter {
	return &Filter{Child: child, Cond: cond}
}

// FilterCreate mirrors the teacher's convention of a Create constructor
// that elides the wrapper entirely when there is nothing to filter.
func FilterCreate(child sql.Node, cond expression.Condition) sql.Node {
	if len(cond.Conjunctions) == 0 {
		return child
	}
	return NewFilter(child, cond)
}

// Schema implements sql.Node.
func (f *Filter) Schema() sql.Schema { return f.Child.Schema() }

// Children implements sql.Node.
func (f *Filter) Children() []sql.Node { return []sql.Node{f.Child} }

// Resolved implements sql.Node.
func (f *Filter) Resolved() bool {
	if !f.Child.Resolved() {
		return false
	}
	for _, c := range f.Cond.Conjunctions {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (f *Filter) String() string {
	return fmt.Sprintf("Filter(%s, %s)", f.Child, f.Cond)
}
