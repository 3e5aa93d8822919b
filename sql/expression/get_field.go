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

// Package expression implements the scalar-expression algebra the
// join-reordering core depends on: column references, equality, and
// conjunction, plus the Condition container and its column-remapping and
// equality-edge-splitting operations.
package expression

import (
	"fmt"

	"github.com/queryplan/joinreorder/sql"
)

// GetField references a single column of the schema an expression is
// evaluated against, by position.
type GetField struct {
	index    int
	fieldType sql.Type
	name     string
	nullable bool
}

// NewGetField creates a column reference at index, with the given type,
// display name, and nullability.
func NewGetField(index int, fieldType sql.Type, name string, nullable bool) *GetField {
	return &GetField{index: index, fieldType: fieldType, name: name, nullable: nullable}
}

// Index returns the referenced column position.
func (g *GetField) Index() int { return g.index }

// Resolved implements sql.Expression.
func (g *GetField) Resolved() bool { return true }

// Children implements sql.Expression.
func (g *GetField) Children() []sql.Expression { return nil }

// WithChildren implements sql.Expression.
func (g *GetField) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, fmt.Errorf("expression.GetField: expected 0 children, got %d", len(children))
	}
	return g, nil
}

// WithIndex returns a copy of g referencing a different column position.
func (g *GetField) WithIndex(index int) *GetField {
	cp := *g
	cp.index = index
	return &cp
}

// String implements fmt.Stringer.
func (g *GetField) String() string {
	return g.name
}
