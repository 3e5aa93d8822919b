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

package expression

import (
	"fmt"

	"github.com/queryplan/joinreorder/sql"
)

// Equals is a binary equality predicate. When both sides are GetFields
// referencing different inputs of a MultiJoin, it is an equality edge;
// otherwise it is a residual predicate.
type Equals struct {
	Left, Right sql.Expression
}

// NewEquals builds an equality predicate between left and right.
func NewEquals(left, right sql.Expression) *Equals {
	return &Equals{Left: left, Right: right}
}

// Resolved implements sql.Expression.
func (e *Equals) Resolved() bool { return e.Left.Resolved() && e.Right.Resolved() }

// Children implements sql.Expression.
func (e *Equals) Children() []sql.Expression { return []sql.Expression{e.Left, e.Right} }

// WithChildren implements sql.Expression.
func (e *Equals) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expression.Equals: expected 2 children, got %d", len(children))
	}
	return NewEquals(children[0], children[1]), nil
}

// String implements fmt.Stringer.
func (e *Equals) String() string {
	return fmt.Sprintf("(%s = %s)", e.Left, e.Right)
}

// And is a two-child conjunction. JoinAnd builds n-ary conjunctions as a
// left-associated chain of And nodes, mirroring how the teacher's
// expression package builds conjunctions out of binary operators.
type And struct {
	Left, Right sql.Expression
}

// NewAnd builds a conjunction of left and right.
func NewAnd(left, right sql.Expression) *And {
	return &And{Left: left, Right: right}
}

// Resolved implements sql.Expression.
func (a *And) Resolved() bool { return a.Left.Resolved() && a.Right.Resolved() }

// Children implements sql.Expression.
func (a *And) Children() []sql.Expression { return []sql.Expression{a.Left, a.Right} }

// WithChildren implements sql.Expression.
func (a *And) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, fmt.Errorf("expression.And: expected 2 children, got %d", len(children))
	}
	return NewAnd(children[0], children[1]), nil
}

// String implements fmt.Stringer.
func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

// JoinAnd folds exprs into a single conjunction, left to right. It panics
// if exprs is empty; callers are expected to special-case an empty slice
// (see Condition.Expr).
func JoinAnd(exprs ...sql.Expression) sql.Expression {
	if len(exprs) == 0 {
		panic("expression.JoinAnd: no expressions given")
	}
	result := exprs[0]
	for _, e := range exprs[1:] {
		result = NewAnd(result, e)
	}
	return result
}
