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

// Package plan implements the plan-node side of the join-reordering
// core: the MultiJoin placeholder, its flattener, the connected-component
// labeller, and the left-deep heuristic reorderer, plus the handful of
// ordinary binary-join / filter / project nodes the reorderer emits.
package plan

import (
	"fmt"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/expression"
)

// JoinType identifies the semantics of a Join node. Only Inner is
// flattened into a MultiJoin; outer/semi/anti joins stay as ordinary
// 2-way joins, per the scope of this module.
type JoinType int

const (
	// JoinTypeInner is a commutative, associative inner join.
	JoinTypeInner JoinType = iota
	// JoinTypeLeftOuter is a left outer join; never flattened.
	JoinTypeLeftOuter
	// JoinTypeFullOuter is a full outer join; never flattened.
	JoinTypeFullOuter
)

func (t JoinType) String() string {
	switch t {
	case JoinTypeInner:
		return "innerjoin"
	case JoinTypeLeftOuter:
		return "leftjoin"
	case JoinTypeFullOuter:
		return "fulljoin"
	default:
		return "join"
	}
}

// Join is a binary join node: an ordinary two-input join, as opposed to
// the n-ary MultiJoin placeholder.
type Join struct {
	Left, Right sql.Node
	Type        JoinType
	Cond        expression.Condition
}

// NewInnerJoin builds a two-input inner join. cond may have zero
// conjuncts, in which case the join is a cross product.
func NewInnerJoin(left, right sql.Node, cond expression.Condition) *Join {
	return &Join{Left: left, Right: right, Type: JoinTypeInner, Cond: cond}
}

// NewCrossJoin builds an inner join with no predicate: a cartesian
// product of left and right.
func NewCrossJoin(left, right sql.Node) *Join {
	return NewInnerJoin(left, right, expression.Condition{})
}

// NewLeftOuterJoin builds a two-input left outer join.
func NewLeftOuterJoin(left, right sql.Node, cond expression.Condition) *Join {
	return &Join{Left: left, Right: right, Type: JoinTypeLeftOuter, Cond: cond}
}

// NewFullOuterJoin builds a two-input full outer join.
func NewFullOuterJoin(left, right sql.Node, cond expression.Condition) *Join {
	return &Join{Left: left, Right: right, Type: JoinTypeFullOuter, Cond: cond}
}

// On returns the join's predicate.
func (j *Join) On() expression.Condition { return j.Cond }

// CloneWithCond returns a copy of j with its predicate replaced.
func (j *Join) CloneWithCond(cond expression.Condition) *Join {
	cp := *j
	cp.Cond = cond
	return &cp
}

// Schema implements sql.Node: the concatenation of both children's
// schemas.
func (j *Join) Schema() sql.Schema {
	return append(append(sql.Schema{}, j.Left.Schema()...), j.Right.Schema()...)
}

// Children implements sql.Node.
func (j *Join) Children() []sql.Node { return []sql.Node{j.Left, j.Right} }

// Resolved implements sql.Node.
func (j *Join) Resolved() bool {
	if !j.Left.Resolved() || !j.Right.Resolved() {
		return false
	}
	for _, c := range j.Cond.Conjunctions {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// IsCross reports whether this join has no predicate (a cartesian
// product).
func (j *Join) IsCross() bool { return len(j.Cond.Conjunctions) == 0 }

// String implements fmt.Stringer.
func (j *Join) String() string {
	if j.IsCross() {
		return fmt.Sprintf("CrossJoin(%s, %s)", j.Left, j.Right)
	}
	return fmt.Sprintf("%s(%s, %s, %s)", j.Type, j.Left, j.Right, j.Cond)
}
