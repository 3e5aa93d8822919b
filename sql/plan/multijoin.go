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
	"github.com/queryplan/joinreorder/sql/colindex"
	"github.com/queryplan/joinreorder/sql/expression"
)

// MultiJoin combines two or more relations under a single inner-join
// predicate. Its output is a subset of the cartesian product of all
// inputs, in schema order input[0]++input[1]++...++input[n-1].
//
// MultiJoin is only ever valid between flattening and
// ToLeftDeepJoinWithHeuristicOrdering: it is a transient planning
// placeholder with no physical lowering, and its ColPrunable/ToBatch/
// ToStream analogues below unconditionally refuse to run.
type MultiJoin struct {
	inputs []sql.Node
	on     expression.Condition
}

// Flatten collapses a binary inner join into a single MultiJoin, splicing
// in the inputs and predicate of any direct child that is already a
// MultiJoin. A child that is a plain Join is kept as one opaque input; it
// is not flattened recursively. It returns ok=false if n is not an inner
// Join; that is not an error, it just means the caller should leave n
// as-is.
func Flatten(n sql.Node) (mj *MultiJoin, ok bool) {
	join, isJoin := n.(*Join)
	if !isJoin || join.Type != JoinTypeInner {
		return nil, false
	}

	left, right := join.Left, join.Right
	leftColNum := len(left.Schema())
	rightColNum := len(right.Schema())

	var inputs []sql.Node
	conjuncts := append([]sql.Expression{}, join.Cond.Conjunctions...)

	if leftMJ, isMJ := left.(*MultiJoin); isMJ {
		inputs = append(inputs, leftMJ.inputs...)
		conjuncts = append(conjuncts, leftMJ.on.Conjunctions...)
	} else {
		inputs = append(inputs, left)
	}

	if rightMJ, isMJ := right.(*MultiJoin); isMJ {
		inputs = append(inputs, rightMJ.inputs...)
		shift := colindex.WithShiftOffset(rightColNum, leftColNum)
		shifted := rightMJ.on.RewriteExpr(shift)
		conjuncts = append(conjuncts, shifted.Conjunctions...)
	} else {
		inputs = append(inputs, right)
	}

	return &MultiJoin{inputs: inputs, on: expression.Condition{Conjunctions: conjuncts}}, true
}

// On returns the MultiJoin's combined predicate.
func (m *MultiJoin) On() expression.Condition { return m.on }

// Inputs returns the MultiJoin's children, in schema order.
func (m *MultiJoin) Inputs() []sql.Node { return m.inputs }

// InputColNums returns each input's schema width, in order.
func (m *MultiJoin) InputColNums() []int {
	widths := make([]int, len(m.inputs))
	for i, in := range m.inputs {
		widths[i] = len(in.Schema())
	}
	return widths
}

// CloneWithCond returns a copy of m with its predicate replaced.
func (m *MultiJoin) CloneWithCond(cond expression.Condition) *MultiJoin {
	return &MultiJoin{inputs: m.inputs, on: cond}
}

// Schema implements sql.Node: the concatenation of every input's schema.
func (m *MultiJoin) Schema() sql.Schema {
	var out sql.Schema
	for _, in := range m.inputs {
		out = append(out, in.Schema()...)
	}
	return out
}

// Children implements sql.Node.
func (m *MultiJoin) Children() []sql.Node { return m.inputs }

// Resolved implements sql.Node.
func (m *MultiJoin) Resolved() bool {
	for _, in := range m.inputs {
		if !in.Resolved() {
			return false
		}
	}
	for _, c := range m.on.Conjunctions {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// WithChildren is intentionally unimplemented: MultiJoin is a
// placeholder node with a temporary lifetime that only facilitates join
// reordering during logical planning, and rebuilding it with new
// children has no sensible meaning once it's been constructed.
func (m *MultiJoin) WithChildren(children ...sql.Node) (sql.Node, error) {
	return nil, ErrPlaceholderNodeLowering.New()
}

// ToBatch refuses: see the MultiJoin doc comment.
func (m *MultiJoin) ToBatch() (sql.Node, error) { return nil, ErrPlaceholderNodeLowering.New() }

// ToStream refuses: see the MultiJoin doc comment.
func (m *MultiJoin) ToStream() (sql.Node, error) { return nil, ErrPlaceholderNodeLowering.New() }

// LogicalRewriteForStream refuses: see the MultiJoin doc comment.
func (m *MultiJoin) LogicalRewriteForStream() (sql.Node, colindex.ColumnIndexMapping, error) {
	return nil, colindex.ColumnIndexMapping{}, ErrPlaceholderNodeLowering.New()
}

// PruneCol refuses: see the MultiJoin doc comment.
func (m *MultiJoin) PruneCol(requiredCols []int) (sql.Node, error) {
	return nil, ErrPlaceholderNodeLowering.New()
}

// String implements fmt.Stringer.
func (m *MultiJoin) String() string {
	return fmt.Sprintf("MultiJoin { on: %s }", m.on)
}
