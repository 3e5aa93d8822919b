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
	"strings"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/colindex"
	"github.com/queryplan/joinreorder/sql/transform"
)

// Condition is a conjunctive list of boolean predicates. It is the only
// surface the join-reordering core requires from the expression algebra:
// conjunction, equality-edge extraction, and column remapping.
type Condition struct {
	Conjunctions []sql.Expression
}

// NewCondition wraps a (possibly empty) list of conjuncts.
func NewCondition(conjuncts ...sql.Expression) Condition {
	return Condition{Conjunctions: conjuncts}
}

// And returns the conjunction of c and other.
func (c Condition) And(other Condition) Condition {
	conjuncts := make([]sql.Expression, 0, len(c.Conjunctions)+len(other.Conjunctions))
	conjuncts = append(conjuncts, c.Conjunctions...)
	conjuncts = append(conjuncts, other.Conjunctions...)
	return Condition{Conjunctions: conjuncts}
}

// Expr collapses c into a single expression, or nil if c has no
// conjuncts.
func (c Condition) Expr() sql.Expression {
	if len(c.Conjunctions) == 0 {
		return nil
	}
	return JoinAnd(c.Conjunctions...)
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	parts := make([]string, len(c.Conjunctions))
	for i, e := range c.Conjunctions {
		parts[i] = e.String()
	}
	return strings.Join(parts, " AND ")
}

// RewriteExpr substitutes every column reference in every conjunct
// through mapping, returning a new Condition. Applying the identity
// mapping is a no-op; applying m and then m.Inverse() recovers the
// original, since every mapping this module builds is injective.
func (c Condition) RewriteExpr(mapping colindex.ColumnIndexMapping) Condition {
	rewritten := make([]sql.Expression, len(c.Conjunctions))
	for i, e := range c.Conjunctions {
		rewritten[i] = rewriteExpr(e, mapping)
	}
	return Condition{Conjunctions: rewritten}
}

func rewriteExpr(e sql.Expression, mapping colindex.ColumnIndexMapping) sql.Expression {
	result, _, err := transform.TransformExpr(e, func(e sql.Expression) (sql.Expression, transform.TreeIdentity, error) {
		gf, ok := e.(*GetField)
		if !ok {
			return e, transform.SameTree, nil
		}
		target, ok := mapping.Map(gf.Index())
		if !ok || target == gf.Index() {
			return e, transform.SameTree, nil
		}
		return gf.WithIndex(target), transform.NewTree, nil
	})
	if err != nil {
		// rewriteExpr only ever replaces a GetField with another GetField,
		// which never fails WithChildren; a non-nil error here means a
		// caller handed us a malformed expression tree.
		panic(err)
	}
	return result
}

// SplitEqByInputColNums partitions c into equality edges between distinct
// inputs (eq) and everything else (residual). widths[i] is the column
// count of input i; an expression's input is identified by which
// cumulative-offset bucket its GetField index falls into. Equalities
// between two columns of the *same* input are conservatively routed to
// residual, matching the open question noted in the source this algebra
// is modeled on: the contract is unspecified for that case, so the safe
// interpretation is taken.
func (c Condition) SplitEqByInputColNums(widths []int) (map[sql.Edge]Condition, Condition) {
	offsets := make([]int, len(widths)+1)
	for i, w := range widths {
		offsets[i+1] = offsets[i] + w
	}
	inputOf := func(col int) int {
		for i := 0; i < len(widths); i++ {
			if col >= offsets[i] && col < offsets[i+1] {
				return i
			}
		}
		return -1
	}

	eq := make(map[sql.Edge]Condition)
	var residual []sql.Expression

	for _, conjunct := range c.Conjunctions {
		eqExpr, ok := conjunct.(*Equals)
		if !ok {
			residual = append(residual, conjunct)
			continue
		}
		leftField, leftOK := eqExpr.Left.(*GetField)
		rightField, rightOK := eqExpr.Right.(*GetField)
		if !leftOK || !rightOK {
			residual = append(residual, conjunct)
			continue
		}
		li, ri := inputOf(leftField.Index()), inputOf(rightField.Index())
		if li == -1 || ri == -1 || li == ri {
			residual = append(residual, conjunct)
			continue
		}
		edge := sql.NewEdge(li, ri)
		existing := eq[edge]
		eq[edge] = existing.And(NewCondition(conjunct))
	}

	return eq, Condition{Conjunctions: residual}
}
