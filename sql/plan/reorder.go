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
	"github.com/sirupsen/logrus"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/colindex"
	"github.com/queryplan/joinreorder/sql/expression"
)

// Our heuristic join reordering algorithm tries to perform a left-deep
// join:
//
//  1. Split the join graph (eq join conditions as graph edges) into its
//     connected components. Walk components largest-first: a bigger
//     component offers more join opportunities, so emitting it first
//     keeps related inputs adjacent in the chain and pushes any
//     necessary cross-joins to the tail end.
//  2. For each component, greedily extend a left-deep chain: an edge
//     between two already-placed inputs is folded into the current
//     join's predicate; an edge with exactly one new endpoint grows the
//     chain by one input.
//  3. Cross-join the components' completed chains together, left-deep.
//     No cross-join is emitted for a single connected component.
//  4. Wrap the result in a projection that restores the original column
//     order (skipped if that order didn't change) and a filter carrying
//     every non-equality conjunct.

type edgeCondition struct {
	edge sql.Edge
	cond expression.Condition
}

// ToLeftDeepJoinWithHeuristicOrdering implements the reorderer. It
// returns ErrConnectingEdgeNotFound or ErrNoRelationsFound if one of the
// two internal invariants is violated; both are unreachable for
// well-formed input.
func (m *MultiJoin) ToLeftDeepJoinWithHeuristicOrdering(ctx *sql.Context) (sql.Node, error) {
	widths := m.InputColNums()

	eqEdges, residual := m.on.SplitEqByInputColNums(widths)

	labeller := NewConnectedComponentLabeller(len(m.inputs))
	for edge := range eqEdges {
		labeller.AddEdge(edge.A, edge.B)
	}
	components := labeller.GetComponents()

	var joinOrdering []int
	var componentJoins []sql.Node

	for _, component := range components {
		var conditions []edgeCondition
		for _, e := range component.Edges {
			if cond, ok := eqEdges[e]; ok {
				conditions = append(conditions, edgeCondition{edge: e, cond: cond})
				delete(eqEdges, e)
			}
		}
		if len(conditions) == 0 {
			continue
		}

		componentStart := len(joinOrdering)
		seed := conditions[0]
		conditions = conditions[1:]
		joinOrdering = append(joinOrdering, seed.edge.A, seed.edge.B)

		mapping := m.mappingFromOrdering(widths, joinOrdering[componentStart:]).Inverse()
		join := NewInnerJoin(m.inputs[seed.edge.A], m.inputs[seed.edge.B], seed.cond.RewriteExpr(mapping))

		for len(conditions) > 0 {
			var remaining []edgeCondition
			progressed := false

			for _, ec := range conditions {
				aPlaced := containsInt(joinOrdering, ec.edge.A)
				bPlaced := containsInt(joinOrdering, ec.edge.B)

				switch {
				case aPlaced && bPlaced:
					mapping := m.mappingFromOrdering(widths, joinOrdering[componentStart:]).Inverse()
					join = join.CloneWithCond(join.On().And(ec.cond.RewriteExpr(mapping)))
					progressed = true
				case aPlaced || bPlaced:
					newInput := ec.edge.B
					if bPlaced {
						newInput = ec.edge.A
					}
					joinOrdering = append(joinOrdering, newInput)
					mapping := m.mappingFromOrdering(widths, joinOrdering[componentStart:]).Inverse()
					join = NewInnerJoin(join, m.inputs[newInput], ec.cond.RewriteExpr(mapping))
					progressed = true
				default:
					remaining = append(remaining, ec)
				}
			}

			if !progressed {
				// Unreachable for a connected component: every edge
				// eventually touches the growing prefix. Guards against a
				// bug in the component partitioning above.
				return nil, ErrConnectingEdgeNotFound.New()
			}
			conditions = remaining
		}

		componentJoins = append(componentJoins, join)
	}

	// Singleton inputs with no equality edge to anything else.
	for i := range m.inputs {
		if !containsInt(joinOrdering, i) {
			joinOrdering = append(joinOrdering, i)
			componentJoins = append(componentJoins, m.inputs[i])
		}
	}

	if len(componentJoins) == 0 {
		return nil, ErrNoRelationsFound.New()
	}

	// Cross-join the components' chains together, left-deep.
	output := componentJoins[0]
	for _, next := range componentJoins[1:] {
		ctx.GetLogger().WithFields(logrus.Fields{
			"component_left_width":  len(output.Schema()),
			"component_right_width": len(next.Schema()),
		}).Debug("multijoin: cross-joining disconnected components")
		output = NewCrossJoin(output, next)
	}

	if !isIdentityOrdering(joinOrdering) {
		ctx.GetLogger().WithField("ordering", joinOrdering).Debug("multijoin: emitting reordering projection")
		output = WithMapping(output, m.mappingFromOrdering(widths, joinOrdering))
	}

	// non_eq_cond (residual) is pushed back down to individual joins by a
	// later filter-pushdown pass; this reorderer only has to place it at
	// the top once.
	return FilterCreate(output, residual), nil
}

// mappingFromOrdering builds the ColumnIndexMapping whose domain is the
// physical column position induced by laying inputs out in order, and
// whose range is the original MultiJoin's column index (offsets computed
// from the full, unreordered widths).
func (m *MultiJoin) mappingFromOrdering(widths []int, order []int) colindex.ColumnIndexMapping {
	offsets := make([]int, len(widths)+1)
	for i, w := range widths {
		offsets[i+1] = offsets[i] + w
	}
	total := offsets[len(widths)]

	localWidth := 0
	for _, inputIndex := range order {
		localWidth += widths[inputIndex]
	}

	entries := make([]int, localWidth)
	pos := 0
	for _, inputIndex := range order {
		for r := 0; r < widths[inputIndex]; r++ {
			entries[pos] = offsets[inputIndex] + r
			pos++
		}
	}
	return colindex.WithTargetSize(entries, total)
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func isIdentityOrdering(order []int) bool {
	for i, v := range order {
		if i != v {
			return false
		}
	}
	return true
}
