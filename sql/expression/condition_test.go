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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/colindex"
)

func gf(i int) *GetField {
	return NewGetField(i, nil, "c", false)
}

func TestSplitEqByInputColNumsBasic(t *testing.T) {
	// Inputs: A (2 cols, offsets 0-1), B (1 col, offset 2).
	widths := []int{2, 1}
	cond := NewCondition(NewEquals(gf(0), gf(2)))

	eq, residual := cond.SplitEqByInputColNums(widths)

	require.Empty(t, residual.Conjunctions)
	require.Len(t, eq, 1)
	got, ok := eq[sql.NewEdge(0, 1)]
	require.True(t, ok)
	require.Len(t, got.Conjunctions, 1)
}

func TestSplitEqByInputColNumsSelfEdgeIsResidual(t *testing.T) {
	// Both sides reference input 0: not an equality edge, per the open
	// question in spec.md §9.
	widths := []int{2, 1}
	cond := NewCondition(NewEquals(gf(0), gf(1)))

	eq, residual := cond.SplitEqByInputColNums(widths)

	require.Empty(t, eq)
	require.Len(t, residual.Conjunctions, 1)
}

func TestSplitEqByInputColNumsNonEqualityIsResidual(t *testing.T) {
	widths := []int{1, 1}
	notEq := &fakeGreater{left: gf(0), right: gf(1)}
	cond := NewCondition(notEq)

	eq, residual := cond.SplitEqByInputColNums(widths)

	require.Empty(t, eq)
	require.Len(t, residual.Conjunctions, 1)
}

func TestSplitEqByInputColNumsMergesMultiplePredicatesPerEdge(t *testing.T) {
	widths := []int{2, 2}
	cond := NewCondition(
		NewEquals(gf(0), gf(2)),
		NewEquals(gf(1), gf(3)),
	)

	eq, residual := cond.SplitEqByInputColNums(widths)

	require.Empty(t, residual.Conjunctions)
	require.Len(t, eq, 1)
	require.Len(t, eq[sql.NewEdge(0, 1)].Conjunctions, 2)
}

func TestRewriteExprIdentityIsNoop(t *testing.T) {
	cond := NewCondition(NewEquals(gf(0), gf(1)))
	rewritten := cond.RewriteExpr(colindex.Identity(2))
	require.Equal(t, cond, rewritten)
}

func TestRewriteExprThenInverseRoundTrips(t *testing.T) {
	cond := NewCondition(NewEquals(gf(0), gf(3)))
	mapping := colindex.WithShiftOffset(4, 10)

	shifted := cond.RewriteExpr(mapping)
	back := shifted.RewriteExpr(mapping.Inverse())

	require.Equal(t, cond, back)
}

// fakeGreater is a two-child expression that is not *Equals, used to
// exercise the non-equality residual path.
type fakeGreater struct {
	left, right sql.Expression
}

func (f *fakeGreater) Resolved() bool             { return true }
func (f *fakeGreater) Children() []sql.Expression { return []sql.Expression{f.left, f.right} }
func (f *fakeGreater) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	return &fakeGreater{left: children[0], right: children[1]}, nil
}
func (f *fakeGreater) String() string { return "(" + f.left.String() + " > " + f.right.String() + ")" }
