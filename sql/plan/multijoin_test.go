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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/queryplan/joinreorder/sql"
	"github.com/queryplan/joinreorder/sql/expression"
)

func oneColSchema(name string) sql.Schema {
	return sql.Schema{{Name: name, Source: name}}
}

func table(name string) *ResolvedTable {
	return NewResolvedTable(name, oneColSchema(name+".0"))
}

func eqCol(left, right int) expression.Condition {
	return expression.NewCondition(expression.NewEquals(
		expression.NewGetField(left, nil, "l", false),
		expression.NewGetField(right, nil, "r", false),
	))
}

func TestFlattenNotAJoinReturnsFalse(t *testing.T) {
	_, ok := Flatten(table("a"))
	require.False(t, ok)
}

func TestFlattenNotInnerJoinReturnsFalse(t *testing.T) {
	j := NewLeftOuterJoin(table("a"), table("b"), eqCol(0, 1))
	_, ok := Flatten(j)
	require.False(t, ok)
}

func TestFlattenTwoWayJoin(t *testing.T) {
	j := NewInnerJoin(table("a"), table("b"), eqCol(0, 1))
	mj, ok := Flatten(j)
	require.True(t, ok)
	require.Len(t, mj.Inputs(), 2)
	require.Equal(t, []int{1, 1}, mj.InputColNums())
}

func TestFlattenNestedLeftMultiJoin(t *testing.T) {
	ab := NewInnerJoin(table("a"), table("b"), eqCol(0, 1))
	abc := NewInnerJoin(ab, table("c"), eqCol(1, 2))

	mj, ok := Flatten(abc)
	require.True(t, ok)
	require.Len(t, mj.Inputs(), 2)

	mj2, ok := Flatten(NewInnerJoin(mj, table("d"), eqCol(2, 3)))
	require.True(t, ok)
	require.Len(t, mj2.Inputs(), 3)
	require.Len(t, mj2.On().Conjunctions, 2)
}

func TestFlattenNestedRightMultiJoinShiftsOffsets(t *testing.T) {
	// left: single table a (1 col, offset 0)
	// right: MultiJoin(b,c) with predicate b.0==c.0, i.e. local 0==1
	bc, ok := Flatten(NewInnerJoin(table("b"), table("c"), eqCol(0, 1)))
	require.True(t, ok)

	root := NewInnerJoin(table("a"), bc, eqCol(0, 1))
	mj, ok := Flatten(root)
	require.True(t, ok)
	require.Len(t, mj.Inputs(), 3)

	// bc's original predicate (0==1) must be shifted by the left width (1)
	// to (1==2) in the fused MultiJoin's coordinate system.
	eq, residual := mj.On().SplitEqByInputColNums(mj.InputColNums())
	require.Empty(t, residual.Conjunctions)
	require.Len(t, eq, 2)
	_, ok = eq[sql.NewEdge(1, 2)]
	require.True(t, ok, "expected shifted edge (1,2) from the fused right MultiJoin")
}

func TestMultiJoinLoweringMethodsRefuse(t *testing.T) {
	j := NewInnerJoin(table("a"), table("b"), eqCol(0, 1))
	mj, _ := Flatten(j)

	_, err := mj.ToBatch()
	require.Error(t, err)
	require.True(t, ErrPlaceholderNodeLowering.Is(err))

	_, err = mj.ToStream()
	require.Error(t, err)
	require.True(t, ErrPlaceholderNodeLowering.Is(err))

	_, _, err = mj.LogicalRewriteForStream()
	require.Error(t, err)
	require.True(t, ErrPlaceholderNodeLowering.Is(err))

	_, err = mj.PruneCol([]int{0})
	require.Error(t, err)
	require.True(t, ErrPlaceholderNodeLowering.Is(err))

	_, err = mj.WithChildren()
	require.Error(t, err)
	require.True(t, ErrPlaceholderNodeLowering.Is(err))
}
