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
)

// Graph: 0-1-2  3-4-5  6
// => 0-1-2-3-4-5  6
func TestConnectedComponentLabellerChainMerge(t *testing.T) {
	labeller := NewConnectedComponentLabeller(7)
	labeller.AddEdge(0, 1)
	labeller.AddEdge(1, 2)

	labeller.AddEdge(3, 4)
	labeller.AddEdge(4, 5)

	require.Len(t, labeller.GetComponents(), 2)

	labeller.AddEdge(2, 3)

	require.Len(t, labeller.GetComponents(), 1)

	labeller.AddEdge(5, 6)

	components := labeller.GetComponents()
	require.Len(t, components, 1)
	require.Equal(t, []sql.Edge{
		{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 4}, {A: 4, B: 5}, {A: 5, B: 6},
	}, components[0].Edges)
}

func TestConnectedComponentLabellerDisjoint(t *testing.T) {
	labeller := NewConnectedComponentLabeller(5)
	labeller.AddEdge(0, 1)
	labeller.AddEdge(3, 4)

	components := labeller.GetComponents()
	require.Len(t, components, 2)
	// Vertex 2 is an isolated singleton and has no edges, so it is not
	// represented in the component list at all.
	for _, c := range components {
		require.Len(t, c.Edges, 1)
	}
}

func TestConnectedComponentLabellerSelfMergeIsNoop(t *testing.T) {
	labeller := NewConnectedComponentLabeller(3)
	labeller.AddEdge(0, 1)
	labeller.AddEdge(1, 0)

	components := labeller.GetComponents()
	require.Len(t, components, 1)
	require.Len(t, components[0].Edges, 1)
}

// GetComponents must be safe to call repeatedly without perturbing
// subsequent results, since it no longer consumes or mutates internal
// merge state -- it derives everything fresh from the lvlath graph.
func TestGetComponentsIsRepeatable(t *testing.T) {
	labeller := NewConnectedComponentLabeller(4)
	labeller.AddEdge(0, 1)
	labeller.AddEdge(2, 3)

	first := labeller.GetComponents()
	second := labeller.GetComponents()
	require.Equal(t, first, second)
}
