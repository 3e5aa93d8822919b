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
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/graph/core"

	"github.com/queryplan/joinreorder/sql"
)

// ConnectedComponentLabeller groups join-graph vertices (MultiJoin input
// indices) into connected components. Equality edges are recorded
// directly into a *core.Graph (lvlath) as they arrive; GetComponents
// then derives component membership and each component's edge set by
// walking that graph's own adjacency list breadth-first, rather than
// maintaining a second, hand-rolled copy of the adjacency structure
// alongside it.
type ConnectedComponentLabeller struct {
	graph *core.Graph
	n     int
}

// NewConnectedComponentLabeller initializes a labeller over n singleton
// vertices 0..n-1, with no edges yet.
func NewConnectedComponentLabeller(n int) *ConnectedComponentLabeller {
	g := core.NewGraph(false, false)
	for i := 0; i < n; i++ {
		g.AddVertex(&core.Vertex{ID: vertexID(i), Metadata: map[string]interface{}{}})
	}
	return &ConnectedComponentLabeller{graph: g, n: n}
}

func vertexID(v int) string { return strconv.Itoa(v) }

func vertexIndex(id string) int {
	v, err := strconv.Atoi(id)
	if err != nil {
		// Every vertex ID this labeller ever hands to lvlath comes from
		// vertexID, so a malformed ID here means the graph was mutated by
		// something outside this type.
		panic("plan: malformed lvlath vertex id " + id)
	}
	return v
}

// AddEdge records an equality edge between v1 and v2 in the underlying
// join graph.
func (l *ConnectedComponentLabeller) AddEdge(v1, v2 int) {
	l.graph.AddEdge(vertexID(v1), vertexID(v2), 1)
}

// Component is one connected component's edge set, in deterministic
// order.
type Component struct {
	Edges []sql.Edge
}

// GetComponents partitions the join graph into connected components by
// walking l.graph's adjacency list breadth-first from each unvisited
// vertex via Neighbors, then assigns every edge reported by l.graph's
// Edges() to the component its endpoints belong to. It does not mutate
// l, so it can be called repeatedly as edges are added.
func (l *ConnectedComponentLabeller) GetComponents() []Component {
	visited := make(map[int]bool, l.n)
	componentOf := make(map[int]int, l.n) // vertex -> representative (smallest vertex id in its component)
	var order []int                       // representatives, in discovery order

	for start := 0; start < l.n; start++ {
		if visited[start] {
			continue
		}
		visited[start] = true
		queue := []int{start}
		members := []int{start}
		rep := start

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, nbr := range l.graph.Neighbors(vertexID(v)) {
				nv := vertexIndex(nbr.ID)
				if visited[nv] {
					continue
				}
				visited[nv] = true
				queue = append(queue, nv)
				members = append(members, nv)
				if nv < rep {
					rep = nv
				}
			}
		}

		if len(members) < 2 {
			// Isolated vertex: the reorderer's singleton fallback handles it
			// by iterating input indices directly, not via components.
			continue
		}
		for _, v := range members {
			componentOf[v] = rep
		}
		order = append(order, rep)
	}

	edgeSets := make(map[int]map[sql.Edge]struct{}, len(order))
	for _, e := range l.graph.Edges() {
		a, b := vertexIndex(e.From.ID), vertexIndex(e.To.ID)
		rep, ok := componentOf[a]
		if !ok {
			continue
		}
		if edgeSets[rep] == nil {
			edgeSets[rep] = make(map[sql.Edge]struct{})
		}
		edgeSets[rep][sql.NewEdge(a, b)] = struct{}{}
	}

	components := make([]Component, 0, len(order))
	for _, rep := range order {
		edgeSet := edgeSets[rep]
		edges := make([]sql.Edge, 0, len(edgeSet))
		for e := range edgeSet {
			edges = append(edges, e)
		}
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].A != edges[j].A {
				return edges[i].A < edges[j].A
			}
			return edges[i].B < edges[j].B
		})
		components = append(components, Component{Edges: edges})
	}

	// Sort components descending by edge count; ties broken
	// lexicographically on each component's smallest edge, which is
	// deterministic given the per-component edge sort above. This fixes
	// the tie-break the original leaves unspecified (spec.md §9).
	sort.Slice(components, func(i, j int) bool {
		if len(components[i].Edges) != len(components[j].Edges) {
			return len(components[i].Edges) > len(components[j].Edges)
		}
		a, b := components[i].Edges[0], components[j].Edges[0]
		if a.A != b.A {
			return a.A < b.A
		}
		return a.B < b.B
	})

	return components
}
