// SPDX-License-Identifier: MIT

package emst

import (
	"container/heap"

	"github.com/katalvlaran/trimesh/delaunay"
)

// Prim grows the tree from root, always taking the shortest edge that
// reaches a vertex not yet in the tree.
//
// Steps:
//  1. Validate res and root; zero or one vertex gives an empty tree.
//  2. Build a symmetric adjacency list from the triangulation edges.
//  3. Visit root: mark it and push its edges onto a min-heap.
//  4. Pop the shortest edge; skip it if its far end is already in the
//     tree, otherwise record it and visit the far end.
//  5. Stop at n-1 edges or an empty heap; fewer than n-1 edges means
//     the graph is disconnected.
//
// Complexity:
//
//	Time:   O(E log E) with lazy deletion from the heap.
//	Memory: O(n + E).
//
// Errors: ErrNilResult, ErrBadRoot, ErrDisconnected.
func Prim(res *delaunay.Result, root int) (Tree, error) {
	if res == nil {
		return Tree{}, ErrNilResult
	}
	n := len(res.Vertices)
	if root < 0 || (root >= n && n > 0) {
		return Tree{}, ErrBadRoot
	}
	if n <= 1 {
		return Tree{Edges: [][2]int{}}, nil
	}

	adj := make([][]weighted, n)
	for _, e := range edgeLengths(res) {
		adj[e.a] = append(adj[e.a], e)
		adj[e.b] = append(adj[e.b], weighted{a: e.b, b: e.a, w: e.w})
	}

	visited := make([]bool, n)
	tree := Tree{Edges: make([][2]int, 0, n-1)}
	pq := &edgePQ{}

	visit := func(u int) {
		visited[u] = true
		for _, e := range adj[u] {
			if !visited[e.b] {
				heap.Push(pq, e)
			}
		}
	}
	visit(root)

	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		e := heap.Pop(pq).(weighted)
		if visited[e.b] {
			continue // stale entry
		}
		// edges are reported low index first, as Kruskal does
		a, b := e.a, e.b
		if a > b {
			a, b = b, a
		}
		tree.Edges = append(tree.Edges, [2]int{a, b})
		tree.Length += e.w
		visit(e.b)
	}
	if len(tree.Edges) < n-1 {
		return Tree{}, ErrDisconnected
	}

	return tree, nil
}

// edgePQ is a min-heap of edges keyed by length.
type edgePQ []weighted

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return pq[i].w < pq[j].w }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(weighted)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	x := old[n-1]
	*pq = old[:n-1]

	return x
}
