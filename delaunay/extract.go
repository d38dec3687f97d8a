// SPDX-License-Identifier: MIT

package delaunay

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/mesh"
)

// Result is the finished triangulation in compact indexed form.
//
// Vertices lists every point referenced by at least one triangle, in order
// of first appearance. PointIDs[i] is the handle AddPoint returned for
// Vertices[i]. Each Triangles entry holds three indices into Vertices in
// CCW order. A Result is never mutated after Finish returns it.
type Result struct {
	Vertices  []geom.Point
	PointIDs  []mesh.PointID
	Triangles [][3]int
}

// extract walks the surviving triangles and assigns each distinct handle
// an index the first time it is seen. Identity is by handle: equal
// coordinates with different handles become separate vertices.
// Complexity: O(T).
func extract(m *mesh.Mesh, arena *mesh.Arena) *Result {
	res := &Result{Triangles: make([][3]int, 0, m.Len())}
	index := make(map[mesh.PointID]int)
	m.Each(func(t mesh.Triangle) bool {
		var tri [3]int
		for k, id := range t.V {
			i, ok := index[id]
			if !ok {
				i = len(res.Vertices)
				index[id] = i
				res.Vertices = append(res.Vertices, arena.At(id))
				res.PointIDs = append(res.PointIDs, id)
			}
			tri[k] = i
		}
		res.Triangles = append(res.Triangles, tri)
		return true
	})

	return res
}

// Len returns the number of triangles.
func (r *Result) Len() int { return len(r.Triangles) }

// Corners returns the coordinates of triangle i.
func (r *Result) Corners(i int) (a, b, c geom.Point) {
	t := r.Triangles[i]

	return r.Vertices[t[0]], r.Vertices[t[1]], r.Vertices[t[2]]
}

// Area returns the unsigned area of triangle i.
func (r *Result) Area(i int) float64 {
	a, b, c := r.Corners(i)

	return geom.TriangleArea(a, b, c)
}

// TotalArea sums Area over all triangles.
func (r *Result) TotalArea() float64 {
	var sum float64
	for i := range r.Triangles {
		sum += r.Area(i)
	}

	return sum
}

// Edges returns every undirected edge once as an (i, j) pair with i < j,
// sorted lexicographically.
// Complexity: O(T log T).
func (r *Result) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, 3*len(r.Triangles)/2+3)
	out := make([][2]int, 0, 3*len(r.Triangles)/2+3)
	for _, t := range r.Triangles {
		for e := 0; e < 3; e++ {
			k := edgeKey(t[e], t[(e+1)%3])
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	return out
}

// Neighbors returns, for each triangle t and each edge e of t (from
// Triangles[t][e] to Triangles[t][(e+1)%3]), the index of the triangle on
// the other side of that edge, or -1 for a hull edge.
// Complexity: O(T).
func (r *Result) Neighbors() [][3]int {
	type half struct{ tri, edge int }
	owners := make(map[[2]int][]half, 3*len(r.Triangles)/2+3)
	for ti, t := range r.Triangles {
		for e := 0; e < 3; e++ {
			k := edgeKey(t[e], t[(e+1)%3])
			owners[k] = append(owners[k], half{tri: ti, edge: e})
		}
	}

	out := make([][3]int, len(r.Triangles))
	for i := range out {
		out[i] = [3]int{-1, -1, -1}
	}
	for _, hs := range owners {
		if len(hs) != 2 {
			continue
		}
		out[hs[0].tri][hs[0].edge] = hs[1].tri
		out[hs[1].tri][hs[1].edge] = hs[0].tri
	}

	return out
}

func edgeKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}

	return [2]int{i, j}
}
