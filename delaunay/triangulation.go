// SPDX-License-Identifier: MIT

package delaunay

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/trimesh/geom"
	"github.com/katalvlaran/trimesh/mesh"
)

// Triangulation is an incremental Delaunay triangulation under
// construction. Create it with New or NewWithBounds, feed points with
// AddPoint, and call Finish exactly once.
//
// A Triangulation is not safe for concurrent use.
type Triangulation struct {
	arena  *mesh.Arena
	mesh   *mesh.Mesh
	frame  Frame
	bounds geom.Rect
	opts   options
	log    *slog.Logger

	seen       map[geom.Point]mesh.PointID // WithDedup only
	inserted   int
	duplicates int
	finished   bool
	err        error // first fatal insertion error; poisons the triangulation
}

// New creates a triangulation for points in [0, width] × [0, height] and
// seeds it with the frame triangle.
// Returns ErrBadBounds if width or height is negative or not finite.
func New(width, height float64, opts ...Option) (*Triangulation, error) {
	if width < 0 || height < 0 {
		return nil, ErrBadBounds
	}

	return NewWithBounds(geom.R(0, 0, width, height), opts...)
}

// NewWithBounds is New for an arbitrary bounds rectangle.
func NewWithBounds(bounds geom.Rect, opts ...Option) (*Triangulation, error) {
	if !bounds.IsValid() {
		return nil, ErrBadBounds
	}
	o := gatherOptions(opts)

	arena := mesh.NewArena(o.capacity + 3)
	frame, seed, err := makeFrame(arena, bounds, o.frameScale)
	if err != nil {
		return nil, err
	}
	m := mesh.New()
	m.Insert(seed)

	tr := &Triangulation{
		arena:  arena,
		mesh:   m,
		frame:  frame,
		bounds: bounds,
		opts:   o,
		log:    o.logger,
	}
	if o.dedup {
		tr.seen = make(map[geom.Point]mesh.PointID, o.capacity)
	}
	tr.log.Debug("delaunay.frame",
		"bounds", fmt.Sprintf("%v-%v", bounds.Min, bounds.Max),
		"scale", o.frameScale,
	)

	return tr, nil
}

// AddPoint inserts (x, y) and returns the handle of the new vertex. The
// handle matches Result.PointIDs after Finish.
//
// Under WithDedup a point that exactly repeats an earlier one is skipped
// and the earlier handle is returned with a nil error.
//
// Errors:
//   - ErrFinished     — Finish already ran.
//   - ErrInconsistent — an earlier insertion failed fatally.
//   - ErrNonFinite    — x or y is NaN or ±Inf.
//   - ErrOutOfBounds  — outside the bounds, under WithStrictBounds only.
//   - ErrEmptyCavity, ErrOpenBoundary — fatal; the triangulation is poisoned.
//
// Complexity: O(T + k²) where T is the current triangle count and k the
// cavity size.
func (tr *Triangulation) AddPoint(x, y float64) (mesh.PointID, error) {
	if err := tr.usable(); err != nil {
		return mesh.NoPoint, err
	}
	p := geom.Pt(x, y)
	if !p.IsFinite() {
		return mesh.NoPoint, ErrNonFinite
	}
	if tr.opts.strictBounds && !tr.bounds.Contains(p) {
		return mesh.NoPoint, fmt.Errorf("point %v: %w", p, ErrOutOfBounds)
	}

	if id, ok := tr.seen[p]; ok {
		tr.duplicates++
		tr.log.Debug("delaunay.duplicate", "point", int(id), "x", x, "y", y)

		return id, nil
	}

	id := tr.arena.Add(p)
	c, err := insertPoint(tr.mesh, tr.arena, id)
	if err != nil {
		tr.err = err
		tr.log.Error("delaunay.insert_failed", "point", int(id), "x", x, "y", y, "err", err)

		return id, fmt.Errorf("delaunay: %w", err)
	}
	tr.inserted++
	if tr.seen != nil {
		tr.seen[p] = id
	}
	tr.log.Debug("delaunay.insert",
		"point", int(id),
		"cavity", len(c.bad),
		"boundary", len(c.boundary),
		"triangles", tr.mesh.Len(),
	)

	return id, nil
}

// AddPoints inserts every point in order and stops at the first error.
func (tr *Triangulation) AddPoints(pts []geom.Point) error {
	for i, p := range pts {
		if _, err := tr.AddPoint(p.X, p.Y); err != nil {
			return fmt.Errorf("point #%d: %w", i, err)
		}
	}

	return nil
}

// Finish removes the frame and extracts the result. It may be called
// once; later calls, and later AddPoint calls, return ErrFinished.
func (tr *Triangulation) Finish() (*Result, error) {
	if err := tr.usable(); err != nil {
		return nil, err
	}
	tr.finished = true

	dropped, err := removeFrame(tr.mesh, tr.frame)
	if err != nil {
		tr.err = err
		return nil, err
	}
	res := extract(tr.mesh, tr.arena)
	tr.log.Info("delaunay.finish",
		"inserted", tr.inserted,
		"duplicates", tr.duplicates,
		"vertices", len(res.Vertices),
		"triangles", len(res.Triangles),
		"frame_dropped", dropped,
	)

	return res, nil
}

// Bounds returns the rectangle the frame was sized for.
func (tr *Triangulation) Bounds() geom.Rect { return tr.bounds }

// Frame returns the frame corner coordinates.
func (tr *Triangulation) Frame() [3]geom.Point {
	var out [3]geom.Point
	for i, id := range tr.frame.Corners {
		out[i] = tr.arena.At(id)
	}

	return out
}

// NumPoints returns how many real points were inserted successfully.
// Skipped duplicates are not counted.
func (tr *Triangulation) NumPoints() int { return tr.inserted }

// Duplicates returns how many points WithDedup skipped.
func (tr *Triangulation) Duplicates() int { return tr.duplicates }

// NumTriangles returns the current triangle count, frame triangles included.
func (tr *Triangulation) NumTriangles() int { return tr.mesh.Len() }

// Err returns the fatal error that poisoned the triangulation, if any.
func (tr *Triangulation) Err() error { return tr.err }

func (tr *Triangulation) usable() error {
	if tr.err != nil {
		return fmt.Errorf("%w: %w", ErrInconsistent, tr.err)
	}
	if tr.finished {
		return ErrFinished
	}

	return nil
}

// Triangulate computes the Delaunay triangulation of pts in one call. The
// frame is sized from the bounding box of pts. Fewer than three points
// yield an empty Result.
func Triangulate(pts []geom.Point, opts ...Option) (*Result, error) {
	for i, p := range pts {
		if !p.IsFinite() {
			return nil, fmt.Errorf("point #%d: %w", i, ErrNonFinite)
		}
	}
	bounds, err := geom.Bounds(pts)
	if err != nil {
		bounds = geom.R(0, 0, 0, 0)
	}
	opts = append([]Option{WithCapacity(len(pts))}, opts...)
	tr, err := NewWithBounds(bounds, opts...)
	if err != nil {
		return nil, err
	}
	if err = tr.AddPoints(pts); err != nil {
		return nil, err
	}

	return tr.Finish()
}
