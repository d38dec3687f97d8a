// SPDX-License-Identifier: MIT

package tinio

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/trimesh/delaunay"
	"github.com/katalvlaran/trimesh/geom"
)

// ToFeatureCollection renders every triangle of res as a closed Polygon
// feature. Properties: index (triangle number), a/b/c (vertex indices) and
// area.
func ToFeatureCollection(res *delaunay.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, t := range res.Triangles {
		a, b, c := res.Corners(i)
		ring := orb.Ring{toOrb(a), toOrb(b), toOrb(c), toOrb(a)}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["index"] = i
		f.Properties["a"] = t[0]
		f.Properties["b"] = t[1]
		f.Properties["c"] = t[2]
		f.Properties["area"] = res.Area(i)
		fc.Append(f)
	}

	return fc
}

// EdgesToFeatureCollection renders edges over vertices as LineString
// features with properties index, a, b and length.
func EdgesToFeatureCollection(vertices []geom.Point, edges [][2]int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, e := range edges {
		a, b := vertices[e[0]], vertices[e[1]]
		f := geojson.NewFeature(orb.LineString{toOrb(a), toOrb(b)})
		f.Properties["index"] = i
		f.Properties["a"] = e[0]
		f.Properties["b"] = e[1]
		f.Properties["length"] = math.Sqrt(a.Dist2(b))
		fc.Append(f)
	}

	return fc
}

// WriteEdgesGeoJSON encodes edges as a GeoJSON FeatureCollection.
func WriteEdgesGeoJSON(w io.Writer, vertices []geom.Point, edges [][2]int) error {
	return writeCollection(w, EdgesToFeatureCollection(vertices, edges))
}

// WriteGeoJSON encodes res as a GeoJSON FeatureCollection.
func WriteGeoJSON(w io.Writer, res *delaunay.Result) error {
	return writeCollection(w, ToFeatureCollection(res))
}

func writeCollection(w io.Writer, fc *geojson.FeatureCollection) error {
	b, err := fc.MarshalJSON()
	if err != nil {
		return &OpError{Op: "tinio.write_geojson", Kind: KindWrite, Err: err}
	}
	if _, err = w.Write(append(b, '\n')); err != nil {
		return &OpError{Op: "tinio.write_geojson", Kind: KindWrite, Err: err}
	}

	return nil
}

// indexedJSON is the compact wire form shared by WriteJSON and ReadResultJSON.
type indexedJSON struct {
	Vertices  [][2]float64 `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
}

// WriteJSON encodes res as {"vertices": [[x,y],...], "triangles": [[i,j,k],...]}.
func WriteJSON(w io.Writer, res *delaunay.Result) error {
	out := indexedJSON{
		Vertices:  make([][2]float64, len(res.Vertices)),
		Triangles: res.Triangles,
	}
	if out.Triangles == nil {
		out.Triangles = [][3]int{}
	}
	for i, v := range res.Vertices {
		out.Vertices[i] = [2]float64{v.X, v.Y}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return &OpError{Op: "tinio.write_json", Kind: KindWrite, Err: err}
	}

	return nil
}

// ReadResultJSON decodes the WriteJSON form back into a Result. PointIDs
// are not part of the wire form and stay nil.
func ReadResultJSON(r io.Reader) (*delaunay.Result, error) {
	var in indexedJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, &OpError{Op: "tinio.read_result_json", Kind: KindInvalidInput, Err: err}
	}
	res := &delaunay.Result{
		Vertices:  make([]geom.Point, len(in.Vertices)),
		Triangles: in.Triangles,
	}
	for i, v := range in.Vertices {
		res.Vertices[i] = geom.Pt(v[0], v[1])
	}

	return res, nil
}

// WriteFile writes res to path in the given format. FormatAuto picks by
// extension (see DetectOutput).
func WriteFile(path string, format Format, res *delaunay.Result) (err error) {
	if format == "" || format == FormatAuto {
		format = DetectOutput(path)
	}
	var write func(io.Writer, *delaunay.Result) error
	switch format {
	case FormatGeoJSON:
		write = WriteGeoJSON
	case FormatJSON:
		write = WriteJSON
	default:
		return &OpError{Op: "tinio.write_file", Kind: KindUnsupported, Path: path, Err: errUnknownFormat(format)}
	}

	f, err := os.Create(path)
	if err != nil {
		return &OpError{Op: "tinio.write_file", Kind: KindWrite, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &OpError{Op: "tinio.write_file", Kind: KindWrite, Path: path, Err: cerr}
		}
	}()
	if err = write(f, res); err != nil {
		if oe, ok := err.(*OpError); ok {
			oe.Path = path
		}
		return err
	}

	return nil
}

// Write dispatches to WriteGeoJSON or WriteJSON on an arbitrary writer.
func Write(w io.Writer, format Format, res *delaunay.Result) error {
	switch format {
	case FormatGeoJSON, FormatAuto, "":
		return WriteGeoJSON(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return &OpError{Op: "tinio.write", Kind: KindUnsupported, Err: errUnknownFormat(format)}
	}
}

func toOrb(p geom.Point) orb.Point { return orb.Point{p.X, p.Y} }
