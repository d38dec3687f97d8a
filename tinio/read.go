// SPDX-License-Identifier: MIT

package tinio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/trimesh/geom"
)

// ReadText parses one point per line. Fields may be separated by spaces,
// tabs, commas or semicolons. Blank lines and lines starting with '#' are
// skipped; a third numeric column is accepted and ignored.
func ReadText(r io.Reader) ([]geom.Point, error) {
	var pts []geom.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) < 2 || len(fields) > 3 {
			return nil, &OpError{Op: "tinio.read_text", Kind: KindInvalidInput, Line: line,
				Err: fmt.Errorf("want 2 or 3 fields, got %d", len(fields))}
		}
		var xy [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &OpError{Op: "tinio.read_text", Kind: KindInvalidInput, Line: line, Err: err}
			}
			xy[i] = v
		}
		p := geom.Pt(xy[0], xy[1])
		if !p.IsFinite() {
			return nil, &OpError{Op: "tinio.read_text", Kind: KindInvalidInput, Line: line,
				Err: fmt.Errorf("non-finite coordinate %v", p)}
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, &OpError{Op: "tinio.read_text", Kind: KindInvalidInput, Line: line, Err: err}
	}

	return pts, nil
}

// ReadGeoJSON decodes points from a FeatureCollection, a single Feature or
// a bare geometry. Only Point and MultiPoint geometries are accepted.
func ReadGeoJSON(r io.Reader) ([]geom.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput, Err: err}
	}
	var head struct {
		Type string `json:"type"`
	}
	if err = json.Unmarshal(data, &head); err != nil {
		return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput, Err: err}
	}

	var geoms []orb.Geometry
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput, Err: err}
		}
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput, Err: err}
		}
		geoms = append(geoms, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput, Err: err}
		}
		geoms = append(geoms, g.Geometry())
	}

	var pts []geom.Point
	for i, g := range geoms {
		switch g := g.(type) {
		case orb.Point:
			pts = append(pts, geom.Pt(g.X(), g.Y()))
		case orb.MultiPoint:
			for _, p := range g {
				pts = append(pts, geom.Pt(p.X(), p.Y()))
			}
		default:
			return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput,
				Err: fmt.Errorf("feature %d: geometry %T is not a point", i, g)}
		}
	}
	for i, p := range pts {
		if !p.IsFinite() {
			return nil, &OpError{Op: "tinio.read_geojson", Kind: KindInvalidInput,
				Err: fmt.Errorf("point %d: non-finite coordinate %v", i, p)}
		}
	}

	return pts, nil
}

// ReadFile opens path and decodes it with the given format. FormatAuto
// picks by extension (see DetectInput).
func ReadFile(path string, format Format) ([]geom.Point, error) {
	if format == "" || format == FormatAuto {
		format = DetectInput(path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: "tinio.read_file", Kind: KindNotFound, Path: path, Err: err}
	}

	var pts []geom.Point
	switch format {
	case FormatText:
		pts, err = ReadText(bytes.NewReader(b))
	case FormatGeoJSON:
		pts, err = ReadGeoJSON(bytes.NewReader(b))
	default:
		return nil, &OpError{Op: "tinio.read_file", Kind: KindUnsupported, Path: path, Err: errUnknownFormat(format)}
	}
	if err != nil {
		if oe, ok := err.(*OpError); ok {
			oe.Path = path
		}
		return nil, err
	}

	return pts, nil
}
