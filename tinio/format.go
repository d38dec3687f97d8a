// SPDX-License-Identifier: MIT

package tinio

import (
	"path/filepath"
	"strings"
)

// Format names an on-disk representation.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatText    Format = "text"
	FormatGeoJSON Format = "geojson"
	FormatJSON    Format = "json"
)

// ParseFormat accepts a case-insensitive format name; "" means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatText, FormatGeoJSON, FormatJSON:
		return f, nil
	default:
		return "", &OpError{Op: "tinio.parse_format", Kind: KindUnsupported, Err: errUnknownFormat(s)}
	}
}

// DetectInput guesses the input format from the extension: .geojson and
// .json are GeoJSON, anything else is text.
func DetectInput(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return FormatGeoJSON
	default:
		return FormatText
	}
}

// DetectOutput guesses the output format from the extension: .json is the
// compact index form, anything else is GeoJSON.
func DetectOutput(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatGeoJSON
}

type errUnknownFormat string

func (e errUnknownFormat) Error() string { return "unknown format " + strings.TrimSpace(string(e)) }
