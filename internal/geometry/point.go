// Package geometry resolves WKT point strings from the geo-data providers into coordinates.
package geometry

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Coordinates is a WGS84 position. Both fields are nil when the source
// geometry could not be parsed; callers treat that as a degraded state.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// Valid reports whether both coordinates are present.
func (c Coordinates) Valid() bool {
	return c.Lat != nil && c.Lon != nil
}

// Point returns the position as an orb.Point (lon, lat). Only meaningful when Valid.
func (c Coordinates) Point() orb.Point {
	if !c.Valid() {
		return orb.Point{}
	}
	return orb.Point{*c.Lon, *c.Lat}
}

// FromPoint builds Coordinates from an orb.Point (lon, lat).
func FromPoint(p orb.Point) Coordinates {
	lon, lat := p.Lon(), p.Lat()
	return Coordinates{Lat: &lat, Lon: &lon}
}

// Parse reads a geometry string of the form "POINT(lon lat)". Ordinates may be
// separated by any run of whitespace.
// Malformed input yields empty Coordinates, never an error.
func Parse(geometry string) Coordinates {
	raw := strings.TrimSpace(geometry)
	if len(raw) < len("POINT") || !strings.EqualFold(raw[:len("POINT")], "POINT") {
		return Coordinates{}
	}

	body := strings.TrimSpace(raw[len("POINT"):])
	if len(body) < 2 || body[0] != '(' || body[len(body)-1] != ')' {
		return Coordinates{}
	}
	// wkt expects exactly one space between ordinates.
	inner := strings.Fields(body[1 : len(body)-1])
	if len(inner) != 2 {
		return Coordinates{}
	}

	point, err := wkt.UnmarshalPoint("POINT(" + strings.Join(inner, " ") + ")")
	if err != nil {
		return Coordinates{}
	}
	if !finite(point.Lon()) || !finite(point.Lat()) {
		return Coordinates{}
	}

	return FromPoint(point)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
