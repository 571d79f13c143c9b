package internal

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It finds the first
// <polygon> element and returns its points exactly as written. Note that SVG's
// y axis points down, so a shape that looks counterclockwise on screen is
// clockwise here.
func ParseSVGPolygon(r io.Reader) (*Polygon, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element found")
	}

	pointString, ok := polygons[0].Attributes["points"]
	if !ok {
		return nil, errors.New("polygon element has no points attribute")
	}
	points, err := parsePointList(pointString)
	if err != nil {
		return nil, err
	}
	return &Polygon{Points: points}, nil
}

// SVG point lists are numbers separated by whitespace and/or commas, taken in
// x, y pairs.
func parsePointList(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
