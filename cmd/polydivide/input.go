package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/polydivide/internal"
	"github.com/pkg/errors"
)

// Read points in the form "x y", one per line. Blank lines and lines starting
// with '#' are skipped.
func readPoints(in io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}

func readSVG(path string) ([]internal.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	polygon, err := internal.ParseSVGPolygon(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return polygon.Points, nil
}
