package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVGPolygon(t *testing.T) {
	t.Run("first polygon wins", func(t *testing.T) {
		svg := `<svg xmlns="http://www.w3.org/2000/svg">
			<polygon points="0,0 1,0 1,1"/>
			<polygon points="5,5 6,5 6,6"/>
		</svg>`
		poly, err := ParseSVGPolygon(strings.NewReader(svg))
		require.NoError(t, err)
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}}, poly.Points)
	})

	t.Run("points are kept as written", func(t *testing.T) {
		// Clockwise once the y axis is flipped, but not reversed here
		svg := `<svg><polygon points="0,0 0,2 2,2 2,0"/></svg>`
		poly, err := ParseSVGPolygon(strings.NewReader(svg))
		require.NoError(t, err)
		assert.True(t, IsCW(poly))
	})

	t.Run("no polygon", func(t *testing.T) {
		_, err := ParseSVGPolygon(strings.NewReader(`<svg><rect width="1" height="1"/></svg>`))
		assert.EqualError(t, err, "no polygon element found")
	})

	t.Run("no points", func(t *testing.T) {
		_, err := ParseSVGPolygon(strings.NewReader(`<svg><polygon/></svg>`))
		assert.EqualError(t, err, "polygon element has no points attribute")
	})

	t.Run("bad points", func(t *testing.T) {
		_, err := ParseSVGPolygon(strings.NewReader(`<svg><polygon points="0,0 1"/></svg>`))
		assert.EqualError(t, err, "odd number of coordinates (3)")
	})
}

func TestParsePointList(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		points []Point
		err    string
	}{
		{"comma pairs", "0,0 1,0 1,1", []Point{{0, 0}, {1, 0}, {1, 1}}, ""},
		{"only spaces", "0 0 1.5 0 1 -2", []Point{{0, 0}, {1.5, 0}, {1, -2}}, ""},
		{"mixed separators", " 0, 0\n\t1 ,0,1e1 1 ", []Point{{0, 0}, {1, 0}, {10, 1}}, ""},
		{"empty", "", []Point{}, ""},
		{"odd count", "0,0 1", nil, "odd number of coordinates (3)"},
		{"bad x", "0,0 a,1", nil, `invalid x value "a"`},
		{"bad y", "0,0 1,b", nil, `invalid y value "b"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			points, err := parsePointList(c.input)
			if c.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.points, points)
		})
	}
}
