package internal

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels
const drawPadding = 20

// Draw a division: the regions in alternating shades of green, the polygon's
// outline in cyan and the cuts in magenta. Scale is pixels per unit, and y
// points up like it does in the input.
func RenderDivision(d *Division, scale float64) image.Image {
	min, max := d.Polygon.Bounds()

	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	for i, region := range d.Regions() {
		if len(region.Points) < 3 {
			continue
		}
		tracePolygon(c, region)
		c.SetRGB(0, 0.3+0.3*float64(i%2), 0)
		c.Fill()
	}

	c.SetLineWidth(2)
	tracePolygon(c, d.Polygon)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, segment := range d.Segments() {
		c.DrawLine(segment.Start.X, segment.Start.Y, segment.End.X, segment.End.Y)
	}
	c.SetRGB(1, 0, 1)
	c.Stroke()

	return c.Image()
}

func tracePolygon(c *gg.Context, polygon Polygon) {
	c.MoveTo(polygon.Points[0].X, polygon.Points[0].Y)
	for _, p := range polygon.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func SavePNG(path string, img image.Image) error {
	return errors.Wrapf(gg.SavePNG(path, img), "saving %s", path)
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "displaying %s", path)
}
