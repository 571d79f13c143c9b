package internal

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb(img image.Image, x, y int) (r, g, b uint32) {
	r, g, b, _ = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestRenderDivision(t *testing.T) {
	square := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	d, err := Divide(square, 2, 0)
	require.NoError(t, err)

	img := RenderDivision(d, 10)
	assert.Equal(t, image.Rect(0, 0, 60, 60), img.Bounds())

	t.Run("background", func(t *testing.T) {
		r, g, b := rgb(img, 1, 1)
		assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b})
	})

	t.Run("regions alternate shades", func(t *testing.T) {
		// The cut is at x = 1, i.e. 30 pixels across
		r, g0, b := rgb(img, 25, 35)
		assert.Zero(t, r)
		assert.Zero(t, b)
		_, g1, _ := rgb(img, 35, 35)
		assert.Greater(t, g1, g0)
		assert.Greater(t, g0, uint32(0))
	})

	t.Run("cut is drawn", func(t *testing.T) {
		r, _, b := rgb(img, 30, 30)
		assert.Greater(t, r, uint32(100))
		assert.Greater(t, b, uint32(100))
	})
}

func TestSavePNG(t *testing.T) {
	d, err := Divide(readmePolygon().Points, 3, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "division.png")
	require.NoError(t, SavePNG(path, RenderDivision(d, 20)))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	err = SavePNG(filepath.Join(t.TempDir(), "missing", "division.png"), RenderDivision(d, 20))
	assert.ErrorContains(t, err, "saving")
}
