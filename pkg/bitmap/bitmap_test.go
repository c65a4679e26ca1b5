package bitmap

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graffiti/pkg/palette"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestQuantizeOutOfBounds(t *testing.T) {
	img := solid(3, 2, color.RGBA{R: 0xFF, A: 0xFF})
	img.Set(1, 0, color.RGBA{G: 0xFF, A: 0xFF})

	c := Quantize(img)

	assert.Equal(t, palette.Red, c.ColorAt(0, 0))
	assert.Equal(t, palette.Green, c.ColorAt(1, 0))
	assert.Equal(t, palette.Red, c.ColorAt(2, 1))
	// beyond the source height and width
	assert.Equal(t, palette.Black, c.ColorAt(0, 2))
	assert.Equal(t, palette.Black, c.ColorAt(3, 0))
	assert.Equal(t, palette.Black, c.ColorAt(63, 15))
}

func TestQuantizeColumnMajor(t *testing.T) {
	img := solid(Width, Height, color.Black)
	img.Set(0, 1, color.White)
	img.Set(1, 0, color.RGBA{B: 0xFF, A: 0xFF})
	img.Set(63, 15, color.RGBA{R: 0xFF, A: 0xFF})

	m := Quantize(img).Matrix()

	require.Len(t, m, Pixels)
	assert.Equal(t, palette.Black, m[0])
	assert.Equal(t, palette.White, m[1])
	assert.Equal(t, palette.Blue, m[Height])
	assert.Equal(t, palette.Red, m[Pixels-1])
}

func TestQuantizeOffsetOrigin(t *testing.T) {
	img := solid(20, 20, color.Black)
	img.Set(5, 5, color.White)

	sub := img.SubImage(image.Rect(5, 5, 20, 20))
	c := Quantize(sub)

	assert.Equal(t, palette.White, c.ColorAt(0, 0))
	assert.Equal(t, palette.Black, c.ColorAt(1, 0))
	assert.Equal(t, palette.Black, c.ColorAt(15, 0))
}

func TestQuantizeCropsLargeImages(t *testing.T) {
	m := Quantize(solid(100, 100, color.White)).Matrix()
	assert.Equal(t, NewMatrix(palette.White), m)
}

func TestQuantizeLeavesSourceAlone(t *testing.T) {
	img := solid(4, 4, color.RGBA{R: 10, G: 200, B: 30, A: 0xFF})
	before := append([]uint8(nil), img.Pix...)

	Quantize(img)

	assert.Equal(t, before, img.Pix)
}

func TestFit(t *testing.T) {
	small := solid(10, 10, color.White)
	assert.Same(t, small, Fit(small))

	wide := Fit(solid(128, 16, color.White))
	assert.Equal(t, 64, wide.Bounds().Dx())
	assert.Equal(t, 8, wide.Bounds().Dy())

	c := Quantize(Fit(solid(128, 32, color.White)))
	assert.Equal(t, NewMatrix(palette.White), c.Matrix())
}

func TestCanvas(t *testing.T) {
	c := NewCanvas()
	assert.Equal(t, image.Rect(0, 0, Width, Height), c.Bounds())
	assert.Equal(t, palette.Model, c.ColorModel())

	c.Set(2, 3, color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF})
	assert.Equal(t, palette.Magenta, c.At(2, 3))

	c.Set(-1, 0, color.White)
	c.Set(Width, 0, color.White)
	assert.Equal(t, palette.Black, c.At(-1, 0))
	assert.Equal(t, palette.Black, c.At(0, Height))

	h := c.Histogram()
	assert.Equal(t, 1, h[palette.Magenta])
	assert.Equal(t, Pixels-1, h[palette.Black])
}

func TestCanvasAsDrawTarget(t *testing.T) {
	c := NewCanvas()
	draw.Draw(c, c.Bounds(), &image.Uniform{C: color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}}, image.Point{}, draw.Src)
	assert.Equal(t, NewMatrix(palette.Cyan), c.Matrix())
}

func TestMatrixImage(t *testing.T) {
	m := NewMatrix(palette.Yellow)
	m[Height+2] = palette.Blue

	c := m.Image()
	assert.Equal(t, palette.Blue, c.ColorAt(1, 2))
	assert.Equal(t, m, c.Matrix())

	// the canvas owns its pixels
	m[0] = palette.Red
	assert.Equal(t, palette.Yellow, c.ColorAt(0, 0))
}
