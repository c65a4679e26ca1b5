package bitmap

import (
	"image"
	"image/color"

	"graffiti/pkg/palette"
)

// Matrix is a column-major list of Pixels palette colors.
type Matrix []palette.Color

// NewMatrix returns a full matrix painted with one color.
func NewMatrix(fill palette.Color) Matrix {
	m := make(Matrix, Pixels)
	for i := range m {
		m[i] = fill
	}
	return m
}

// Image wraps a copy of the matrix into a canvas. Short matrices leave the
// remaining pixels black.
func (m Matrix) Image() *Canvas {
	c := NewCanvas()
	copy(c.pixels, m)
	return c
}

func NewCanvas() *Canvas {
	return &Canvas{
		pixels: make([]palette.Color, Pixels),
		bounds: image.Rect(0, 0, Width, Height),
	}
}

// Canvas holds one frame of palette colors. It implements the draw.Image
// interface, so anything drawn onto it is quantized to the palette.
type Canvas struct {
	pixels []palette.Color
	bounds image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (c *Canvas) ColorModel() color.Model {
	return palette.Model
}

// At implements the image.Image (and draw.Image) interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.ColorAt(x, y)
}

// ColorAt is At without the interface conversion.
func (c *Canvas) ColorAt(x, y int) palette.Color {
	if !(image.Point{X: x, Y: y}).In(c.bounds) {
		return palette.Black
	}
	return c.pixels[x*Height+y]
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, cl color.Color) {
	c.SetColor(x, y, palette.Nearest(cl))
}

func (c *Canvas) SetColor(x, y int, cl palette.Color) {
	if (image.Point{X: x, Y: y}).In(c.bounds) {
		c.pixels[x*Height+y] = cl
	}
}

// Matrix returns a copy of the pixels in column-major order.
func (c *Canvas) Matrix() Matrix {
	m := make(Matrix, len(c.pixels))
	copy(m, c.pixels)
	return m
}

// Histogram counts the pixels of every palette color.
func (c *Canvas) Histogram() map[palette.Color]int {
	h := make(map[palette.Color]int)
	for _, p := range c.pixels {
		h[p]++
	}
	return h
}
