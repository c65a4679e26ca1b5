package converter

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"graffiti/pkg/bitmap"
	"graffiti/pkg/palette"
)

// ParseMatrix reads a comma separated list of color names in column-major
// order. Missing trailing pixels are black; extra pixels are an error.
func ParseMatrix(list string) (bitmap.Matrix, error) {
	var names []string
	if list = strings.TrimSpace(list); list != "" {
		names = lo.Map(strings.Split(list, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		})
	}
	if len(names) > bitmap.Pixels {
		return nil, errors.Errorf("matrix has %d pixels, at most %d allowed", len(names), bitmap.Pixels)
	}

	m := bitmap.NewMatrix(palette.Black)
	for i, name := range names {
		c, err := palette.Parse(name)
		if err != nil {
			return nil, errors.Wrapf(err, "pixel %d", i)
		}
		m[i] = c
	}

	return m, nil
}

// Render draws the matrix as text, one line per row, one letter per pixel
// ('.' for black).
func Render(m bitmap.Matrix) string {
	canvas := m.Image()

	var sb strings.Builder
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			c := canvas.ColorAt(x, y)
			sb.WriteByte(lo.Ternary(c == palette.Black, byte('.'), c.String()[0]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
