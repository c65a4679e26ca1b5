package palette

import (
	"image/color"
)

// Model converts any color to its nearest palette color.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return Nearest(c)
})

// Nearest returns the palette color closest to c. Alpha is ignored; the
// channels are taken non-premultiplied.
func Nearest(c color.Color) Color {
	if pc, ok := c.(Color); ok && pc.Valid() {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NearestRGB(n.R, n.G, n.B)
}

// NearestRGB returns the palette color with the smallest Euclidean distance
// to (r, g, b). Reference channels are the raw nibbles, not expanded to 8
// bits. Ties go to the earliest color in iteration order.
func NearestRGB(r, g, b uint8) Color {
	best := Black
	bestDist := -1
	for i := range table {
		c := Color(i)
		nr, ng, nb := c.nibbles()
		if d := sqDiff(int(r), nr) + sqDiff(int(g), ng) + sqDiff(int(b), nb); bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDiff(x, y int) int {
	d := x - y
	return d * d
}
