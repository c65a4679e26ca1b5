package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	cases := []struct {
		c    Color
		name string
		bits string
		hex  uint16
	}{
		{Black, "black", "000", 0x000},
		{Red, "red", "100", 0xF00},
		{Magenta, "magenta", "101", 0xF0F},
		{Yellow, "yellow", "110", 0xFF0},
		{Green, "green", "010", 0x0F0},
		{Cyan, "cyan", "011", 0x0FF},
		{Blue, "blue", "001", 0x00F},
		{White, "white", "111", 0xFFF},
	}

	require.Equal(t, []Color{Black, Red, Magenta, Yellow, Green, Cyan, Blue, White}, Colors())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.c.String())
			assert.Equal(t, tc.bits, tc.c.Bits())
			assert.Equal(t, tc.hex, tc.c.Hex())

			for p := 0; p < Planes; p++ {
				assert.Equal(t, tc.bits[p]-'0', tc.c.Bit(p), "plane %d", p)
			}

			back, ok := FromCode(tc.c.Code())
			assert.True(t, ok)
			assert.Equal(t, tc.c, back)

			parsed, err := Parse(" " + tc.name + " ")
			require.NoError(t, err)
			assert.Equal(t, tc.c, parsed)
		})
	}
}

func TestFromCodeOutOfRange(t *testing.T) {
	_, ok := FromCode(8)
	assert.False(t, ok)
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("orange")
	assert.Error(t, err)
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Magenta.RGBA()
	assert.Equal(t, []uint32{0xFFFF, 0, 0xFFFF, 0xFFFF}, []uint32{r, g, b, a})

	assert.Equal(t, "Color(9)", Color(9).String())
	assert.False(t, Color(9).Valid())
}

func TestNearestSelf(t *testing.T) {
	for _, c := range Colors() {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		assert.Equal(t, c, NearestRGB(n.R, n.G, n.B), c.String())
		assert.Equal(t, c, Nearest(n), c.String())
	}

	assert.Equal(t, Red, NearestRGB(0xFF, 0x00, 0x00))
}

func TestNearestComparesNibbles(t *testing.T) {
	// references are (0..15) per channel, so the black/white boundary of
	// a gray sits between 7 and 8
	assert.Equal(t, Black, NearestRGB(7, 7, 7))
	assert.Equal(t, White, NearestRGB(8, 8, 8))
	assert.Equal(t, White, NearestRGB(128, 128, 128))
	assert.Equal(t, Blue, NearestRGB(0, 0, 9))
	assert.Equal(t, Cyan, NearestRGB(0, 200, 220))
}

func TestNearestIgnoresAlpha(t *testing.T) {
	assert.Equal(t, Red, Nearest(color.NRGBA{R: 0xFF, A: 0}))
	assert.Equal(t, Red, Nearest(color.RGBA{R: 0x80, A: 0x80}))
	assert.Equal(t, Green, Nearest(color.RGBA64{G: 0xFFFF, A: 0xFFFF}))
}

func TestNearestClosure(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := NearestRGB(uint8(r), uint8(g), uint8(b))
				require.True(t, c.Valid(), "(%d,%d,%d)", r, g, b)
			}
		}
	}
}

func TestModel(t *testing.T) {
	assert.Equal(t, Yellow, Model.Convert(color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}))
}
