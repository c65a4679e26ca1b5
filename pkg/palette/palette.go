/*
Package palette implements the fixed 8 color palette of the graffiti display.

Every color carries a 3 bit code, one bit per bitplane, and a 12 bit
reference value holding one nibble per channel. The nearest color search
compares 8 bit input channels against the raw reference nibbles.
*/
package palette

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Color is one of the 8 palette symbols.
type Color uint8

const (
	Black Color = iota
	Red
	Magenta
	Yellow
	Green
	Cyan
	Blue
	White
)

// Planes is the number of bits in a color code.
const Planes = 3

type entry struct {
	name string
	code uint8  // plane 0 is the most significant bit
	hex  uint16 // 0xRGB
}

// Iteration order is also the tie-break order of Nearest.
var table = [...]entry{
	Black:   {name: "black", code: 0b000, hex: 0x000},
	Red:     {name: "red", code: 0b100, hex: 0xF00},
	Magenta: {name: "magenta", code: 0b101, hex: 0xF0F},
	Yellow:  {name: "yellow", code: 0b110, hex: 0xFF0},
	Green:   {name: "green", code: 0b010, hex: 0x0F0},
	Cyan:    {name: "cyan", code: 0b011, hex: 0x0FF},
	Blue:    {name: "blue", code: 0b001, hex: 0x00F},
	White:   {name: "white", code: 0b111, hex: 0xFFF},
}

var byCode = func() (m [1 << Planes]Color) {
	for i, e := range table {
		m[e.code] = Color(i)
	}
	return
}()

// Colors returns the palette in iteration order.
func Colors() []Color {
	return lo.Map(table[:], func(_ entry, i int) Color { return Color(i) })
}

// FromCode maps a 3 bit code back to its color.
func FromCode(code uint8) (Color, bool) {
	if code >= 1<<Planes {
		return Black, false
	}
	return byCode[code], true
}

// Parse looks a color up by its name, case-insensitively.
func Parse(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, e := range table {
		if e.name == name {
			return Color(i), nil
		}
	}
	return Black, errors.Errorf("unknown color %q", name)
}

func (c Color) Valid() bool {
	return int(c) < len(table)
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return table[c].name
}

// Code returns the 3 bit code, plane 0 in bit 2.
func (c Color) Code() uint8 {
	return table[c].code
}

// Bit returns the bit of the color in the given plane (0, 1 or 2).
func (c Color) Bit(plane int) uint8 {
	return table[c].code >> (Planes - 1 - plane) & 1
}

// Bits renders the code as a bit string, e.g. "101" for magenta.
func (c Color) Bits() string {
	return fmt.Sprintf("%03b", c.Code())
}

// Hex returns the 12 bit 0xRGB reference value.
func (c Color) Hex() uint16 {
	return table[c].hex
}

// nibbles splits the reference value into its per-channel nibbles.
func (c Color) nibbles() (r, g, b int) {
	if !c.Valid() {
		return
	}
	h := table[c].hex
	return int(h >> 8 & 0xF), int(h >> 4 & 0xF), int(h & 0xF)
}

// RGBA implements the color.Color interface. Each nibble is replicated to
// fill the channel so 0xF becomes full intensity.
func (c Color) RGBA() (r, g, b, a uint32) {
	nr, ng, nb := c.nibbles()
	r = uint32(nr) * 0x1111
	g = uint32(ng) * 0x1111
	b = uint32(nb) * 0x1111
	a = 0xFFFF
	return
}
