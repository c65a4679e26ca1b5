/*
Package bitplane packs palette colors into the display payload.

Each color code is split into its 3 bits. Bit p of every pixel, in matrix
order, forms plane p; the planes are concatenated (0, 1, 2) into a stream of
3072 bits which is cut into 384 bytes, most significant bit first.
*/
package bitplane

import (
	"fmt"

	"graffiti/pkg/bitmap"
	"graffiti/pkg/palette"
)

const (
	StreamBits = bitmap.Pixels * palette.Planes
	Size       = StreamBits / 8
)

// Encode packs a full matrix into Size bytes.
func Encode(m []palette.Color) ([]byte, error) {
	if len(m) != bitmap.Pixels {
		return nil, lengthError("matrix", bitmap.Pixels, len(m))
	}

	out := make([]byte, Size)
	for i, c := range m {
		if !c.Valid() {
			return nil, &ValidationError{Field: "matrix", Reason: fmt.Sprintf("pixel %d holds unknown color %d", i, uint8(c))}
		}
		for p := 0; p < palette.Planes; p++ {
			if c.Bit(p) == 1 {
				n := p*bitmap.Pixels + i
				out[n>>3] |= 0x80 >> (n & 7)
			}
		}
	}

	return out, nil
}

// Decode expands bytes into single bits, most significant bit first.
func Decode(bs []byte) []uint8 {
	bits := make([]uint8, 0, len(bs)*8)
	for _, b := range bs {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>i&1)
		}
	}
	return bits
}

// Pack regroups bits into bytes; it is the inverse of Decode.
func Pack(bits []uint8) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, &ValidationError{Field: "bits", Got: len(bits), Reason: fmt.Sprintf("%d bits is not a whole number of bytes", len(bits))}
	}

	out := make([]byte, len(bits)/8)
	for n, bit := range bits {
		switch bit {
		case 0:
		case 1:
			out[n>>3] |= 0x80 >> (n & 7)
		default:
			return nil, &ValidationError{Field: "bits", Reason: fmt.Sprintf("bit %d has value %d", n, bit)}
		}
	}

	return out, nil
}

// Unpack rebuilds the matrix from a full bit stream by joining bits i,
// i+1024 and i+2048 into the code of pixel i.
func Unpack(bits []uint8) (bitmap.Matrix, error) {
	if len(bits) != StreamBits {
		return nil, lengthError("bits", StreamBits, len(bits))
	}

	m := make(bitmap.Matrix, bitmap.Pixels)
	for i := range m {
		var code uint8
		for p := 0; p < palette.Planes; p++ {
			bit := bits[p*bitmap.Pixels+i]
			if bit > 1 {
				return nil, &ValidationError{Field: "bits", Reason: fmt.Sprintf("bit %d has value %d", p*bitmap.Pixels+i, bit)}
			}
			code = code<<1 | bit
		}
		m[i], _ = palette.FromCode(code)
	}

	return m, nil
}

// DecodeMatrix is Unpack(Decode(bs)) for a full payload.
func DecodeMatrix(bs []byte) (bitmap.Matrix, error) {
	if len(bs) != Size {
		return nil, lengthError("payload", Size, len(bs))
	}
	return Unpack(Decode(bs))
}
