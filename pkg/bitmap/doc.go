/*
Package bitmap maps images onto the 64 by 16 pixel canvas of the display.

The canvas is stored column-major: all 16 rows of column 0, then all 16 rows
of column 1, and so on. That is also the order of a Matrix and of the pixels
within each bitplane.
*/
package bitmap

const (
	Width  = 64
	Height = 16
	Pixels = Width * Height
)
