// Package converter chains quantization, bitplane packing and the envelope
// into the image to document pipeline and its inverse.
package converter

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"graffiti/pkg/bitmap"
	"graffiti/pkg/bitplane"
	"graffiti/pkg/envelope"
	"graffiti/pkg/palette"
)

func New(logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{logger: logger}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Converter struct {
	logger *zap.Logger
	// options
	fit bool
}

type Option func(c *Converter)

// WithFit shrinks images larger than the canvas instead of cropping them.
func WithFit(fit bool) Option {
	return func(c *Converter) {
		c.fit = fit
	}
}

// Canvas quantizes img onto the display canvas.
func (c *Converter) Canvas(img image.Image) *bitmap.Canvas {
	if c.fit {
		img = bitmap.Fit(img)
	}

	canvas := bitmap.Quantize(img)

	hist := canvas.Histogram()
	fields := []zap.Field{zap.Int("w", img.Bounds().Dx()), zap.Int("h", img.Bounds().Dy())}
	for _, cl := range palette.Colors() {
		if n := hist[cl]; n > 0 {
			fields = append(fields, zap.Int(cl.String(), n))
		}
	}
	c.logger.With(fields...).Debug("quantized")

	return canvas
}

// FromImage renders img into a document.
func (c *Converter) FromImage(img image.Image) ([]byte, error) {
	return c.FromMatrix(c.Canvas(img).Matrix())
}

// FromMatrix renders a full column-major matrix into a document.
func (c *Converter) FromMatrix(m []palette.Color) ([]byte, error) {
	payload, err := bitplane.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("encode matrix failed: %w", err)
	}

	doc, err := envelope.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope failed: %w", err)
	}

	return doc, nil
}

// ToBits returns the raw 3072 bit plane stream carried by doc.
func (c *Converter) ToBits(doc []byte) ([]uint8, error) {
	payload, err := envelope.Parse(doc)
	if err != nil {
		return nil, err
	}
	return bitplane.Decode(payload), nil
}

// ToMatrix rebuilds the color matrix carried by doc.
func (c *Converter) ToMatrix(doc []byte) (bitmap.Matrix, error) {
	payload, err := envelope.Parse(doc)
	if err != nil {
		return nil, err
	}

	m, err := bitplane.DecodeMatrix(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload failed: %w", err)
	}

	return m, nil
}
