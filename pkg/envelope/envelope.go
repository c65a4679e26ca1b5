// Package envelope wraps a bitplane payload into the JSON document accepted
// by the display, and extracts it again.
package envelope

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"graffiti/pkg/bitmap"
	"graffiti/pkg/bitplane"
)

const (
	Speed        = 247
	Mode         = 1
	StayTime     = 2
	GraffitiType = 1
	DataType     = 1
	PixelWidth   = bitmap.Width
	PixelHeight  = bitmap.Height
)

// Field order matches the key order the device app writes.
type Data struct {
	Speed        int     `json:"speed"`
	Mode         int     `json:"mode"`
	PixelHeight  int     `json:"pixelHeight"`
	StayTime     int     `json:"stayTime"`
	GraffitiData Payload `json:"graffitiData"`
	PixelWidth   int     `json:"pixelWidth"`
	GraffitiType int     `json:"graffitiType"`
}

type Frame struct {
	Data     Data `json:"data"`
	DataType int  `json:"dataType"`
}

// Document is the top level array; it always carries a single frame.
type Document []Frame

// Payload is the packed bitplane data. Unlike []byte it is written as an
// array of numbers rather than base64.
type Payload []byte

func (p Payload) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	buf := make([]byte, 0, len(p)*4+2)
	buf = append(buf, '[')
	for i, b := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(b), 10)
	}
	return append(buf, ']'), nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	if ints == nil {
		*p = nil
		return nil
	}
	out := make(Payload, len(ints))
	for i, v := range ints {
		if v < 0 || v > 0xFF {
			return errors.Errorf("graffitiData[%d] out of byte range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*p = out
	return nil
}

// New wraps payload with the fixed display settings.
func New(payload []byte) Document {
	return Document{{
		Data: Data{
			Speed:        Speed,
			Mode:         Mode,
			PixelHeight:  PixelHeight,
			StayTime:     StayTime,
			GraffitiData: payload,
			PixelWidth:   PixelWidth,
			GraffitiType: GraffitiType,
		},
		DataType: DataType,
	}}
}

// Payload returns the packed data of the first frame.
func (d Document) Payload() ([]byte, error) {
	if len(d) == 0 {
		return nil, ErrEmptyDocument
	}
	return d[0].Data.GraffitiData, nil
}

// Marshal renders the compact JSON document for a full payload.
func Marshal(payload []byte) ([]byte, error) {
	if len(payload) != bitplane.Size {
		return nil, &bitplane.ValidationError{Field: "payload", Want: bitplane.Size, Got: len(payload)}
	}
	return json.Marshal(New(payload))
}

// Write writes the document for payload to w, followed by a newline.
func Write(w io.Writer, payload []byte) error {
	bs, err := Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(bs, '\n')); err != nil {
		return errors.Wrap(err, "write envelope")
	}
	return nil
}
