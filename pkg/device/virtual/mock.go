package virtual

import (
	"sync"

	"go.uber.org/zap"

	"graffiti/pkg/bitplane"
	"graffiti/pkg/envelope"
	"graffiti/pkg/palette"
	"graffiti/pkg/proto"
)

func Mock(logger *zap.Logger) *Mocker {
	return &Mocker{l: logger}
}

var _ proto.Control = (*Mocker)(nil)

// Mocker decodes and logs every document instead of displaying it.
type Mocker struct {
	sync.Mutex
	l     *zap.Logger
	drawn [][]byte
}

func (m *Mocker) Draw(doc []byte) error {
	payload, err := envelope.Parse(doc)
	if err != nil {
		return err
	}

	matrix, err := bitplane.DecodeMatrix(payload)
	if err != nil {
		return err
	}

	hist := matrix.Image().Histogram()
	fields := make([]zap.Field, 0, len(hist))
	for _, c := range palette.Colors() {
		if n := hist[c]; n > 0 {
			fields = append(fields, zap.Int(c.String(), n))
		}
	}
	m.l.With(fields...).Info("draw")

	m.Lock()
	m.drawn = append(m.drawn, append([]byte(nil), doc...))
	m.Unlock()

	return nil
}

func (m *Mocker) Close() error {
	m.l.Info("close")
	return nil
}

// Drawn returns the documents received so far.
func (m *Mocker) Drawn() [][]byte {
	m.Lock()
	defer m.Unlock()
	return append([][]byte(nil), m.drawn...)
}
