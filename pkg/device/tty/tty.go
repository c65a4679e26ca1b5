// Package tty drives a display attached to a serial port. Documents are sent
// as a single line of JSON.
package tty

import (
	"time"

	"go.uber.org/zap"

	"graffiti/pkg/envelope"
	"graffiti/pkg/proto"
)

const (
	BaudRate  = 115200
	chunkSize = 64
)

func New(serial *proto.Serial, logger *zap.Logger) (proto.Control, error) {
	dev := &TTY{
		serial: serial,
		logger: logger,
		pause:  5 * time.Millisecond,
	}
	return dev, serial.Open(&proto.Options{
		DTR:         true,
		RTS:         true,
		BaudRate:    BaudRate,
		ReadTimeout: time.Millisecond,
	})
}

type TTY struct {
	serial *proto.Serial
	logger *zap.Logger
	pause  time.Duration
}

func (t *TTY) Draw(doc []byte) error {
	// refuse anything the display would choke on
	if _, err := envelope.Parse(doc); err != nil {
		return err
	}

	if n := len(doc); n == 0 || doc[n-1] != '\n' {
		doc = append(doc[:n:n], '\n')
	}

	return t.sendBytes(doc)
}

func (t *TTY) Close() error {
	return t.serial.Close()
}
