package tty

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// sendBytes writes bs in small chunks; the display's UART buffer is tiny.
func (t *TTY) sendBytes(bs []byte) error {
	var sent int

	start := time.Now()
	for sent < len(bs) {
		end := sent + chunkSize
		if end > len(bs) {
			end = len(bs)
		}

		n, err := t.serial.Write(bs[sent:end])
		if err != nil {
			return errors.Wrapf(err, "write %s", t.serial.Name())
		}
		if n == 0 {
			return errors.Errorf("write %s: port accepted no data", t.serial.Name())
		}
		sent += n

		if t.pause > 0 && sent < len(bs) {
			time.Sleep(t.pause)
		}
	}
	cost := time.Since(start)

	t.logger.With(
		zap.String("port", t.serial.Name()),
		zap.Int("sent", sent),
		zap.String("cost", cost.String()),
	).Debug("transfer")

	return nil
}
