package proto

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.bug.st/serial"
)

type Options struct {
	DTR         bool
	RTS         bool
	BaudRate    int
	ReadTimeout time.Duration
}

func NewSerial(name string) *Serial {
	return &Serial{name: name}
}

// Serial is a port picked by a substring of its name, so "ttyUSB" or
// "usbserial" matches whatever the OS enumerated.
type Serial struct {
	name string
	port serial.Port
}

func (s *Serial) Ports() ([]string, error) {
	return serial.GetPortsList()
}

func (s *Serial) Open(opts *Options) error {
	ports, err := s.Ports()
	if err != nil {
		return errors.Wrap(err, "list ports")
	}

	var matched string
	for _, name := range ports {
		if strings.Contains(name, s.name) {
			matched = name
			break
		}
	}
	if matched == "" {
		return errors.Errorf("serial port %q not found", s.name)
	}

	port, err := serial.Open(matched, &serial.Mode{BaudRate: opts.BaudRate})
	if err != nil {
		return errors.Wrapf(err, "open %s", matched)
	}

	if err := port.SetDTR(opts.DTR); err != nil {
		return err
	}

	if err := port.SetRTS(opts.RTS); err != nil {
		return err
	}

	if opts.ReadTimeout > 0 {
		if err := port.SetReadTimeout(opts.ReadTimeout); err != nil {
			return err
		}
	}

	s.name = matched
	s.port = port
	return nil
}

func (s *Serial) Name() string {
	return s.name
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

func (s *Serial) Read(p []byte) (n int, err error) {
	return s.port.Read(p)
}

func (s *Serial) Write(p []byte) (n int, err error) {
	return s.port.Write(p)
}
