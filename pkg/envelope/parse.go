package envelope

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
)

var ErrEmptyDocument = errors.New("document has no frames")

// ParseError reports a document that could not be read.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "envelope: parse failed: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse extracts the payload of the first frame. Comments and trailing
// commas, as left by hand edits, are tolerated.
func Parse(doc []byte) ([]byte, error) {
	var d Document
	if err := json.Unmarshal(jsonc.ToJSON(doc), &d); err != nil {
		return nil, &ParseError{Err: err}
	}

	payload, err := d.Payload()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if payload == nil {
		return nil, &ParseError{Err: errors.New("graffitiData missing")}
	}

	return payload, nil
}

// Read is Parse over everything r yields.
func Read(r io.Reader) ([]byte, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read envelope")
	}
	return Parse(bs)
}
