package proto

// Control is a display, or anything standing in for one, that accepts
// complete envelope documents.
type Control interface {
	Draw(doc []byte) error
	Close() error
}
