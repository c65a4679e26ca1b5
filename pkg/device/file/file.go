// Package file stores documents on disk instead of sending them anywhere.
package file

import (
	"fmt"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"graffiti/pkg/envelope"
	"graffiti/pkg/proto"
)

// DefaultName is where documents go when no path is given.
const DefaultName = "output.jt"

func New(fs afero.Fs, path string, logger *zap.Logger) proto.Control {
	if path == "" {
		path = DefaultName
	}
	return &File{fs: fs, path: path, logger: logger}
}

// File replaces the document at path on every Draw. The new content is
// written to a sibling temp file first and renamed over the old one.
type File struct {
	fs     afero.Fs
	path   string
	logger *zap.Logger
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Draw(doc []byte) error {
	if _, err := envelope.Parse(doc); err != nil {
		return err
	}

	if n := len(doc); n == 0 || doc[n-1] != '\n' {
		doc = append(doc[:n:n], '\n')
	}

	dir := filepath.Dir(f.path)
	if exists, err := afero.DirExists(f.fs, dir); err != nil {
		return err
	} else if !exists {
		if err2 := f.fs.MkdirAll(dir, 0755); err2 != nil {
			return err2
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s", filepath.Base(f.path), xid.New().String()))
	if err := afero.WriteFile(f.fs, tmp, doc, 0644); err != nil {
		return fmt.Errorf("write temp file failed: %w", err)
	}

	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return fmt.Errorf("replace %s failed: %w", f.path, err)
	}

	f.logger.With(
		zap.String("path", f.path),
		zap.String("size", bytesize.New(float64(len(doc))).String()),
	).Debug("saved")

	return nil
}

func (f *File) Close() error {
	return nil
}
