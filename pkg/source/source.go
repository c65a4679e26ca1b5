// Package source loads the images to be drawn.
package source

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func New(fs afero.Fs, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader reads source images from a filesystem or over http(s).
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

type Option func(l *Loader)

// WithProgress shows a download bar on w (usually os.Stderr).
func WithProgress(w io.Writer) Option {
	return func(l *Loader) {
		l.progress = w
	}
}

// WithClient replaces the http client, mostly for tests.
func WithClient(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}

func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// Bytes returns the raw content behind ref, a path or an http(s) URL.
func (l *Loader) Bytes(ref string) ([]byte, error) {
	if isRemote(ref) {
		return l.download(ref)
	}

	bs, err := afero.ReadFile(l.fs, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", ref)
	}
	return bs, nil
}

// Image loads and decodes the image behind ref.
func (l *Loader) Image(ref string) (image.Image, error) {
	bs, err := l.Bytes(ref)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	b := img.Bounds()
	l.log.With(
		zap.String("src", ref),
		zap.String("format", format),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
		zap.Int("w", b.Dx()),
		zap.Int("h", b.Dy()),
	).Debug("loaded")

	return img, nil
}

func (l *Loader) download(ref string) ([]byte, error) {
	resp, err := l.cli.R().Get(ref)
	if err != nil {
		return nil, errors.Wrapf(err, "download %s", ref)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 300 {
		return nil, errors.Errorf("download %s: %s", ref, strings.TrimSpace(resp.Status()))
	}

	var dst io.Writer = io.Discard
	if l.progress != nil {
		dst = progressbar.NewOptions64(
			resp.RawResponse.ContentLength,
			progressbar.OptionSetWriter(l.progress),
			progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", ref)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, dst), resp.RawBody()); err != nil {
		return nil, errors.Wrapf(err, "download %s", ref)
	}

	return buf.Bytes(), nil
}
