package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"graffiti/pkg/bitmap"
	"graffiti/pkg/converter"
	"graffiti/pkg/device/file"
	"graffiti/pkg/device/remote"
	"graffiti/pkg/device/tty"
	"graffiti/pkg/device/virtual"
	"graffiti/pkg/palette"
	"graffiti/pkg/proto"
	"graffiti/pkg/source"
)

var input = flag.StringP("input", "i", "", "image path or http(s) url (or first argument)")
var output = flag.StringP("output", "o", file.DefaultName, "output document path")
var serial = flag.String("serial", "", "serial port name, sends to the display instead of a file")
var remoteAddr = flag.String("remote", "", "render server addr, sends to it instead of a file")
var fit = flag.Bool("fit", false, "shrink images larger than 64x16 instead of cropping")
var fill = flag.String("fill", "", "draw a single color instead of an image")
var matrix = flag.String("matrix", "", "comma separated color names, column-major, padded with black")
var decode = flag.String("decode", "", "decode a document and print its pixels")
var bits = flag.Bool("bits", false, "with --decode, print the raw bitplane stream")
var dryRun = flag.Bool("dry-run", false, "log the document instead of sending it")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger, _ := lo.Ternary(*debug, zap.NewDevelopment, zap.NewProduction)()
	defer func() {
		_ = logger.Sync()
	}()

	fs := afero.NewOsFs()
	conv := converter.New(logger, converter.WithFit(*fit))

	if *decode != "" {
		if err := decodeDocument(fs, conv, *decode); err != nil {
			logger.With(zap.Error(err)).Fatal("decode failed")
		}
		return
	}

	doc, err := buildDocument(fs, conv, logger)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("encode failed")
	}

	dev, err := openDevice(fs, logger)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("open device failed")
	}

	err = dev.Draw(doc)
	if closeErr := dev.Close(); closeErr != nil {
		logger.With(zap.Error(closeErr)).Info("close failed")
	}
	if err != nil {
		logger.With(zap.Error(err)).Fatal("draw failed")
	}

	logger.Info("done")
}

func buildDocument(fs afero.Fs, conv *converter.Converter, logger *zap.Logger) ([]byte, error) {
	switch {
	case *matrix != "":
		m, err := converter.ParseMatrix(*matrix)
		if err != nil {
			return nil, err
		}
		return conv.FromMatrix(m)
	case *fill != "":
		c, err := palette.Parse(*fill)
		if err != nil {
			return nil, err
		}
		return conv.FromMatrix(bitmap.NewMatrix(c))
	}

	ref := *input
	if ref == "" {
		ref = flag.Arg(0)
	}
	if ref == "" {
		return nil, errors.New("no input image given")
	}

	img, err := source.New(fs, logger, source.WithProgress(os.Stderr)).Image(ref)
	if err != nil {
		return nil, err
	}

	return conv.FromImage(img)
}

func openDevice(fs afero.Fs, logger *zap.Logger) (proto.Control, error) {
	switch {
	case *dryRun:
		return virtual.Mock(logger), nil
	case *remoteAddr != "":
		return remote.New(*remoteAddr)
	case *serial != "":
		return tty.New(proto.NewSerial(*serial), logger)
	default:
		return file.New(fs, *output, logger), nil
	}
}

func decodeDocument(fs afero.Fs, conv *converter.Converter, path string) error {
	doc, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}

	if *bits {
		bs, err := conv.ToBits(doc)
		if err != nil {
			return err
		}
		planes := lo.Chunk(bs, bitmap.Pixels)
		for _, plane := range planes {
			fmt.Println(strings.Join(lo.Map(plane, func(b uint8, _ int) string {
				return lo.Ternary(b == 1, "1", "0")
			}), ""))
		}
		return nil
	}

	m, err := conv.ToMatrix(doc)
	if err != nil {
		return err
	}
	fmt.Print(converter.Render(m))
	return nil
}
