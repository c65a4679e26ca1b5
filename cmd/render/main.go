package main

import (
	"net/http"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"graffiti/pkg/device/file"
	"graffiti/pkg/device/remote"
	"graffiti/pkg/device/tty"
	"graffiti/pkg/proto"
)

var serial = flag.String("serial", "", "serial port name, empty to write files")
var output = flag.String("output", file.DefaultName, "document path when no serial port is set")
var listen = flag.String("listen", ":9123", "listen addr")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, error) {
				if *debug {
					return zap.NewDevelopment()
				}
				return zap.NewProduction()
			},
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
			func(logger *zap.Logger) (proto.Control, error) {
				if *serial == "" {
					return file.New(afero.NewOsFs(), *output, logger), nil
				}
				return tty.New(proto.NewSerial(*serial), logger)
			},
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}
