package remote

import (
	"context"
	"net/http"
	"net/rpc"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"graffiti/pkg/envelope"
	"graffiti/pkg/proto"
)

// Proxy serves the rpc service on srv for the lifetime of the app.
func Proxy(dev proto.Control, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	server := rpc.NewServer()
	if err := server.Register(NewService(dev, logger)); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle(rpc.DefaultRPCPath, server)
	srv.Handler = mux

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Fatal("listen failed")
				}
			}()
			logger.With(zap.String("addr", srv.Addr)).Info("listening")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return dev.Close()
		},
	})

	return nil
}

func NewService(dev proto.Control, logger *zap.Logger) *Service {
	return &Service{dev: dev, logger: logger}
}

type Service struct {
	dev    proto.Control
	logger *zap.Logger
}

func (s *Service) Draw(req *DrawRequest, _ *EmptyResponse) error {
	if _, err := envelope.Parse(req.Document); err != nil {
		s.logger.With(zap.Error(err)).Info("rejected")
		return err
	}

	return s.dev.Draw(req.Document)
}
