// Package worker serves the notifier: a small HTTP surface that receives
// order events pushed by Pub/Sub and turns them into emails.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"stampshop/config"
	"stampshop/internal/delivery"
	apimiddleware "stampshop/internal/delivery/api/middleware"
	"stampshop/internal/delivery/middleware"
	"stampshop/internal/delivery/worker/handler"
	"stampshop/internal/domain/lifecycle"
	"stampshop/internal/errors"
	"stampshop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	// PushPath is the endpoint configured on the Pub/Sub push subscription.
	PushPath = "/push"

	// Order events are a few hundred bytes; anything near this is not ours.
	pushBodyLimit = "256K"
)

type notifierServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Metrics     *metrics.Metrics `optional:"true"`
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &notifierServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		echo:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	if params.Metrics != nil {
		e.Use(apimiddleware.NewMetricsMiddleware(params.Metrics).Handle)
		e.GET("/metrics", echo.WrapHandler(params.Metrics.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *notifierServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting notifier HTTP server",
		slog.String("host_port", hostPort),
		slog.String("push_path", PushPath),
	)

	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *notifierServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notifier HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
