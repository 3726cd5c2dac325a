package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"stampshop/config"
	"stampshop/internal/delivery"
	apimiddleware "stampshop/internal/delivery/api/middleware"
	"stampshop/internal/delivery/api/router"
	"stampshop/internal/delivery/api/validator"
	"stampshop/internal/delivery/middleware"
	"stampshop/internal/domain/lifecycle"
	"stampshop/internal/errors"
	"stampshop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const defaultBodyLimit = "12M"

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	RouterParams router.RouterParams
}

// NewServer builds the storefront API. Middleware order matters: the request
// id must exist before anything logs, and metrics must see the final status.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		apimiddleware.NewMetricsMiddleware(params.Metrics).Handle,
		echomiddleware.CORSWithConfig(corsConfig(params.Cfg)),
		echomiddleware.BodyLimit(bodyLimit(params.Cfg)),
	)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// corsConfig lets the storefront's own origin send the admin cookie. With no
// base URL configured any origin may call, without credentials.
func corsConfig(cfg *config.Config) echomiddleware.CORSConfig {
	if cfg.App == nil || cfg.App.BaseURL == "" {
		return echomiddleware.DefaultCORSConfig
	}

	return echomiddleware.CORSConfig{
		AllowOrigins:     []string{strings.TrimRight(cfg.App.BaseURL, "/")},
		AllowCredentials: true,
	}
}

// bodyLimit falls back to a limit large enough for a trade-license upload.
func bodyLimit(cfg *config.Config) string {
	if cfg.HTTP.MaxRequestBodySize == "" {
		return defaultBodyLimit
	}

	return cfg.HTTP.MaxRequestBodySize
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
