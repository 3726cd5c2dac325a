package middleware

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Query parameters that carry customer or payment credentials.
var redactedParams = []string{"phone", "session_id"}

// Probes are too frequent to be worth an access log line.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}
		if _, quiet := quietPaths[c.Request().URL.Path]; quiet {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	// the request logger already carries request_id
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

// redactQuery keeps the last two characters of sensitive values.
func redactQuery(query url.Values) string {
	for _, key := range redactedParams {
		values, ok := query[key]
		if !ok {
			continue
		}
		for i, v := range values {
			values[i] = mask(v)
		}
	}

	return query.Encode()
}

func mask(v string) string {
	if len(v) <= 2 {
		return strings.Repeat("*", len(v))
	}

	return strings.Repeat("*", len(v)-2) + v[len(v)-2:]
}
