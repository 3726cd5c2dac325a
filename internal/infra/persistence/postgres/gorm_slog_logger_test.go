package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCapturingGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), &buf
}

func staticSQL() (string, int64) {
	return `SELECT * FROM "orders" WHERE friendly_id = $1`, 0
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l, _ := newCapturingGormLogger(false)
	sql, params := l.ParamsFilter(context.Background(), "UPDATE orders SET customer_phone = $1", "0501234567")
	assert.Equal(t, "UPDATE orders SET customer_phone = $1", sql)
	assert.Nil(t, params)

	l, _ = newCapturingGormLogger(true)
	_, params = l.ParamsFilter(context.Background(), "UPDATE orders SET customer_phone = $1", "0501234567")
	assert.Equal(t, []any{"0501234567"}, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("expected errors stay quiet", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)

		l.Trace(context.Background(), time.Now(), staticSQL, gorm.ErrRecordNotFound)
		l.Trace(context.Background(), time.Now(), staticSQL, &pgconn.PgError{Code: pgUniqueViolation})

		assert.Empty(t, buf.String())
	})

	t.Run("unexpected error carries the request id", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)
		reqLogger := l.logger.With(slog.String("request_id", "req-42"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), staticSQL, errors.New("connection reset"))

		out := buf.String()
		assert.Contains(t, out, "GORM query failed")
		assert.Contains(t, out, `"request_id":"req-42"`)
		assert.Contains(t, out, "connection reset")
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), staticSQL, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("plain queries only in debug", func(t *testing.T) {
		l, buf := newCapturingGormLogger(false)
		l.Trace(context.Background(), time.Now(), staticSQL, nil)
		assert.Empty(t, buf.String())

		l, buf = newCapturingGormLogger(true)
		l.Trace(context.Background(), time.Now(), staticSQL, nil)
		assert.Contains(t, buf.String(), "GORM query")
	})
}

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 30 * time.Millisecond}

	_, waited := poolWaitAttrs(prev, prev)
	assert.False(t, waited)

	cur := sql.DBStats{WaitCount: 5, WaitDuration: 130 * time.Millisecond, InUse: 10, MaxOpenConnections: 10}
	attrs, waited := poolWaitAttrs(prev, cur)
	assert.True(t, waited)
	assert.Contains(t, attrs, slog.Int64("waits", 2))
	assert.Contains(t, attrs, slog.Duration("avgWait", 50*time.Millisecond))
}
