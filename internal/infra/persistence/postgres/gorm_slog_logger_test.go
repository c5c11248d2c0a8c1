package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return "SELECT * FROM carts", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("skips record not found", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("logs failed query", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), false)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection refused"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "connection refused")
		assert.Contains(t, buf.String(), `"component":"gorm"`)
	})

	t.Run("logs slow query", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("quiet for fast queries outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), false)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("debug logs every statement", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newBufferedLogger(&buf), true)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Contains(t, buf.String(), "SELECT * FROM carts")
	})
}
