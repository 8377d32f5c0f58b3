package gorm

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func captured(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	l := zerolog.New(&buf).Level(zerolog.TraceLevel)

	return l.WithContext(context.Background()), &buf
}

func sqlFunc() (string, int64) {
	return `SELECT * FROM "vinos"`, 3
}

func TestTrace(t *testing.T) {
	tests := []struct {
		name     string
		level    gormlogger.LogLevel
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{
			name:  "silent logs nothing",
			level: gormlogger.Silent,
			begin: time.Now(),
			err:   errors.New("no such table"),
			empty: true,
		},
		{
			name:     "error is logged at error level",
			level:    gormlogger.Error,
			begin:    time.Now(),
			err:      errors.New("no such table"),
			contains: []string{`"level":"error"`, "no such table", `"rows":3`},
		},
		{
			name:  "record not found is not an error",
			level: gormlogger.Error,
			begin: time.Now(),
			err:   gormlogger.ErrRecordNotFound,
			empty: true,
		},
		{
			name:     "slow query is a warning",
			level:    gormlogger.Warn,
			begin:    time.Now().Add(-time.Second),
			contains: []string{`"level":"warn"`, "vinos"},
		},
		{
			name:  "fast query below info is dropped",
			level: gormlogger.Warn,
			begin: time.Now(),
			empty: true,
		},
		{
			name:     "info traces every statement at debug",
			level:    gormlogger.Info,
			begin:    time.Now(),
			contains: []string{`"level":"debug"`, "gorm query"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := captured(t)

			New(gormlogger.Info, 0).LogMode(tt.level).Trace(ctx, tt.begin, sqlFunc, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}

			for _, c := range tt.contains {
				assert.Contains(t, buf.String(), c)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	ctx, buf := captured(t)

	l := New(gormlogger.Warn, time.Second)
	l.Info(ctx, "hidden %d", 1)
	l.Warn(ctx, "warned %d", 2)
	l.Error(ctx, "failed %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "warned 2")
	assert.Contains(t, out, "failed 3")
}
