package postgres

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"evacuation/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)

	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func newRecordingQueryLogger(cfg *config.Config) (gormlogger.Interface, *recordingHandler) {
	h := &recordingHandler{}

	return newQueryLogger(slog.New(h), cfg), h
}

func staticSQL() (string, int64) {
	return `SELECT * FROM "evacuations"`, 1
}

func TestQueryLogger_Trace(t *testing.T) {
	slowCfg := &config.Config{}
	slowCfg.Env.Log.SlowQuery = 10 * time.Millisecond
	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true

	tests := []struct {
		name      string
		cfg       *config.Config
		begin     time.Time
		err       error
		wantMsg   string
		wantLevel slog.Level
	}{
		{
			name:      "failure",
			begin:     time.Now(),
			err:       errors.New("connection reset"),
			wantMsg:   "Query failed",
			wantLevel: slog.LevelError,
		},
		{
			name:      "constraint violation",
			begin:     time.Now(),
			err:       errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert"),
			wantMsg:   "Query rejected by constraint",
			wantLevel: slog.LevelWarn,
		},
		{
			name:      "slow",
			cfg:       slowCfg,
			begin:     time.Now().Add(-time.Second),
			wantMsg:   "Slow query",
			wantLevel: slog.LevelWarn,
		},
		{
			name:      "debug logs every statement",
			cfg:       debugCfg,
			begin:     time.Now(),
			wantMsg:   "Query",
			wantLevel: slog.LevelInfo,
		},
		{
			name:  "record not found is quiet",
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
		},
		{
			name:  "fast query is quiet",
			begin: time.Now(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, h := newRecordingQueryLogger(tt.cfg)

			l.Trace(context.Background(), tt.begin, staticSQL, tt.err)

			if tt.wantMsg == "" {
				assert.Empty(t, h.records)

				return
			}
			require.Len(t, h.records, 1)
			assert.Equal(t, tt.wantMsg, h.records[0].Message)
			assert.Equal(t, tt.wantLevel, h.records[0].Level)
		})
	}
}

func TestQueryLogger_LogModeSilent(t *testing.T) {
	l, h := newRecordingQueryLogger(nil)

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), staticSQL, errors.New("boom"))
	silent.Error(context.Background(), "failed %d", 1)

	assert.Empty(t, h.records)

	l.Warn(context.Background(), "pool %s", "busy")
	require.Len(t, h.records, 1)
	assert.Equal(t, slog.LevelWarn, h.records[0].Level)
}
