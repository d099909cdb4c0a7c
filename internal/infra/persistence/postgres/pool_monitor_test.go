package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Observe(t *testing.T) {
	var buf bytes.Buffer
	current := sql.DBStats{}
	m := &poolMonitor{
		stats:  func() sql.DBStats { return current },
		logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	m.observe(context.Background())
	assert.Empty(t, buf.String())

	current.WaitCount, current.WaitDuration = 2, 10*time.Millisecond
	m.observe(context.Background())
	assert.Contains(t, buf.String(), "Postgres pool wait observed")
	assert.Contains(t, buf.String(), "avgWait=5ms")

	buf.Reset()
	current.WaitCount, current.WaitDuration = 3, 110*time.Millisecond
	m.observe(context.Background())
	assert.Contains(t, buf.String(), "Postgres pool wait detected")
	assert.Contains(t, buf.String(), "waitCountDelta=1")

	buf.Reset()
	m.observe(context.Background())
	assert.Empty(t, buf.String())
}
