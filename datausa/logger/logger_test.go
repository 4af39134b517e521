package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler("datausa", &buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	log.Info("Query executed",
		slog.String("type", "db"),
		slog.String("table", "pums_1year.yg"),
		slog.Duration("took", 1500*time.Microsecond))

	line := buf.String()
	assert.Contains(t, line, "[datausa]")
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "[DB]")
	assert.Contains(t, line, "Query executed (took 1.5ms)")
	assert.Contains(t, line, "table=pums_1year.yg")
	assert.NotContains(t, line, "type=db")
}

func TestCustomHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler("datausa", &buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("Reflection failed", slog.String("type", "error"), slog.Any("error", errors.New("boom")))
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "[ERR]")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestCustomHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(NewHandler("datausa", &buf, nil))
	log := base.With(slog.String("type", "cmd")).WithGroup("req")

	log.Info("Command executed", slog.String("table", "acs.yg"))

	assert.Contains(t, buf.String(), "[CMD]")
	assert.Contains(t, buf.String(), "req.table=acs.yg")

	buf.Reset()
	base.Info("plain")
	assert.Contains(t, buf.String(), "[SYS]")
	assert.NotContains(t, buf.String(), "req.")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("datausa", "json", slog.LevelDebug, false, &buf)

	log.Debug("Table reflected", slog.String("table", "acs.yg"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Table reflected", record["msg"])
	assert.Equal(t, "acs.yg", record["table"])
}
