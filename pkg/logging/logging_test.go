package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitForCLI_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("API", errors.New("boom"), "request %s failed", "GET /x")

	out := buf.String()
	assert.Contains(t, out, "request GET /x failed")
	assert.Contains(t, out, "subsystem=API")
	assert.Contains(t, out, "error=boom")
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("API", "not shown")
	Warn("API", "shown")

	assert.NotContains(t, buf.String(), "not shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	Warn("Permissions", "fetch failed: %d", 500)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Permissions", entry.Subsystem)
		assert.Equal(t, "fetch failed: 500", entry.Message)
	default:
		require.Fail(t, "expected a log entry on the TUI channel")
	}
}

func TestInitForTUI_FullBufferDoesNotBlock(t *testing.T) {
	initCommon("tui", LevelDebug, nil, 1)
	defer CloseTUIChannel()

	Info("TUI", "first")
	Info("TUI", "second is dropped")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, "WARN", LevelWarn.String())
}
