package log

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat_Fields(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelInfo, CatPicker, "pick committed", "index", 2, "choice", "Tacos")

	require.Equal(t, "2025-12-06T10:45:00 [INFO] [picker] pick committed index=2 choice=Tacos\n", got)
}

func TestFormat_OrphanKey(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelWarn, CatClipboard, "odd", "lonely")

	require.Equal(t, "2025-12-06T10:45:00 [WARN] [clipboard] odd lonely=<missing>\n", got)
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	setDefault(nil)
	require.False(t, Enabled())
	require.NotPanics(t, func() {
		Debug(CatUI, "nothing")
		ErrorErr(CatUI, "nothing", errors.New("boom"))
	})
}

func TestLog_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	Info(CatConfig, "loaded", "path", "config.yaml")
	ErrorErr(CatClipboard, "copy failed", errors.New("no display"))

	out := buf.String()
	require.Contains(t, out, "[INFO] [config] loaded path=config.yaml")
	require.Contains(t, out, "[ERROR] [clipboard] copy failed error=no display")
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetMinLevel(LevelWarn)
	Debug(CatUI, "hidden")
	Warn(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_SetEnabledFalse(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	defer cleanup()

	SetEnabled(false)
	Error(CatUI, "muted")

	require.Empty(t, buf.String())
	require.False(t, Enabled())
}

func TestInitWithTeaLog_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pickr.log")

	cleanup, err := InitWithTeaLog(path, "pickr")
	require.NoError(t, err)
	require.True(t, Enabled())

	cleanup()
	require.False(t, Enabled())
	require.FileExists(t, path)
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}
