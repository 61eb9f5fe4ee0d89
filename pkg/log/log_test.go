package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "INFO", want: InfoLevel},
		{in: "", want: InfoLevel},
		{in: "warning", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "verbose", want: InfoLevel, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBaseLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewConsoleOutput(WithWriter(&buf))),
	)

	logger.WithComponent("store").Debug("Stored resource", Resource("/subscriptions/s/x"), Int("bytes", 42))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "DEBUG", got["level"])
	assert.Equal(t, "Stored resource", got["message"])
	assert.Equal(t, "store", got[ComponentKey])
	assert.Equal(t, "/subscriptions/s/x", got[ResourceKey])
	assert.Equal(t, float64(42), got["bytes"])
}

func TestBaseLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(WithLevel(WarnLevel), WithOutput(NewConsoleOutput(WithWriter(&buf))))

	logger.Info("hidden")
	logger.Debugf("hidden %d", 1)
	assert.Zero(t, buf.Len())

	logger.Warnf("value %q is unknown", "Paused")
	assert.Contains(t, buf.String(), `value "Paused" is unknown`)
}

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{DisableColors: true, DisableTimestamp: true}
	out, err := f.Format(&Entry{
		Level:   WarnLevel,
		Message: "Unknown enum value",
		Fields:  Fields{"value": "Paused", "enum": "DataTypeState"},
	})
	require.NoError(t, err)
	assert.Equal(t, "WRN Unknown enum value enum=DataTypeState value=Paused\n", string(out))
}

func TestRedactionHook(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewConsoleOutput(WithWriter(&buf))),
		WithHook(NewRedactionHook([]string{"triggerUri"})),
	)
	logger.Info("Imported action", Str("triggerUri", "https://prod.logic.azure.com/sig=secret"))

	assert.NotContains(t, buf.String(), "secret")
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestApplyConfig(t *testing.T) {
	_, err := ApplyConfig(&Config{Level: "info", Format: "xml"})
	assert.Error(t, err)

	_, err = ApplyConfig(&Config{Level: "loud"})
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "logs", "armkit.log")
	logger, err := ApplyConfig(&Config{Level: "debug", Format: "json", Output: file})
	require.NoError(t, err)
	logger.Debug("to file")
	require.NoError(t, logger.(*BaseLogger).Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{"))
	assert.Contains(t, string(data), "to file")
}

func TestTestLogger_SharesEntriesWithChildren(t *testing.T) {
	logger := NewTestLogger()
	child := logger.WithComponent("pager").WithError(errors.New("boom"))

	child.Error("Fetch failed")
	logger.Debug("dropped")

	entries := logger.GetEntries()
	require.Len(t, entries, 1)
	assert.True(t, logger.AssertLoggedWithField(ErrorLevel, "Fetch failed", ComponentKey, "pager"))
	assert.True(t, logger.AssertLoggedWithField(ErrorLevel, "Fetch failed", ErrorKey, "boom"))

	logger.ClearEntries()
	assert.Empty(t, logger.GetEntries())
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, GetDefaultLogger(), FromContext(t.Context()))

	logger := NewTestLogger()
	ctx := WithLogger(t.Context(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
