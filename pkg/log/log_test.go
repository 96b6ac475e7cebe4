package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestLogger(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Debug("debug message", "key1", "value1", "number", 42)
	logger.Info("info message", OperationKey, OperationFit)
	logger.Error("error message", fmt.Errorf("boom"), ErrorCodeKey, ErrorNotFitted)

	require.NotEmpty(t, buffer.String())
	assert.True(t, logger.ContainsMessage("debug message"))
	assert.True(t, logger.ContainsField("key1", "value1"))
	assert.True(t, logger.ContainsField("number", 42.0))
	assert.True(t, logger.ContainsField("error", "boom"))
	assert.True(t, logger.ContainsField(ErrorCodeKey, ErrorNotFitted))

	entries, err := logger.GetLogEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestTestLoggerWithAndLevel(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	child := logger.With(ModelNameKey, "KNNRegressor")

	child.Debug("hidden")
	child.Info("visible", OperationKey, OperationPredict)

	assert.False(t, logger.ContainsMessage("hidden"))
	assert.True(t, logger.ContainsField(ModelNameKey, "KNNRegressor"))
	assert.False(t, child.Enabled(context.Background(), LevelDebug))

	logger.SetLevel(LevelDebug)
	assert.True(t, child.Enabled(context.Background(), LevelDebug))

	logger.Clear()
	assert.False(t, logger.ContainsMessage("visible"))
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo)

	logger.Debug("dropped")
	logger.With(ModelNameKey, "LinearRegressor").Info("fit", SamplesKey, 10, FeaturesKey, 1)
	logger.Error("failed", errors.New("singular"), OperationKey, OperationFit)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "info", first["level"])
	assert.Equal(t, "LinearRegressor", first[ModelNameKey])
	assert.Equal(t, 10.0, first[SamplesKey])

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "singular", second["error"])
	assert.Equal(t, OperationFit, second[OperationKey])

	assert.False(t, logger.Enabled(context.Background(), LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), LevelWarn))
}

func TestZerologProvider(t *testing.T) {
	var buf bytes.Buffer
	p := NewZerologProvider(&buf, LevelWarn)

	p.GetLoggerWithName("conformal").Info("dropped")
	p.SetLevel(LevelInfo)
	p.GetLoggerWithName("conformal").Info("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"ml.component":"conformal"`)
}

func TestSetLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	logger, _ := NewTestLogger(LevelDebug)
	SetLogger(logger)
	GetLogger().Info("through default")
	assert.True(t, logger.ContainsMessage("through default"))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "info": LevelInfo, "warn": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, strings.ToUpper(in), got.String())
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil)))

	logger.Error("fit failed", ErrAttr(errors.New("singular matrix")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "singular matrix", entry[ErrAttrKey])
	assert.Contains(t, entry, StacktraceAttrKey)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, "info"))
	slog.Info("hello")
	assert.Contains(t, buf.String(), `"severity":"INFO"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)

	assert.Error(t, SetupLogger(&buf, "loud"))
}
