package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
)

// testCleanup 测试辅助函数，在测试结束时执行 cleanup
func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup error: %v", err)
		}
	})
}

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		assert.Contains(t, output, want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelWarn).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.False(t, logger.Enabled(ctx, xlog.LevelInfo))
	assert.True(t, logger.Enabled(ctx, xlog.LevelError))
}

func TestLogger_DynamicLevelSharedByDerived(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	child := logger.With(xlog.Component("resolver"))
	ctx := context.Background()

	child.Debug(ctx, "before")
	logger.SetLevel(xlog.LevelDebug)
	child.Debug(ctx, "after")

	assert.Equal(t, xlog.LevelDebug, logger.GetLevel())
	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
	assert.Contains(t, buf.String(), "component=resolver")
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat("JSON").
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.WithGroup("registry").Info(context.Background(), "loaded",
		xlog.Count(3),
		xlog.OUI([3]byte{0x00, 0x21, 0x9b}),
	)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "loaded", record["msg"])
	group, ok := record["registry"].(map[string]any)
	require.True(t, ok, "registry group missing: %v", record)
	assert.EqualValues(t, 3, group["count"])
	assert.Equal(t, "00-21-9b", group["oui"])
}

func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	//nolint:staticcheck // 验证 nil ctx 不会 panic
	logger.Info(nil, "nil ctx")
	assert.Contains(t, buf.String(), "nil ctx")
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetAddSource(true).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "with source")
	assert.Contains(t, buf.String(), "xlog_test.go")
}

func TestLogger_WithEmpty(t *testing.T) {
	logger, cleanup, err := xlog.New().SetOutput(&bytes.Buffer{}).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	assert.Same(t, logger, logger.With())
	assert.Same(t, logger, logger.WithGroup(""))
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *xlog.Builder
		wantErr string
	}{
		{"nil_output", xlog.New().SetOutput(nil), "nil output"},
		{"bad_level", xlog.New().SetLevelString("verbose"), "unknown level"},
		{"bad_format", xlog.New().SetFormat("xml"), "unknown format"},
		{"empty_rotation", xlog.New().SetRotation(xlog.Rotation{}), "empty rotation filename"},
		{"negative_rotation", xlog.New().SetRotation(xlog.Rotation{Filename: "x.log", MaxBackups: -1}), "negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := tt.builder.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, logger)
			assert.Nil(t, cleanup)
		})
	}
}

func TestBuilder_Rotation(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ouictl.log")
	logger, cleanup, err := xlog.New().
		SetRotation(xlog.Rotation{Filename: file, MaxSizeMB: 1}).
		Build()
	require.NoError(t, err)

	logger.Info(context.Background(), "rotated", xlog.Path(file))
	require.NoError(t, cleanup())
	// cleanup 可重复调用
	require.NoError(t, cleanup())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotated")
}

func TestDiscard(t *testing.T) {
	logger := xlog.Discard()
	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, xlog.LevelError))
	logger.Error(ctx, "dropped", xlog.Err(errors.New("boom")))
}

func TestAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"err", xlog.Err(errors.New("boom")), xlog.KeyError, "boom"},
		{"nil_err", xlog.Err(nil), xlog.KeyError, ""},
		{"count", xlog.Count(42), xlog.KeyCount, "42"},
		{"path", xlog.Path("/tmp/oui.dat"), xlog.KeyPath, "/tmp/oui.dat"},
		{"oui", xlog.OUI([3]byte{0xac, 0xde, 0x48}), xlog.KeyOUI, "ac-de-48"},
		{"address", xlog.Address("00:21:9b:00:00:01"), xlog.KeyAddress, "00:21:9b:00:00:01"},
		{"duration", xlog.Duration(1500 * time.Millisecond), xlog.KeyDuration, "1.5s"},
		{"component", xlog.Component("watcher"), xlog.KeyComponent, "watcher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.String())
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    xlog.Level
		wantErr bool
	}{
		{"debug", xlog.LevelDebug, false},
		{" INFO ", xlog.LevelInfo, false},
		{"warn", xlog.LevelWarn, false},
		{"Warning", xlog.LevelWarn, false},
		{"error", xlog.LevelError, false},
		{"trace", xlog.LevelInfo, true},
		{"", xlog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := xlog.ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	var lvl xlog.Level
	require.NoError(t, lvl.UnmarshalText([]byte("error")))
	assert.Equal(t, "ERROR", lvl.String())
	assert.Error(t, lvl.UnmarshalText([]byte("loud")))
	assert.True(t, strings.EqualFold(xlog.LevelWarn.String(), "warn"))
}
