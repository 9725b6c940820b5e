package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylecache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{"info level", slog.LevelInfo, "information message", "handler_info"},
		{"warn level", slog.LevelWarn, "warning message", "handler_warn"},
		{"error level", slog.LevelError, "error message", "handler_error"},
		{"debug level filtered", slog.LevelDebug, "debug message", "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_AttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("path", "/src/a.sass").
		WithGroup("cache")
	lg.Info("entry written", "hit", false)

	assert.Equal(t, "entry written path=/src/a.sass cache.hit=false\n", buf.String())
}

func TestPrettyHandler_Groups(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "nested groups",
			log: func(lg *slog.Logger) {
				lg.WithGroup("cache").WithGroup("entry").Info("written", "fresh", true)
			},
			want: "written cache.entry.fresh=true\n",
		},
		{
			name: "attrs bound inside a group",
			log: func(lg *slog.Logger) {
				lg.WithGroup("cache").With("dir", "/tmp/c").WithGroup("entry").Info("written", "fresh", true)
			},
			want: "written cache.dir=/tmp/c cache.entry.fresh=true\n",
		},
		{
			name: "empty group name is ignored",
			log: func(lg *slog.Logger) {
				lg.WithGroup("").Info("written", "fresh", true)
			},
			want: "written fresh=true\n",
		},
		{
			name: "group attribute is flattened",
			log: func(lg *slog.Logger) {
				lg.Info("written", slog.Group("entry", "path", "/c/a.sassc", slog.Group("", "size", 3)))
			},
			want: "written entry.path=/c/a.sassc entry.size=3\n",
		},
		{
			name: "empty attributes are dropped",
			log: func(lg *slog.Logger) {
				lg.Info("written", slog.Attr{}, slog.Group("none"), "fresh", true)
			},
			want: "written fresh=true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("cache miss", "path", "/src/a.sass")
	assert.Empty(t, buf.String(), "debug is filtered at the default level")

	lg.SetLevel(slog.LevelDebug)
	lg.Debug("cache miss", "path", "/src/a.sass")

	goldie.New(t).Assert(t, "logger_debug", buf.Bytes())
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("loaded options")
	lg.Warn("skipping empty load path")

	goldie.New(t).Assert(t, "logger_info_warn", buf.Bytes())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to read source"), "failed to build tree")
	lg.Error(err)

	goldie.New(t).Assert(t, "logger_error_chain", buf.Bytes())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFormatChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: "Error: outer layer\n\n  Caused by:\n    → middle layer\n    → root cause",
		},
		{
			name: "multiline message",
			err:  zerr.Wrap(errors.New("root"), "first\nsecond"),
			want: "Error: first\n       second\n\n  Caused by:\n    → root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatChainExported(tt.err))
		})
	}
}
