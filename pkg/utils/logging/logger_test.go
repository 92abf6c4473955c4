package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dosecurve/pkg/utils/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for input, expected := range cases {
		level, err := logging.ParseLevel(input)
		gt.NoError(t, err)
		gt.Equal(t, level, expected)
	}

	_, err := logging.ParseLevel("verbose")
	gt.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Run("valid formats", func(t *testing.T) {
		for _, f := range []logging.Format{logging.FormatAuto, logging.FormatConsole, logging.FormatJSON} {
			parsed, err := logging.ParseFormat(f.String())
			gt.NoError(t, err)
			gt.Equal(t, parsed, f)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := logging.ParseFormat("xml")
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("invalid log format")
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("auto format writes JSON to a non-terminal", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelInfo, &buf, logging.FormatAuto)
		logger.Info("hello", "dose", 60)

		var entry map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry)).Required()
		gt.Equal(t, entry["msg"], any("hello"))
		gt.Equal(t, entry["dose"], any(float64(60)))
	})

	t.Run("level filters lower records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelWarn, &buf, logging.FormatJSON)
		logger.Info("ignored")
		gt.Equal(t, buf.Len(), 0)
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewLogger(slog.LevelInfo, &buf, logging.FormatConsole)
		logger.Info("console message")
		gt.S(t, buf.String()).Contains("console message")
	})
}
