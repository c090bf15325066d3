package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ponder/log"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		want     log.Level
		wantSlog slog.Level
	}{
		"error":   {input: "error", want: log.LevelError, wantSlog: slog.LevelError},
		"warn":    {input: "warn", want: log.LevelWarn, wantSlog: slog.LevelWarn},
		"warning": {input: "Warning", want: log.LevelWarn, wantSlog: slog.LevelWarn},
		"info":    {input: "INFO", want: log.LevelInfo, wantSlog: slog.LevelInfo},
		"debug":   {input: "debug", want: log.LevelDebug, wantSlog: slog.LevelDebug},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := log.ParseLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantSlog, got.SlogLevel())
		})
	}
}

func TestLevelErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "trace", "warn "} {
		_, err := log.ParseLevel(input)
		require.ErrorIs(t, err, log.ErrUnknownLogLevel, "input %q", input)
	}

	_, err := log.ParseFormat("yaml")
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)

	assert.Equal(t, slog.LevelInfo, log.Level("verbose").SlogLevel())
}

func TestEveryNameParses(t *testing.T) {
	t.Parallel()

	for _, name := range log.GetAllLevelStrings() {
		lvl, err := log.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(lvl))
	}

	for _, name := range log.GetAllFormatStrings() {
		f, err := log.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(f))
	}
}

func TestNewHandlerOutput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(t *testing.T, out string)
		format log.Format
	}{
		"json": {
			format: log.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()

				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "scanned document", entry["msg"])
				assert.Equal(t, "WARN", entry["level"])
				assert.InDelta(t, 3, entry["annotations"], 0)
				assert.Contains(t, entry, "source")
			},
		},
		"logfmt": {
			format: log.FormatLogfmt,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "level=WARN")
				assert.Contains(t, out, `msg="scanned document"`)
				assert.Contains(t, out, "annotations=3")
			},
		},
		"text": {
			format: log.FormatText,
			check: func(t *testing.T, out string) {
				t.Helper()

				assert.Contains(t, out, "WARN")
				assert.Contains(t, out, "scanned document")
				assert.Contains(t, out, "annotations=3")
				assert.NotContains(t, out, "{")
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, log.LevelWarn, tc.format))
			logger.Warn("scanned document", slog.Int("annotations", 3))

			tc.check(t, buf.String())
		})
	}
}

func TestNewHandlerFilters(t *testing.T) {
	t.Parallel()

	// Each level admits records at its own slog level and above.
	for _, lvl := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		for _, format := range []log.Format{log.FormatJSON, log.FormatText} {
			var buf bytes.Buffer

			logger := slog.New(log.NewHandler(&buf, lvl, format))

			for _, rec := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
				buf.Reset()
				logger.Log(t.Context(), rec, "record")

				if rec >= lvl.SlogLevel() {
					assert.Contains(t, buf.String(), "record", "%s/%s admits %s", lvl, format, rec)
				} else {
					assert.Empty(t, buf.String(), "%s/%s drops %s", lvl, format, rec)
				}
			}
		}
	}
}

func newCommand(t *testing.T, args ...string) (*log.Config, *cobra.Command) {
	t.Helper()

	cfg := log.NewConfig()
	cmd := &cobra.Command{Use: "ponder"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))
	require.NoError(t, cmd.Flags().Parse(args))

	return cfg, cmd
}

func TestConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr    error
		args       []string
		wantLevel  log.Level
		wantFormat log.Format
	}{
		"defaults": {
			wantLevel:  log.LevelWarn,
			wantFormat: log.FormatText,
		},
		"explicit": {
			args:       []string{"--log-level", "info", "--log-format", "json"},
			wantLevel:  log.LevelInfo,
			wantFormat: log.FormatJSON,
		},
		"verbose overrides level": {
			args:       []string{"-v", "--log-level", "error"},
			wantLevel:  log.LevelDebug,
			wantFormat: log.FormatText,
		},
		"verbose skips level parsing": {
			args:       []string{"--verbose", "--log-level", "loud"},
			wantLevel:  log.LevelDebug,
			wantFormat: log.FormatText,
		},
		"bad level": {
			args:    []string{"--log-level", "loud"},
			wantErr: log.ErrUnknownLogLevel,
		},
		"bad format": {
			args:    []string{"--log-format", "xml"},
			wantErr: log.ErrUnknownLogFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg, _ := newCommand(t, tc.args...)

			lvl, f, err := cfg.Levels()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, log.ErrInvalidArgument)

				_, err = cfg.NewHandler(&bytes.Buffer{})
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, lvl)
			assert.Equal(t, tc.wantFormat, f)
		})
	}
}

func TestConfigErrorNamesFlag(t *testing.T) {
	t.Parallel()

	cfg, _ := newCommand(t, "--log-level", "loud")

	_, _, err := cfg.Levels()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-level")
}

func TestConfigNewHandler(t *testing.T) {
	t.Parallel()

	cfg, _ := newCommand(t)

	var buf bytes.Buffer

	h, err := cfg.NewHandler(&buf)
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Warn("no project root", slog.String("path", "/tmp/a.dart"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "no project root")
	assert.Contains(t, buf.String(), "path=/tmp/a.dart")
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	_, cmd := newCommand(t)

	want := map[string][]string{
		"log-level":  log.GetAllLevelStrings(),
		"log-format": log.GetAllFormatStrings(),
	}

	for flag, values := range want {
		fn, ok := cmd.GetFlagCompletionFunc(flag)
		require.True(t, ok, flag)

		got, directive := fn(cmd, nil, "")
		assert.Equal(t, values, got)
		assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	}
}
