package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "charm.land/log/v2"
)

// Level is a log severity name.
type Level string

const (
	// LevelError logs errors only.
	LevelError Level = "error"
	// LevelWarn logs warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo logs informational messages and above.
	LevelInfo Level = "info"
	// LevelDebug logs everything.
	LevelDebug Level = "debug"
)

// Format is a log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-friendly, optionally colored logs.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var (
	allLevels  = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
	allFormats = []Format{FormatJSON, FormatLogfmt, FormatText}
)

// GetAllLevelStrings returns every accepted level name.
func GetAllLevelStrings() []string {
	out := make([]string, 0, len(allLevels))
	for _, l := range allLevels {
		out = append(out, string(l))
	}

	return out
}

// GetAllFormatStrings returns every accepted format name.
func GetAllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}

// ParseLevel parses a level name, case-insensitively. "warning" is accepted
// as an alias for [LevelWarn].
func ParseLevel(level string) (Level, error) {
	switch l := Level(strings.ToLower(level)); l {
	case LevelError, LevelWarn, LevelInfo, LevelDebug:
		return l, nil
	case "warning":
		return LevelWarn, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// SlogLevel returns the [slog.Level] for l. Unknown levels map to
// [slog.LevelInfo].
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// NewHandler creates a [slog.Handler] writing to w.
func NewHandler(w io.Writer, level Level, format Format) slog.Handler {
	lvl := level.SlogLevel()

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
		})
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(lvl),
		ReportTimestamp: true,
	})
}
