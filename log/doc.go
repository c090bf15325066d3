// Package log builds [log/slog] handlers from command line settings.
//
// Three output formats are supported: [FormatText] renders human-friendly
// lines through [charm.land/log/v2], while [FormatJSON] and [FormatLogfmt]
// use the standard library handlers and include source locations.
//
// Typical usage registers flags on the root command and installs the
// handler before any work starts:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	err := cfg.Install(os.Stderr)
//
// --verbose forces [LevelDebug] regardless of --log-level.
package log
