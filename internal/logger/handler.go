// Package logger configures log/slog for the wildmatch command.
//
// Terminals get colored output through tint; anything else gets
// slog's logfmt text handler with lowercase level names.
package logger

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// New returns a logger writing to f, colored when f is a terminal.
func New(f *os.File) *slog.Logger {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return slog.New(newTerminalHandler(f))
	}
	return slog.New(newTextHandler(f))
}

func newTextHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level.lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				v := a.Value.Any().(slog.Level)
				a.Value = slog.StringValue(strings.ToLower(v.String()))
			}
			return a
		},
	})
}

func newTerminalHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		NoColor:   runtime.GOOS == "windows",
		AddSource: true,
		Level:     Level.lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.SourceKey && !Level.Enabled(slog.LevelDebug) {
				return slog.Attr{}
			}
			return a
		},
	})
}
