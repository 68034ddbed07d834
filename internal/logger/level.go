package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is the level shared by every handler this package creates.
var Level = &level{lvl: &slog.LevelVar{}}

type level struct {
	lvl *slog.LevelVar
}

func (l *level) Enabled(level slog.Level) bool {
	return level >= l.lvl.Level()
}

func (l *level) Set(level slog.Level) {
	l.lvl.Set(level)
}

// SetByName sets the level from its name, as given on the command line.
func (l *level) SetByName(name string) error {
	switch strings.ToLower(name) {
	case "err", "error":
		l.lvl.Set(slog.LevelError)
	case "warn", "warning":
		l.lvl.Set(slog.LevelWarn)
	case "info":
		l.lvl.Set(slog.LevelInfo)
	case "debug":
		l.lvl.Set(slog.LevelDebug)
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}
