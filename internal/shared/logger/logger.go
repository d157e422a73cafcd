package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/discourse/discourse-local-site-contacts/internal/shared/config"
)

var (
	Logger   *slog.Logger
	loggerMu sync.Mutex
)

// Init configures the process-wide logger. In debug mode every level
// carries its source location; otherwise only warn and error do.
func Init(cfg *config.LoggerConfig, mode string) error {
	level := parseLevel(cfg.Level)

	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	showSourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if mode == "debug" {
		showSourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	lv := new(slog.LevelVar)
	lv.Set(level)

	var baseHandler slog.Handler
	if cfg.Format == "json" {
		baseHandler = slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level:     lv,
			AddSource: false,
		})
	} else {
		baseHandler = newTintHandler(writer, lv)
	}

	loggerMu.Lock()
	Logger = slog.New(NewConditionalSourceHandler(baseHandler, showSourceLevels...))
	slog.SetDefault(Logger)
	loggerMu.Unlock()

	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func newTintHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		AddSource:  false,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func Get() *slog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if Logger == nil {
		handler := NewConditionalSourceHandler(newTintHandler(os.Stdout, slog.LevelInfo), slog.LevelWarn, slog.LevelError)
		Logger = slog.New(handler)
		slog.SetDefault(Logger)
	}
	return Logger
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
