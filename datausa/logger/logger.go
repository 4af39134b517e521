package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
)

// CustomHandler writes one colored line per record:
//
//	[prefix] [15:04:05] [LEVEL] [TYPE] message key=value ...
type CustomHandler struct {
	prefix string
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

func NewHandler(prefix string, w io.Writer, opts *slog.HandlerOptions) *CustomHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelInfo}
	}
	if w == nil {
		w = os.Stdout
	}
	return &CustomHandler{
		prefix: prefix,
		opts:   opts,
		out:    w,
		mu:     &sync.Mutex{},
	}
}

// New returns a logger for format "json" or the colored text format.
func New(prefix, format string, level slog.Level, addSource bool, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, AddSource: addSource}
	if strings.EqualFold(format, "json") {
		if w == nil {
			w = os.Stdout
		}
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(NewHandler(prefix, w, opts))
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &c
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.groups = append(append([]string(nil), h.groups...), name)
	return &c
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	default:
		levelColor, levelText = colorPurple, "DEBUG"
	}

	message := r.Message
	if r.Level >= slog.LevelError {
		if loc := errorLocation(&r, h.opts.AddSource); loc != "" {
			message = fmt.Sprintf("%s (%s)", message, loc)
		}
	}
	if took, ok := findAttr(&r, "took"); ok && took.Kind() == slog.KindDuration {
		message = fmt.Sprintf("%s (took %s)", message, took.Duration().Round(time.Microsecond))
	}

	var b strings.Builder
	for _, a := range h.attrs {
		writeAttr(&b, h.groups, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.groups, a)
		return true
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[%s] [%s] [%s%s%s] [%s] %s%s%s\n",
		colorWhite,
		h.prefix,
		r.Time.Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		logType(h.attrs, &r),
		message,
		b.String(),
		colorReset,
	)
	return err
}

func writeAttr(b *strings.Builder, groups []string, a slog.Attr) {
	if isInternalAttr(a.Key) {
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value)
}

func logType(attrs []slog.Attr, r *slog.Record) LogType {
	value := ""
	for _, a := range attrs {
		if a.Key == "type" {
			value = a.Value.String()
		}
	}
	if a, ok := findAttr(r, "type"); ok {
		value = a.String()
	}
	switch value {
	case "cmd":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	}
	return TypeSystem
}

func findAttr(r *slog.Record, key string) (slog.Value, bool) {
	var (
		value slog.Value
		found bool
	)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value, found = a.Value, true
			return false
		}
		return true
	})
	return value, found
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "took":
		return true
	}
	return false
}

func errorLocation(r *slog.Record, addSource bool) string {
	if v, ok := findAttr(r, "error_location"); ok {
		return v.String()
	}
	if !addSource || r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := frames.Next()
	if f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}
