// Package logging provides a nakama runtime.Logger backed by charmbracelet/log
// so the engine logs the same way inside and outside a Nakama host.
package logging

import (
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/heroiclabs/nakama-common/runtime"
)

// Logger implements runtime.Logger.
type Logger struct {
	base   *log.Logger
	fields map[string]interface{}
}

var _ runtime.Logger = (*Logger)(nil)

// New creates a logger writing to w at the given level ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	base := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
		Prefix:          "pusoydos",
	})
	base.SetStyles(levelStyles())

	return &Logger{base: base, fields: map[string]interface{}{}}, nil
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color("#006400")).Bold(true)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color("#FFA500")).Bold(true)
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FF0000")).
		Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	return styles
}

func (l *Logger) Debug(format string, v ...interface{}) { l.base.Debugf(format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.base.Infof(format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.base.Warnf(format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.base.Errorf(format, v...) }

// WithField returns a child logger that attaches key to every line.
func (l *Logger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

// WithFields returns a child logger that attaches fields to every line.
func (l *Logger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := maps.Clone(l.fields)
	keyvals := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		merged[k] = v
		keyvals = append(keyvals, k, v)
	}
	return &Logger{base: l.base.With(keyvals...), fields: merged}
}

// Fields returns a copy of the attached fields.
func (l *Logger) Fields() map[string]interface{} {
	return maps.Clone(l.fields)
}

// Nop discards everything.
type Nop struct{}

var _ runtime.Logger = Nop{}

func (Nop) Debug(string, ...interface{})                     {}
func (Nop) Info(string, ...interface{})                      {}
func (Nop) Warn(string, ...interface{})                      {}
func (Nop) Error(string, ...interface{})                     {}
func (Nop) WithField(string, interface{}) runtime.Logger     { return Nop{} }
func (Nop) WithFields(map[string]interface{}) runtime.Logger { return Nop{} }
func (Nop) Fields() map[string]interface{}                   { return nil }
