// Package logger provides a prefixed, colour-coded levelled logger.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/beka-birhanu/vinom-grid/config"
	"github.com/muesli/termenv"
)

// Logger writes "[PREFIX] [LEVEL] message" lines. The prefix is tinted with
// the colour given to New and the level with its own colour; colours are
// dropped when the writer is not a terminal.
type Logger struct {
	out    *termenv.Output
	std    *log.Logger
	prefix string
	mu     sync.Mutex
}

// New creates a Logger that writes to w. color is an ANSI palette index such as config.ColorGreen.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	out := termenv.NewOutput(w)
	styled := out.String(fmt.Sprintf("[%s]", prefix)).Foreground(out.Color(color)).Bold().String()
	return &Logger{
		out:    out,
		std:    log.New(w, "", log.LstdFlags),
		prefix: styled,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", config.ColorGreen, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write("WARN", config.ColorYellow, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", config.ColorRed, msg)
}

func (l *Logger) write(level, color, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tag := l.out.String(fmt.Sprintf("[%s]", level)).Foreground(l.out.Color(color)).String()
	l.std.Printf("%s %s %s", l.prefix, tag, msg)
}
