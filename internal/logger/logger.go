// Package logger provides the leveled logger used by the huffman command.
package logger

import (
	"io"
	"log"
)

// Logger writes informational and error messages.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l       *log.Logger
	verbose bool
}

// New returns a Logger writing to w.  Informational messages are discarded
// unless verbose is true.
func New(w io.Writer, verbose bool) Logger {
	return &stdLogger{l: log.New(w, "huffman: ", 0), verbose: verbose}
}

func (l *stdLogger) Infof(format string, v ...any) {
	if l.verbose {
		l.l.Printf("[INFO] "+format, v...)
	}
}

func (l *stdLogger) Errorf(format string, v ...any) {
	l.l.Printf("[ERROR] "+format, v...)
}
