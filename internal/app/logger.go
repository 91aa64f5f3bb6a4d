package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rook-computer/glassicon/internal/config"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// NewLogger builds the logger selected by cfg: stderr when Debug is set,
// appended to LogFile when one is named, both when both are. The returned
// close func releases the log file.
func NewLogger(cfg config.Config) (Logger, func() error, error) {
	var writers []io.Writer
	closeFn := func() error { return nil }
	if cfg.Debug {
		writers = append(writers, os.Stderr)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return NoopLogger{}, closeFn, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		closeFn = f.Close
	}
	if len(writers) == 0 {
		return NoopLogger{}, closeFn, nil
	}
	return NewFileLogger(io.MultiWriter(writers...)), closeFn, nil
}
