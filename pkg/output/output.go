// Package output provides the append-only message log that game operations
// write narration to. The host drains it after every processed command.
package output

import "fmt"

// Log collects user-facing lines in order. The zero value is ready to use.
type Log struct {
	lines []string
}

func New() *Log { return &Log{} }

// Println appends one line.
func (l *Log) Println(line string) {
	l.lines = append(l.lines, line)
}

// Printf appends one formatted line.
func (l *Log) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// HasOutput reports whether any undrained lines remain.
func (l *Log) HasOutput() bool { return len(l.lines) > 0 }

// Drain returns all buffered lines and empties the log.
func (l *Log) Drain() []string {
	lines := l.lines
	l.lines = nil
	return lines
}
