// Package report provides the console log buffer shared by the report
// generators: everything printed to the console is captured so it can be
// saved verbatim as a plain-text run report.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/energy-modelling-hub/water-value-database/internal/utils"
)

// Log prints to an output writer and records every line for later export.
type Log struct {
	title string
	runID string
	lines []string
	out   io.Writer
	now   func() time.Time
}

// New returns a Log writing to stdout.
func New(title string) *Log {
	return &Log{
		title: title,
		runID: uuid.NewString(),
		out:   os.Stdout,
		now:   time.Now,
	}
}

// NewWriter returns a Log writing to w, for tests.
func NewWriter(title string, w io.Writer) *Log {
	l := New(title)
	l.out = w
	return l
}

// RunID returns the unique identifier of this run.
func (l *Log) RunID() string { return l.runID }

// Printf formats a line, prints it, and appends it to the buffer.
func (l *Log) Printf(format string, a ...any) {
	l.Println(fmt.Sprintf(format, a...))
}

// Println prints a line and appends it to the buffer.
func (l *Log) Println(msg string) {
	fmt.Fprintln(l.out, msg)
	l.lines = append(l.lines, msg)
}

// Blank emits an empty line.
func (l *Log) Blank() { l.Println("") }

// Section prints a major separator with a title.
func (l *Log) Section(title string) {
	rule := strings.Repeat("═", 72)
	l.Println("\n" + rule)
	l.Println("  " + title)
	l.Println(rule + "\n")
}

// Subsection prints a minor separator with a title.
func (l *Log) Subsection(title string) {
	rule := strings.Repeat("─", 60)
	l.Println("\n  " + rule)
	l.Println("  " + title)
	l.Println("  " + rule + "\n")
}

// Lines returns a copy of the captured lines.
func (l *Log) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Save writes the captured console output to path under a titled header.
func (l *Log) Save(path string) error {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("ensure report dir: %w", err)
	}
	var b strings.Builder
	b.WriteString(l.title + "\n")
	b.WriteString("Generated: " + l.now().Format("2006-01-02 15:04:05") + "\n")
	b.WriteString("Run ID: " + l.runID + "\n")
	b.WriteString(strings.Repeat("=", 72) + "\n\n")
	b.WriteString(strings.Join(l.lines, "\n"))
	if err := utils.SafeWriteFile(path, []byte(b.String())); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Fprintf(l.out, "\n  ✓ Report saved: %s\n", path)
	return nil
}
