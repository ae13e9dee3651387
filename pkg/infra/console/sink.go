package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

// Sink renders extractor output for a terminal when running outside GitHub
// Actions. Outputs are shown through their log lines; nothing is persisted.
type Sink struct {
	w     io.Writer
	title *color.Color
	key   *color.Color
	value *color.Color
}

// NewSink creates a console sink writing to w
func NewSink(w io.Writer) *Sink {
	return &Sink{
		w:     w,
		title: color.New(color.FgCyan, color.Bold),
		key:   color.New(color.FgGreen),
		value: color.New(color.FgYellow),
	}
}

// StartGroup prints the group title
func (s *Sink) StartGroup(name string) error {
	if _, err := s.title.Fprintf(s.w, "==> %s\n", name); err != nil {
		return goerr.Wrap(err, "failed to write group title")
	}
	return nil
}

// SetOutput is a no-op; the value is printed by the following log line
func (s *Sink) SetOutput(_, _ string) error {
	return nil
}

// Info prints a log line. Indented "name: value" lines are highlighted.
func (s *Sink) Info(message string) error {
	var err error
	if name, value, ok := outputLine(message); ok {
		_, err = fmt.Fprintf(s.w, "  %s: %s\n", s.key.Sprint(name), s.value.Sprint(value))
	} else {
		_, err = fmt.Fprintln(s.w, message)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to write log line")
	}
	return nil
}

// EndGroup prints a separating blank line
func (s *Sink) EndGroup() error {
	if _, err := fmt.Fprintln(s.w); err != nil {
		return goerr.Wrap(err, "failed to write group end")
	}
	return nil
}

func outputLine(message string) (name, value string, ok bool) {
	rest, found := strings.CutPrefix(message, "  ")
	if !found {
		return "", "", false
	}
	return strings.Cut(rest, ": ")
}
