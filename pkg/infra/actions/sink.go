package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

const delimiterPrefix = "ghadelimiter_"

// config holds internal sink configuration
type config struct {
	outputPath   string
	newDelimiter func() string
}

// Option is a functional option for Sink configuration
type Option func(*config)

// WithOutputFile sets the GITHUB_OUTPUT file outputs are appended to.
// Without it, outputs fall back to the set-output workflow command.
func WithOutputFile(path string) Option {
	return func(c *config) {
		c.outputPath = path
	}
}

// WithDelimiter overrides heredoc delimiter generation
func WithDelimiter(fn func() string) Option {
	return func(c *config) {
		c.newDelimiter = fn
	}
}

// Sink writes outputs and log lines using the GitHub Actions runner protocol
type Sink struct {
	w   io.Writer
	cfg *config
}

// NewSink creates a sink writing workflow commands and log lines to w
func NewSink(w io.Writer, opts ...Option) *Sink {
	cfg := &config{
		newDelimiter: func() string {
			return delimiterPrefix + uuid.New().String()
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Sink{w: w, cfg: cfg}
}

// StartGroup begins a collapsible log group
func (s *Sink) StartGroup(name string) error {
	return s.issue("group", nil, name)
}

// EndGroup ends the current log group
func (s *Sink) EndGroup() error {
	return s.issue("endgroup", nil, "")
}

// Info writes a plain log line
func (s *Sink) Info(message string) error {
	if _, err := fmt.Fprintln(s.w, message); err != nil {
		return goerr.Wrap(err, "failed to write log line")
	}
	return nil
}

// SetOutput publishes an output for later steps
func (s *Sink) SetOutput(name, value string) error {
	if s.cfg.outputPath != "" {
		return s.appendFileCommand(name, value)
	}

	if _, err := fmt.Fprintln(s.w); err != nil {
		return goerr.Wrap(err, "failed to write log line")
	}
	return s.issue("set-output", [][2]string{{"name", name}}, value)
}

func (s *Sink) appendFileCommand(name, value string) error {
	delimiter := s.cfg.newDelimiter()
	if strings.Contains(name, delimiter) {
		return goerr.New("output name contains delimiter", goerr.V("name", name), goerr.V("delimiter", delimiter))
	}
	if strings.Contains(value, delimiter) {
		return goerr.New("output value contains delimiter", goerr.V("name", name), goerr.V("delimiter", delimiter))
	}

	// The runner creates the file; a missing file means a misconfigured path
	f, err := os.OpenFile(s.cfg.outputPath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file", goerr.V("path", s.cfg.outputPath))
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter); err != nil {
		return goerr.Wrap(err, "failed to write output file", goerr.V("path", s.cfg.outputPath), goerr.V("name", name))
	}
	return nil
}

// issue writes a workflow command: ::command key=value,key=value::message
func (s *Sink) issue(command string, props [][2]string, message string) error {
	var b strings.Builder
	b.WriteString("::")
	b.WriteString(command)
	for i, p := range props {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(",")
		}
		b.WriteString(p[0])
		b.WriteString("=")
		b.WriteString(escapeProperty(p[1]))
	}
	b.WriteString("::")
	b.WriteString(escapeData(message))

	if _, err := fmt.Fprintln(s.w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to issue workflow command", goerr.V("command", command))
	}
	return nil
}

var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)
)

func escapeData(s string) string {
	return dataEscaper.Replace(s)
}

func escapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}
