package memory

import (
	"sync"

	"github.com/spring-petclinic/buildparams/pkg/domain/model"
)

// Sink records everything written to it. Safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	groups  []string
	open    int
	outputs []model.Output
	lines   []string
	events  []string
}

// NewSink creates an empty recording sink
func NewSink() *Sink {
	return &Sink{}
}

// StartGroup records a group opening
func (s *Sink) StartGroup(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append(s.groups, name)
	s.open++
	s.events = append(s.events, "group:"+name)
	return nil
}

// SetOutput records an output
func (s *Sink) SetOutput(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs = append(s.outputs, model.Output{Name: name, Value: value})
	s.events = append(s.events, "output:"+name)
	return nil
}

// Info records a log line
func (s *Sink) Info(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, message)
	s.events = append(s.events, "info:"+message)
	return nil
}

// EndGroup records a group closing
func (s *Sink) EndGroup() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open > 0 {
		s.open--
	}
	s.events = append(s.events, "endgroup")
	return nil
}

// Outputs returns recorded outputs in emission order
func (s *Sink) Outputs() []model.Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Output(nil), s.outputs...)
}

// Lines returns recorded log lines
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Groups returns the names of all opened groups
func (s *Sink) Groups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.groups...)
}

// Events returns every call in order, as "group:<name>", "output:<name>",
// "info:<message>" or "endgroup"
func (s *Sink) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

// OpenGroups returns the number of groups not yet closed
func (s *Sink) OpenGroups() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Value returns the last value recorded for name
func (s *Sink) Value(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.outputs) - 1; i >= 0; i-- {
		if s.outputs[i].Name == name {
			return s.outputs[i].Value, true
		}
	}
	return "", false
}

// Duplicates returns names that were set more than once
func (s *Sink) Duplicates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := map[string]int{}
	var dups []string
	for _, out := range s.outputs {
		count[out.Name]++
		if count[out.Name] == 2 {
			dups = append(dups, out.Name)
		}
	}
	return dups
}
