package interfaces

// OutputSink receives outputs and log lines from the extractor
type OutputSink interface {
	// StartGroup opens a named log group
	StartGroup(name string) error

	// SetOutput publishes a single output for downstream steps
	SetOutput(name, value string) error

	// Info writes an informational log line
	Info(message string) error

	// EndGroup closes the current log group
	EndGroup() error
}
