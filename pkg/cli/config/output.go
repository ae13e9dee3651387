package config

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/spring-petclinic/buildparams/pkg/domain/interfaces"
	"github.com/spring-petclinic/buildparams/pkg/infra/actions"
	"github.com/spring-petclinic/buildparams/pkg/infra/console"
	"github.com/urfave/cli/v3"
)

// Sink kinds
const (
	SinkAuto    = "auto"
	SinkActions = "actions"
	SinkConsole = "console"
)

// Output holds output sink configuration
type Output struct {
	Sink          string
	OutputFile    string
	GitHubActions bool
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sink",
			Usage:       "Output sink (auto, actions, console)",
			Value:       SinkAuto,
			Destination: &c.Sink,
			Sources:     cli.EnvVars("BUILDPARAMS_SINK"),
		},
		&cli.StringFlag{
			Name:        "github-output",
			Usage:       "File receiving step outputs",
			Destination: &c.OutputFile,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.BoolFlag{
			Name:        "github-actions",
			Usage:       "Running inside GitHub Actions",
			Destination: &c.GitHubActions,
			Sources:     cli.EnvVars("GITHUB_ACTIONS"),
		},
	}
}

// Configure returns the output sink writing its log lines to w
func (c *Output) Configure(w io.Writer) (interfaces.OutputSink, error) {
	kind := c.Sink
	if kind == "" || kind == SinkAuto {
		kind = SinkConsole
		if c.GitHubActions {
			kind = SinkActions
		}
	}

	switch kind {
	case SinkActions:
		var opts []actions.Option
		if c.OutputFile != "" {
			opts = append(opts, actions.WithOutputFile(c.OutputFile))
		}
		return actions.NewSink(w, opts...), nil
	case SinkConsole:
		return console.NewSink(w), nil
	default:
		return nil, goerr.New("invalid sink", goerr.V("sink", c.Sink))
	}
}
