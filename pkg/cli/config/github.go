package config

import (
	"github.com/spring-petclinic/buildparams/pkg/infra/actions"
	"github.com/urfave/cli/v3"
)

// GitHub holds the GitHub Actions run context
type GitHub struct {
	SHA        string
	Ref        string
	Repository string
	EventName  string
	EventPath  string
}

// Flags returns CLI flags for GitHub context configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sha",
			Usage:       "Commit SHA that triggered the workflow",
			Destination: &c.SHA,
			Sources:     cli.EnvVars("GITHUB_SHA"),
		},
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Git ref that triggered the workflow, e.g. refs/heads/main",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Repository in owner/name form",
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "event-name",
			Usage:       "Name of the event that triggered the workflow",
			Destination: &c.EventName,
			Sources:     cli.EnvVars("GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "event-path",
			Usage:       "Path to the webhook event payload",
			Destination: &c.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
	}
}

// Env converts the configuration to the runner environment used by the context loader
func (c *GitHub) Env() actions.Env {
	return actions.Env{
		SHA:        c.SHA,
		Ref:        c.Ref,
		Repository: c.Repository,
		EventName:  c.EventName,
		EventPath:  c.EventPath,
	}
}
