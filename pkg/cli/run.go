package cli

import (
	"context"
	"io"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spring-petclinic/buildparams/pkg/cli/config"
	"github.com/spring-petclinic/buildparams/pkg/infra/actions"
	"github.com/spring-petclinic/buildparams/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun(stdout io.Writer) *cli.Command {
	var (
		githubCfg config.GitHub
		outputCfg config.Output
	)

	flags := append(githubCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Derive build parameters and publish them as step outputs",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			sink, err := outputCfg.Configure(stdout)
			if err != nil {
				return goerr.Wrap(err, "failed to configure output sink")
			}

			in := actions.LoadContext(ctx, githubCfg.Env())

			params, err := usecase.NewExtractor().Extract(ctx, in, sink)
			if err != nil {
				return goerr.Wrap(err, "failed to extract build parameters")
			}

			logger.Debug("Build parameters published",
				"sink", outputCfg.Sink,
				"maven_sha1", params.MavenSHA1,
			)
			return nil
		},
	}
}
