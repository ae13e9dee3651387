package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spring-petclinic/buildparams/pkg/cli/config"
	"github.com/spring-petclinic/buildparams/pkg/domain/model"
	"github.com/spring-petclinic/buildparams/pkg/infra/actions"
	"github.com/spring-petclinic/buildparams/pkg/infra/memory"
	"github.com/spring-petclinic/buildparams/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdShow(stdout io.Writer) *cli.Command {
	var (
		githubCfg config.GitHub
		format    string
	)

	flags := append(githubCfg.Flags(), &cli.StringFlag{
		Name:        "format",
		Aliases:     []string{"f"},
		Usage:       "Output format (text, json, toml)",
		Value:       "text",
		Destination: &format,
		Sources:     cli.EnvVars("BUILDPARAMS_FORMAT"),
	})

	return &cli.Command{
		Name:    "show",
		Aliases: []string{"s"},
		Usage:   "Print derived build parameters without publishing them",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			in := actions.LoadContext(ctx, githubCfg.Env())

			params, err := usecase.NewExtractor().Extract(ctx, in, memory.NewSink())
			if err != nil {
				return goerr.Wrap(err, "failed to extract build parameters")
			}

			return printParameters(stdout, params, format)
		},
	}
}

func printParameters(w io.Writer, params *model.BuildParameters, format string) error {
	switch format {
	case "text":
		for _, out := range params.Outputs() {
			if _, err := fmt.Fprintf(w, "%s=%s\n", out.Name, out.Value); err != nil {
				return goerr.Wrap(err, "failed to print parameters")
			}
		}
		return nil

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(params); err != nil {
			return goerr.Wrap(err, "failed to encode parameters as JSON")
		}
		return nil

	case "toml":
		if err := toml.NewEncoder(w).Encode(params); err != nil {
			return goerr.Wrap(err, "failed to encode parameters as TOML")
		}
		return nil

	default:
		return goerr.New("unsupported format", goerr.V("format", format))
	}
}
