package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/pelletier/go-toml/v2"
	"github.com/spring-petclinic/buildparams/pkg/domain/model"
)

// clearActionsEnv isolates tests from the runner environment they may execute in
func clearActionsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GITHUB_SHA",
		"GITHUB_REF",
		"GITHUB_REPOSITORY",
		"GITHUB_EVENT_NAME",
		"GITHUB_EVENT_PATH",
		"GITHUB_OUTPUT",
		"BUILDPARAMS_SINK",
		"BUILDPARAMS_FORMAT",
		"BUILDPARAMS_LOG_LEVEL",
		"BUILDPARAMS_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("GITHUB_ACTIONS", "false")
}

func TestShow(t *testing.T) {
	clearActionsEnv(t)

	baseArgs := []string{
		"buildparams", "--log-level", "error", "show",
		"--sha", "abcd1234ffffffff",
		"--ref", "refs/heads/dependabot/maven/org.postgresql-postgresql-42.7.2",
		"--repository", "Spring-PetClinic/PetClinic-API",
	}

	want := model.BuildParameters{
		ShortSHA:         "abcd1234",
		Ref:              "refs/heads/dependabot/maven/org.postgresql-postgresql-42.7.2",
		BranchName:       "dependabot/maven/org.postgresql-postgresql-42.7.2",
		MavenChangelist:  "-dbot-maven",
		MavenSHA1:        "-abcd1234-SNAPSHOT",
		OrganizationName: "Spring-PetClinic",
		RepositoryName:   "PetClinic-API",
		Repository:       "Spring-PetClinic/PetClinic-API",
		ContainerName:    "petclinic-api",
		ContainerOwner:   "spring-petclinic",
	}

	t.Run("text", func(t *testing.T) {
		var stdout bytes.Buffer
		gt.NoError(t, run(context.Background(), baseArgs, &stdout))

		lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
		gt.A(t, lines).Length(10)
		gt.Equal(t, lines[0], "github_short_sha=abcd1234")
		gt.Equal(t, lines[3], "maven_changelist=-dbot-maven")
		gt.Equal(t, lines[9], "container_owner=spring-petclinic")
	})

	t.Run("json", func(t *testing.T) {
		var stdout bytes.Buffer
		args := append(append([]string{}, baseArgs...), "--format", "json")
		gt.NoError(t, run(context.Background(), args, &stdout))

		var got model.BuildParameters
		gt.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		gt.Equal(t, got, want)
	})

	t.Run("toml", func(t *testing.T) {
		var stdout bytes.Buffer
		args := append(append([]string{}, baseArgs...), "--format", "toml")
		gt.NoError(t, run(context.Background(), args, &stdout))

		var got model.BuildParameters
		gt.NoError(t, toml.Unmarshal(stdout.Bytes(), &got))
		gt.Equal(t, got, want)
	})

	t.Run("unsupported format", func(t *testing.T) {
		var stdout bytes.Buffer
		args := append(append([]string{}, baseArgs...), "--format", "yaml")
		gt.Error(t, run(context.Background(), args, &stdout))
	})
}

func TestRun_ActionsSink(t *testing.T) {
	clearActionsEnv(t)

	outputPath := filepath.Join(t.TempDir(), "github_output")
	gt.NoError(t, os.WriteFile(outputPath, nil, 0o644))

	var stdout bytes.Buffer
	err := run(context.Background(), []string{
		"buildparams", "--log-level", "error", "run",
		"--sink", "actions",
		"--github-output", outputPath,
		"--sha", "0123456789abcdef",
		"--ref", "refs/heads/main",
		"--repository", "ACME/My-Repo",
	}, &stdout)
	gt.NoError(t, err)

	log := stdout.String()
	gt.True(t, strings.HasPrefix(log, "::group::build parameters\nSetting outputs:\n"))
	gt.S(t, log).Contains("  maven_sha1: -01234567\n")
	gt.S(t, log).Contains("  container_name: my-repo\n")
	gt.True(t, strings.HasSuffix(log, "::endgroup::\n"))

	data, err := os.ReadFile(outputPath)
	gt.NoError(t, err)

	outputs := parseOutputFile(t, string(data))
	gt.A(t, outputs).Length(10)
	for i, name := range model.OutputNames() {
		gt.Equal(t, outputs[i].Name, name)
	}
	gt.Equal(t, outputs[3].Value, "")
	gt.Equal(t, outputs[4].Value, "-01234567")
	gt.Equal(t, outputs[8].Value, "my-repo")
	gt.Equal(t, outputs[9].Value, "acme")
}

func TestRun_ConsoleSink(t *testing.T) {
	clearActionsEnv(t)

	var stdout bytes.Buffer
	err := run(context.Background(), []string{
		"buildparams", "--log-level", "error", "run",
		"--sha", "abcd1234",
		"--ref", "refs/tags/v1",
		"--repository", "ACME/My-Repo",
	}, &stdout)
	gt.NoError(t, err)

	log := stdout.String()
	gt.S(t, log).Contains("build parameters")
	gt.S(t, log).Contains("github_ref_branch_name")
	gt.S(t, log).Contains("-abcd1234-SNAPSHOT")
	gt.False(t, strings.Contains(log, "::group::"))
}

func TestRun_InvalidSink(t *testing.T) {
	clearActionsEnv(t)

	err := run(context.Background(), []string{
		"buildparams", "--log-level", "error", "run", "--sink", "slack",
	}, &bytes.Buffer{})
	gt.Error(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	clearActionsEnv(t)

	err := run(context.Background(), []string{
		"buildparams", "--log-level", "verbose", "show",
	}, &bytes.Buffer{})
	gt.Error(t, err)
}

// parseOutputFile reads name<<delimiter heredoc entries in order
func parseOutputFile(t *testing.T, data string) []model.Output {
	t.Helper()

	var outputs []model.Output
	lines := strings.Split(strings.TrimSuffix(data, "\n"), "\n")
	for i := 0; i < len(lines); {
		name, delimiter, ok := strings.Cut(lines[i], "<<")
		gt.True(t, ok)

		var value []string
		i++
		for i < len(lines) && lines[i] != delimiter {
			value = append(value, lines[i])
			i++
		}
		gt.True(t, i < len(lines))
		i++

		outputs = append(outputs, model.Output{Name: name, Value: strings.Join(value, "\n")})
	}
	return outputs
}
