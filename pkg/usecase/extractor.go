package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spring-petclinic/buildparams/pkg/domain/interfaces"
	"github.com/spring-petclinic/buildparams/pkg/domain/model"
)

const (
	// GroupName is the log group wrapping all emitted outputs
	GroupName = "build parameters"

	// ReleaseBranch is the only branch built without a snapshot marker
	ReleaseBranch = "main"

	shortSHALength = 8
	snapshotSuffix = "-SNAPSHOT"
	dependabotTag  = "dbot-"
)

var (
	branchPattern     = regexp.MustCompile(`refs/heads/(.*)`)
	dependabotPattern = regexp.MustCompile(`dependabot/(.*?)/`)
)

type extractorUseCase struct{}

// NewExtractor creates a new instance of ExtractorUseCase
func NewExtractor() interfaces.ExtractorUseCase {
	return &extractorUseCase{}
}

// Extract derives build parameters and emits them through sink in order.
// Inputs are never validated; only sink failures are returned.
func (uc *extractorUseCase) Extract(ctx context.Context, in *model.InvocationContext, sink interfaces.OutputSink) (*model.BuildParameters, error) {
	logger := ctxlog.From(ctx)

	logger.Debug("Extracting build parameters",
		"commit_sha", in.CommitSHA,
		"ref", in.Ref,
		"repository_owner", in.RepositoryOwner,
		"repository_name", in.RepositoryName,
		"repository", in.Repository,
	)

	e := &emitter{sink: sink}
	params := &model.BuildParameters{}

	if err := sink.StartGroup(GroupName); err != nil {
		return nil, goerr.Wrap(err, "failed to start log group", goerr.V("group", GroupName))
	}
	e.info("Setting outputs:")

	params.ShortSHA = shortSHA(in.CommitSHA)
	e.set(model.OutputShortSHA, params.ShortSHA)
	params.Ref = in.Ref
	e.set(model.OutputRef, params.Ref)

	branch, _ := branchFromRef(in.Ref)
	params.BranchName = branch
	e.set(model.OutputBranchName, params.BranchName)

	params.MavenChangelist, params.MavenSHA1 = mavenVersion(branch, params.ShortSHA)
	e.set(model.OutputMavenChangelist, params.MavenChangelist)
	e.set(model.OutputMavenSHA1, params.MavenSHA1)

	params.OrganizationName = in.RepositoryOwner
	e.set(model.OutputOrganizationName, params.OrganizationName)
	params.RepositoryName = in.RepositoryName
	e.set(model.OutputRepositoryName, params.RepositoryName)
	params.Repository = in.Repository
	e.set(model.OutputRepository, params.Repository)

	params.ContainerName = strings.ToLower(in.RepositoryName)
	e.set(model.OutputContainerName, params.ContainerName)
	params.ContainerOwner = strings.ToLower(in.RepositoryOwner)
	e.set(model.OutputContainerOwner, params.ContainerOwner)

	if e.err != nil {
		return nil, e.err
	}

	if err := sink.EndGroup(); err != nil {
		return nil, goerr.Wrap(err, "failed to end log group", goerr.V("group", GroupName))
	}

	logger.Debug("Build parameters extracted",
		"branch", params.BranchName,
		"maven_changelist", params.MavenChangelist,
		"maven_sha1", params.MavenSHA1,
	)

	return params, nil
}

// emitter writes outputs to a sink and stops at the first failure
type emitter struct {
	sink interfaces.OutputSink
	err  error
}

func (e *emitter) set(name, value string) {
	if e.err != nil {
		return
	}
	if err := e.sink.SetOutput(name, value); err != nil {
		e.err = goerr.Wrap(err, "failed to set output", goerr.V("name", name))
		return
	}
	e.info(fmt.Sprintf("  %s: %s", name, value))
}

func (e *emitter) info(message string) {
	if e.err != nil {
		return
	}
	if err := e.sink.Info(message); err != nil {
		e.err = goerr.Wrap(err, "failed to write log line", goerr.V("message", message))
	}
}

// shortSHA returns the first 8 characters of sha, or all of it when shorter
func shortSHA(sha string) string {
	runes := []rune(sha)
	if len(runes) <= shortSHALength {
		return sha
	}
	return string(runes[:shortSHALength])
}

// branchFromRef returns everything after "refs/heads/" in ref.
// Non-branch refs (tags, pull requests) report false.
func branchFromRef(ref string) (string, bool) {
	m := branchPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// dependabotSegment returns the package ecosystem segment of a dependabot branch,
// e.g. "npm_and_yarn" for "dependabot/npm_and_yarn/lodash-4.17.21"
func dependabotSegment(branch string) (string, bool) {
	m := dependabotPattern.FindStringSubmatch(branch)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// cleanBranchName shortens dependabot branches into a form usable in
// version strings and container tags
func cleanBranchName(branch string) string {
	if segment, ok := dependabotSegment(branch); ok {
		return dependabotTag + segment
	}
	return branch
}

// mavenVersion returns the Maven CI-friendly changelist and sha1 properties.
// The full project version is ${revision}${changelist}${sha1}.
func mavenVersion(branch, sha string) (changelist, sha1 string) {
	if branch == ReleaseBranch {
		return "", "-" + sha
	}
	return "-" + cleanBranchName(branch), "-" + sha + snapshotSuffix
}
