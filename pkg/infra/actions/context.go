package actions

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/spring-petclinic/buildparams/pkg/domain/model"
)

// Env holds the GitHub Actions runtime values needed to build an invocation context
type Env struct {
	SHA        string // GITHUB_SHA
	Ref        string // GITHUB_REF
	Repository string // GITHUB_REPOSITORY, owner/name
	EventName  string // GITHUB_EVENT_NAME
	EventPath  string // GITHUB_EVENT_PATH, webhook payload file
}

// LoadContext builds the invocation context from the runner environment.
// Repository owner and name come from GITHUB_REPOSITORY, or from the event
// payload when that is not in owner/name form. A missing or unreadable payload
// is logged and leaves owner and name empty.
func LoadContext(ctx context.Context, env Env) *model.InvocationContext {
	logger := ctxlog.From(ctx)

	in := &model.InvocationContext{
		CommitSHA:  env.SHA,
		Ref:        env.Ref,
		Repository: env.Repository,
	}

	if owner, name, ok := splitRepository(env.Repository); ok {
		in.RepositoryOwner = owner
		in.RepositoryName = name
		return in
	}

	if env.EventPath == "" {
		logger.Warn("Repository is not available from GITHUB_REPOSITORY or event payload",
			"repository", env.Repository,
		)
		return in
	}

	owner, name, err := repositoryFromEventFile(env.EventName, env.EventPath)
	if err != nil {
		logger.Warn("Failed to read repository from event payload",
			"error", err,
			"event_name", env.EventName,
			"event_path", env.EventPath,
		)
		return in
	}

	logger.Debug("Repository taken from event payload",
		"owner", owner,
		"name", name,
		"event_name", env.EventName,
	)
	in.RepositoryOwner = owner
	in.RepositoryName = name
	return in
}

func splitRepository(repository string) (owner, name string, ok bool) {
	owner, name, found := strings.Cut(repository, "/")
	if !found || owner == "" || name == "" {
		return "", "", false
	}
	return owner, name, true
}

func repositoryFromEventFile(eventName, path string) (owner, name string, err error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to read event payload", goerr.V("path", path))
	}
	return repositoryFromEvent(eventName, payload)
}

// repositoryFromEvent extracts the repository owner login and name from a
// webhook payload
func repositoryFromEvent(eventName string, payload []byte) (owner, name string, err error) {
	event, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		// Unknown or empty event names still carry a top-level repository object
		var generic struct {
			Repository *github.Repository `json:"repository"`
		}
		if jsonErr := json.Unmarshal(payload, &generic); jsonErr != nil {
			return "", "", goerr.Wrap(jsonErr, "invalid event payload", goerr.V("event_name", eventName))
		}
		if generic.Repository == nil {
			return "", "", goerr.New("no repository in event payload", goerr.V("event_name", eventName))
		}
		return generic.Repository.GetOwner().GetLogin(), generic.Repository.GetName(), nil
	}

	switch e := event.(type) {
	case *github.PushEvent:
		if e.GetRepo() == nil {
			return "", "", goerr.New("no repository in push event")
		}
		return e.GetRepo().GetOwner().GetLogin(), e.GetRepo().GetName(), nil
	case interface{ GetRepo() *github.Repository }:
		if e.GetRepo() == nil {
			return "", "", goerr.New("no repository in event payload", goerr.V("event_name", eventName))
		}
		return e.GetRepo().GetOwner().GetLogin(), e.GetRepo().GetName(), nil
	default:
		return "", "", goerr.New("event has no repository", goerr.V("event_name", eventName))
	}
}
