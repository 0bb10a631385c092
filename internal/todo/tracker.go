package todo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/open-atmos/nbhooks/internal/lock"
	"github.com/open-atmos/nbhooks/internal/state"
	"go.uber.org/zap"
)

// State is an issue's lifecycle state as reported by the tracker.
type State string

const (
	Open   State = "open"
	Closed State = "closed"
)

// IssueTracker lists the states of every issue in a repository, keyed by
// issue number.
type IssueTracker interface {
	Issues(ctx context.Context) (map[int]State, error)
}

const perPage = 100

// GitHub lists issues through the GitHub REST API.
type GitHub struct {
	Client *github.Client
	Owner  string
	Repo   string
	Log    *zap.Logger
}

// NewGitHub returns a tracker for owner/repo. An empty token makes
// unauthenticated requests.
func NewGitHub(owner, repo, token string, log *zap.Logger) *GitHub {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GitHub{Client: client, Owner: owner, Repo: repo, Log: log}
}

// Issues fetches issues in every state, following pagination. A 403
// (rate limiting or a private repository without a token) yields an empty
// map rather than an error.
func (g *GitHub) Issues(ctx context.Context) (map[int]State, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	issues := make(map[int]State)
	for {
		page, resp, err := g.Client.Issues.ListByRepo(ctx, g.Owner, g.Repo, opts)
		if err != nil {
			if resp != nil && resp.StatusCode == http.StatusForbidden {
				g.Log.Info("issue tracker refused access; checking annotation syntax only",
					zap.String("repo", g.Owner+"/"+g.Repo))
				return map[int]State{}, nil
			}
			return nil, fmt.Errorf("listing issues of %s/%s: %w", g.Owner, g.Repo, err)
		}
		for _, is := range page {
			issues[is.GetNumber()] = State(is.GetState())
		}
		g.Log.Debug("fetched issue page", zap.Int("page", opts.Page), zap.Int("issues", len(page)))
		if resp.NextPage == 0 {
			return issues, nil
		}
		opts.Page = resp.NextPage
	}
}

// Cached wraps a tracker with a TTL-bound snapshot stored on disk. Reads and
// writes of the snapshot happen under a file lock shared with concurrent
// nbhooks processes.
type Cached struct {
	Tracker IssueTracker
	Path    string
	Key     string
	TTL     time.Duration
	Now     func() time.Time
	Log     *zap.Logger
}

func (c *Cached) Issues(ctx context.Context) (map[int]State, error) {
	if c.TTL <= 0 {
		return c.Tracker.Issues(ctx)
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	unlock, err := lock.Acquire(ctx, c.Path, lock.DefaultTimeout)
	if err != nil {
		if errors.Is(err, lock.ErrHeld) {
			log.Info("issue cache busy; querying tracker directly")
			return c.Tracker.Issues(ctx)
		}
		return nil, err
	}
	defer unlock()

	cached, err := state.ReadIssues(c.Path)
	if err != nil {
		log.Warn("ignoring unreadable issue cache", zap.Error(err))
	}
	if cached != nil && cached.Repo == c.Key && now().Sub(cached.FetchedAt) < c.TTL {
		log.Debug("issue cache hit", zap.String("repo", c.Key), zap.Int("issues", len(cached.Issues)))
		out := make(map[int]State, len(cached.Issues))
		for n, s := range cached.Issues {
			out[n] = State(s)
		}
		return out, nil
	}

	issues, err := c.Tracker.Issues(ctx)
	if err != nil {
		return nil, err
	}
	if len(issues) == 0 {
		return issues, nil
	}
	snapshot := &state.IssueCache{Repo: c.Key, FetchedAt: now().UTC(), Issues: make(map[int]string, len(issues))}
	for n, s := range issues {
		snapshot.Issues[n] = string(s)
	}
	if err := state.WriteIssues(c.Path, snapshot); err != nil {
		log.Warn("could not write issue cache", zap.Error(err))
	}
	return issues, nil
}
