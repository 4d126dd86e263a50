package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/interfaces"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

const perPage = 100

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*github.Client) error

// WithBaseURL points the client to another API endpoint, e.g. GitHub Enterprise Server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *github.Client) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "failed to parse GitHub API base URL", goerr.V("url", baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.BaseURL = u
		return nil
	}
}

// New creates a REST API client. httpClient carries the authentication: an oauth2 client for a
// personal access token or an installation client of a GitHub App.
func New(httpClient *http.Client, options ...Option) (*Client, error) {
	client := github.NewClient(httpClient)
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}
	return &Client{client: client}, nil
}

func (x *Client) ListRepositories(ctx context.Context, owner string) ([]*model.GitHubRepository, error) {
	account, _, err := x.client.Users.Get(ctx, owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get GitHub account", goerr.V("owner", owner))
	}

	var repos []*github.Repository
	switch {
	case types.GitHubAccountType(account.GetType()) == types.AccountTypeOrganization:
		repos, err = x.listOrgRepos(ctx, owner)
	case x.isAuthenticatedUser(ctx, owner):
		repos, err = x.listUserRepos(ctx, "", &github.RepositoryListOptions{Affiliation: "owner"})
	default:
		repos, err = x.listUserRepos(ctx, owner, &github.RepositoryListOptions{Type: "owner"})
	}
	if err != nil {
		return nil, err
	}

	resp := make([]*model.GitHubRepository, 0, len(repos))
	for _, repo := range repos {
		resp = append(resp, toRepository(repo))
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.String("owner", owner),
		slog.String("type", account.GetType()),
		slog.Int("count", len(resp)),
	)

	return resp, nil
}

// isAuthenticatedUser reports whether the token belongs to owner. Listing through /user/repos is
// the only way to include private repositories of a user account. Installation tokens of a GitHub
// App cannot call /user, so an error just means "no".
func (x *Client) isAuthenticatedUser(ctx context.Context, owner string) bool {
	me, _, err := x.client.Users.Get(ctx, "")
	if err != nil {
		logging.From(ctx).Debug("Authenticated user is not available", slog.Any("error", err))
		return false
	}
	return strings.EqualFold(me.GetLogin(), owner)
}

func (x *Client) listOrgRepos(ctx context.Context, org string) ([]*github.Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var all []*github.Repository
	for {
		repos, resp, err := x.client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list organization repositories", goerr.V("org", org))
		}
		all = append(all, repos...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (x *Client) listUserRepos(ctx context.Context, user string, opts *github.RepositoryListOptions) ([]*github.Repository, error) {
	opts.ListOptions = github.ListOptions{PerPage: perPage}

	var all []*github.Repository
	for {
		repos, resp, err := x.client.Repositories.List(ctx, user, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list user repositories", goerr.V("user", user))
		}
		all = append(all, repos...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func (x *Client) GetContentDownloadURL(ctx context.Context, repo *model.GitHubRepository, path string) (string, error) {
	file, dir, resp, err := x.client.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return "", goerr.Wrap(types.ErrMarkerNotFound, "file not found",
				goerr.V("repo", repo.FullName()),
				goerr.V("path", path),
			)
		}
		return "", goerr.Wrap(err, "failed to get repository contents",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", path),
		)
	}

	if dir != nil || file == nil {
		return "", goerr.Wrap(types.ErrMultipleMarkers, "path is a directory",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", path),
			goerr.V("entries", len(dir)),
		)
	}

	if file.GetDownloadURL() == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "download URL is empty",
			goerr.V("repo", repo.FullName()),
			goerr.V("path", path),
		)
	}

	return file.GetDownloadURL(), nil
}

func (x *Client) ListOpenPullRequests(ctx context.Context, repo *model.GitHubRepository) ([]*model.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: perPage},
	}

	var resp []*model.PullRequest
	for {
		prs, r, err := x.client.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list pull requests", goerr.V("repo", repo.FullName()))
		}
		for _, pr := range prs {
			resp = append(resp, toPullRequest(pr))
		}

		if r.NextPage == 0 {
			break
		}
		opts.Page = r.NextPage
	}

	return resp, nil
}

func (x *Client) CreatePullRequest(ctx context.Context, repo *model.GitHubRepository, input *model.NewPullRequest) (*model.PullRequest, error) {
	pr, _, err := x.client.PullRequests.Create(ctx, repo.Owner, repo.Name, &github.NewPullRequest{
		Title: github.String(input.Title),
		Body:  github.String(input.Body),
		Head:  github.String(input.Head.String()),
		Base:  github.String(input.Base.String()),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pull request",
			goerr.V("repo", repo.FullName()),
			goerr.V("head", input.Head),
			goerr.V("base", input.Base),
		)
	}

	logging.From(ctx).Debug("Created pull request",
		slog.String("repo", repo.FullName()),
		slog.Int("number", pr.GetNumber()),
		slog.String("url", pr.GetHTMLURL()),
	)

	return toPullRequest(pr), nil
}

func toRepository(repo *github.Repository) *model.GitHubRepository {
	return &model.GitHubRepository{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		HTMLURL:       repo.GetHTMLURL(),
		CloneURL:      repo.GetCloneURL(),
		DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
		Archived:      repo.GetArchived(),
		Disabled:      repo.GetDisabled(),
	}
}

func toPullRequest(pr *github.PullRequest) *model.PullRequest {
	return &model.PullRequest{
		Number:     pr.GetNumber(),
		Title:      pr.GetTitle(),
		HeadBranch: pr.GetHead().GetRef(),
		HTMLURL:    pr.GetHTMLURL(),
		CreatedAt:  pr.GetCreatedAt().Time,
	}
}
