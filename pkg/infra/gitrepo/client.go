package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/interfaces"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

const remoteName = "origin"

// TokenSource provides the credential used for clone and push over HTTPS.
type TokenSource interface {
	Token(ctx context.Context) (types.GitHubToken, error)
}

// StaticToken is a TokenSource of a personal access token. An empty token disables authentication.
type StaticToken types.GitHubToken

func (x StaticToken) Token(ctx context.Context) (types.GitHubToken, error) {
	return types.GitHubToken(x), nil
}

type Client struct {
	tokens       TokenSource
	trustedHosts map[string]struct{}
}

var _ interfaces.Git = (*Client)(nil)

// DefaultHost is the only host that receives credentials unless WithTrustedHosts adds more.
const DefaultHost = "github.com"

type Option func(*Client)

// WithTrustedHosts adds hosts (e.g. a GitHub Enterprise Server) that receive credentials.
func WithTrustedHosts(hosts ...string) Option {
	return func(x *Client) {
		for _, host := range hosts {
			if host != "" {
				x.trustedHosts[strings.ToLower(host)] = struct{}{}
			}
		}
	}
}

func New(tokens TokenSource, options ...Option) *Client {
	x := &Client{
		tokens:       tokens,
		trustedHosts: map[string]struct{}{DefaultHost: {}},
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

// auth returns credentials for remoteURL. Only https remotes on a trusted host get the token,
// because template URLs come from repository content.
func (x *Client) auth(ctx context.Context, remoteURL string) (transport.AuthMethod, error) {
	u, err := url.Parse(remoteURL)
	if err != nil || u.Scheme != "https" {
		return nil, nil
	}
	if _, ok := x.trustedHosts[strings.ToLower(u.Host)]; !ok {
		logging.From(ctx).Debug("Accessing untrusted host without credentials", slog.String("host", u.Host))
		return nil, nil
	}

	token, err := x.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	return &http.BasicAuth{
		Username: "x-access-token",
		Password: string(token),
	}, nil
}

func (x *Client) Clone(ctx context.Context, rawURL, dir string) error {
	remoteURL := model.HTTPSURL(rawURL)
	auth, err := x.auth(ctx, remoteURL)
	if err != nil {
		return err
	}

	logging.From(ctx).Debug("Cloning repository", slog.String("url", remoteURL), slog.String("dir", dir))

	if _, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:        remoteURL,
		Auth:       auth,
		RemoteName: remoteName,
		Tags:       git.AllTags,
	}); err != nil {
		return goerr.Wrap(err, "failed to clone repository", goerr.V("url", remoteURL))
	}

	return nil
}

func open(dir string) (*git.Repository, *git.Worktree, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open repository", goerr.V("dir", dir))
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get worktree", goerr.V("dir", dir))
	}
	return repo, wt, nil
}

func (x *Client) CreateBranch(ctx context.Context, dir string, branch types.BranchName) error {
	_, wt, err := open(dir)
	if err != nil {
		return err
	}

	if err := wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch.String()),
		Create: true,
	}); err != nil {
		return goerr.Wrap(err, "failed to create branch", goerr.V("branch", branch))
	}

	return nil
}

func (x *Client) CommitAll(ctx context.Context, dir, message string, author model.GitAuthor) error {
	_, wt, err := open(dir)
	if err != nil {
		return err
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return goerr.Wrap(err, "failed to stage changes", goerr.V("dir", dir))
	}

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author.Name,
			Email: author.Email,
			When:  logging.CtxTime(ctx),
		},
	})
	if err != nil {
		return goerr.Wrap(err, "failed to commit changes", goerr.V("dir", dir))
	}

	logging.From(ctx).Debug("Committed changes", slog.String("hash", hash.String()))
	return nil
}

// Push pushes the branch to origin and records origin as its upstream.
func (x *Client) Push(ctx context.Context, dir string, branch types.BranchName) error {
	repo, _, err := open(dir)
	if err != nil {
		return err
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return goerr.Wrap(err, "failed to get remote", goerr.V("remote", remoteName))
	}
	var remoteURL string
	if urls := remote.Config().URLs; len(urls) > 0 {
		remoteURL = urls[0]
	}

	auth, err := x.auth(ctx, remoteURL)
	if err != nil {
		return err
	}

	ref := plumbing.NewBranchReferenceName(branch.String())
	if err := repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remoteName,
		RefSpecs:   []config.RefSpec{config.RefSpec(fmt.Sprintf("%s:%s", ref, ref))},
		Auth:       auth,
	}); err != nil {
		return goerr.Wrap(err, "failed to push branch", goerr.V("branch", branch))
	}

	if err := repo.CreateBranch(&config.Branch{
		Name:   branch.String(),
		Remote: remoteName,
		Merge:  ref,
	}); err != nil && !errors.Is(err, git.ErrBranchExists) {
		return goerr.Wrap(err, "failed to set upstream", goerr.V("branch", branch))
	}

	return nil
}

// ResolveRevision resolves rev in the order a branch of origin, a tag, then any other revision
// such as a commit hash. Annotated tags are peeled to their commit.
func (x *Client) ResolveRevision(ctx context.Context, dir string, rev string) (types.CommitSHA, error) {
	repo, _, err := open(dir)
	if err != nil {
		return "", err
	}

	candidates := []plumbing.Revision{
		plumbing.Revision(plumbing.NewRemoteReferenceName(remoteName, rev)),
		plumbing.Revision(plumbing.NewTagReferenceName(rev)),
		plumbing.Revision(rev),
	}

	var lastErr error
	for _, candidate := range candidates {
		hash, err := repo.ResolveRevision(candidate)
		if err == nil {
			return types.CommitSHA(hash.String()), nil
		}
		lastErr = err
	}

	return "", goerr.Wrap(lastErr, "failed to resolve revision", goerr.V("revision", rev))
}

func (x *Client) CommitMessages(ctx context.Context, dir string, from, to types.CommitSHA) ([]string, error) {
	repo, _, err := open(dir)
	if err != nil {
		return nil, err
	}

	fromHash := plumbing.NewHash(string(from))
	if _, err := repo.CommitObject(fromHash); err != nil {
		return nil, goerr.Wrap(err, "commit not found", goerr.V("commit", from))
	}

	seen := make(map[plumbing.Hash]struct{})
	ancestors, err := repo.Log(&git.LogOptions{From: fromHash})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk history", goerr.V("commit", from))
	}
	if err := ancestors.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = struct{}{}
		return nil
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to walk history", goerr.V("commit", from))
	}

	commits, err := repo.Log(&git.LogOptions{
		From:  plumbing.NewHash(string(to)),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk history", goerr.V("commit", to))
	}

	var messages []string
	if err := commits.ForEach(func(c *object.Commit) error {
		if _, ok := seen[c.Hash]; ok {
			return nil
		}
		messages = append(messages, c.Message)
		return nil
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to walk history", goerr.V("commit", to))
	}

	return messages, nil
}
