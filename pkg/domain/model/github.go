package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

// GitHubRepository is the subset of a GitHub repository the updater works with.
type GitHubRepository struct {
	Owner         string
	Name          string
	HTMLURL       string
	CloneURL      string
	DefaultBranch types.BranchName
	Archived      bool
	Disabled      bool
}

func (x *GitHubRepository) FullName() string {
	return x.Owner + "/" + x.Name
}

func (x *GitHubRepository) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "repository name is empty")
	}
	return nil
}

// PullRequest is an open or newly created pull request.
type PullRequest struct {
	Number     int
	Title      string
	HeadBranch string
	HTMLURL    string
	CreatedAt  time.Time
}

type NewPullRequest struct {
	Title string
	Body  string
	Head  types.BranchName
	Base  types.BranchName
}

// HTTPSURL converts an SSH style GitHub remote (git@github.com:owner/repo.git) into its
// https form and drops a trailing ".git". Other values are returned with only the suffix removed.
func HTTPSURL(raw string) string {
	u := strings.Replace(raw, "git@github.com:", "https://github.com/", 1)
	return strings.TrimSuffix(u, ".git")
}
