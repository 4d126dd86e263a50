package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

// DetectOwner returns the GitHub owner of the origin remote of the git repository in dir.
// It is used when no user or organization is given on the command line.
func DetectOwner(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "user or organization is required", goerr.V("error", err.Error()))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin", goerr.V("dir", dir))
	}
	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found", goerr.V("dir", dir))
	}

	url := remote.Config().URLs[0]
	if owner := ownerFromRemoteURL(url); owner != "" {
		return owner, nil
	}
	return "", goerr.New("failed to parse GitHub owner from git remote URL", goerr.V("url", url))
}

// ownerFromRemoteURL accepts git@github.com:owner/repo(.git) and https://github.com/owner/repo(.git).
func ownerFromRemoteURL(url string) string {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		_, path, _ = strings.Cut(url, "github.com/")
	default:
		return ""
	}

	parts := strings.Split(strings.TrimSuffix(path, ".git"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return parts[0]
}
