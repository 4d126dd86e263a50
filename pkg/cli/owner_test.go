package cli_test

import (
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/update-template/pkg/cli"
)

func initRepoWithOrigin(t *testing.T, urls ...string) string {
	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)
	if len(urls) > 0 {
		gt.R1(repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: urls,
		})).NoError(t)
	}
	return dir
}

func TestDetectOwner(t *testing.T) {
	testCases := map[string]struct {
		url     string
		owner   string
		wantErr bool
	}{
		"ssh": {
			url:   "git@github.com:test-org/project.git",
			owner: "test-org",
		},
		"https with .git": {
			url:   "https://github.com/jane/project.git",
			owner: "jane",
		},
		"https without .git": {
			url:   "https://github.com/jane/project",
			owner: "jane",
		},
		"not github": {
			url:     "https://gitlab.com/jane/project.git",
			wantErr: true,
		},
		"no repository name": {
			url:     "https://github.com/jane",
			wantErr: true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			dir := initRepoWithOrigin(t, tc.url)
			owner, err := cli.DetectOwner(dir)
			if tc.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.V(t, owner).Equal(tc.owner)
		})
	}

	t.Run("no origin", func(t *testing.T) {
		dir := initRepoWithOrigin(t)
		_, err := cli.DetectOwner(dir)
		gt.Error(t, err)
	})

	t.Run("not a git repository", func(t *testing.T) {
		_, err := cli.DetectOwner(t.TempDir())
		gt.Error(t, err)
	})
}
