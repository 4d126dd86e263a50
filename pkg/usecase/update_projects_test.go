package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/update-template/pkg/domain/mock"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/infra"
	"github.com/m-mizutani/update-template/pkg/usecase"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

const (
	oldTemplateCommit = "1111111111111111111111111111111111111111"
	newTemplateCommit = "2222222222222222222222222222222222222222"

	testCruftJSON = `{
  "template": "git@github.com:test-org/template.git",
  "commit": "` + oldTemplateCommit + `",
  "checkout": "dev",
  "context": {
    "cookiecutter": {
      "full_name": "Jane Doe",
      "email": "jane@example.com"
    }
  },
  "directory": null
}`
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type updateFixture struct {
	gh    *mock.GitHubMock
	git   *mock.GitMock
	cruft *mock.CruftMock
	http  *httpMock
	uc    *usecase.UseCase
	input *model.UpdateProjectsInput
}

func newRepo(name string) *model.GitHubRepository {
	return &model.GitHubRepository{
		Owner:         "test-org",
		Name:          name,
		HTMLURL:       "https://github.com/test-org/" + name,
		CloneURL:      "https://github.com/test-org/" + name + ".git",
		DefaultBranch: "main",
	}
}

// newUpdateFixture wires mocks for repositories that are all cruft projects and up to date.
func newUpdateFixture(t *testing.T, repos ...*model.GitHubRepository) *updateFixture {
	fx := &updateFixture{
		gh:    &mock.GitHubMock{},
		git:   &mock.GitMock{},
		cruft: &mock.CruftMock{},
		http:  &httpMock{},
		input: &model.UpdateProjectsInput{
			Owner:  "test-org",
			Author: model.GitAuthor{Name: "updater", Email: "updater@example.com"},
		},
	}

	fx.gh.ListRepositoriesFunc = func(ctx context.Context, owner string) ([]*model.GitHubRepository, error) {
		gt.V(t, owner).Equal("test-org")
		return repos, nil
	}
	fx.gh.GetContentDownloadURLFunc = func(ctx context.Context, repo *model.GitHubRepository, path string) (string, error) {
		gt.V(t, path).Equal(".cruft.json")
		return "https://raw.example.com/" + repo.Name + "/.cruft.json", nil
	}
	fx.gh.ListOpenPullRequestsFunc = func(ctx context.Context, repo *model.GitHubRepository) ([]*model.PullRequest, error) {
		return nil, nil
	}
	fx.http.mockDo = func(req *http.Request) (*http.Response, error) {
		return httpResponse(http.StatusOK, testCruftJSON), nil
	}
	fx.git.CloneFunc = func(ctx context.Context, url, dir string) error {
		return nil
	}
	fx.cruft.CheckFunc = func(ctx context.Context, dir string, checkout types.BranchName) (bool, error) {
		return true, nil
	}

	fx.uc = usecase.New(infra.New(
		infra.WithGitHub(fx.gh),
		infra.WithGit(fx.git),
		infra.WithCruft(fx.cruft),
		infra.WithHTTPClient(fx.http),
	))
	return fx
}

func testContext() context.Context {
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return testNow })
	_, ctx = logging.CtxRunID(ctx)
	return ctx
}

func TestUpdateProjects_InvalidInput(t *testing.T) {
	fx := newUpdateFixture(t)

	t.Run("owner is required", func(t *testing.T) {
		_, err := fx.uc.UpdateProjects(testContext(), &model.UpdateProjectsInput{
			Author: model.GitAuthor{Name: "a", Email: "a@example.com"},
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("author is required", func(t *testing.T) {
		_, err := fx.uc.UpdateProjects(testContext(), &model.UpdateProjectsInput{Owner: "test-org"})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("GitHub client is required", func(t *testing.T) {
		uc := usecase.New(infra.New())
		_, err := uc.UpdateProjects(testContext(), fx.input)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestUpdateProjects_ListFailure(t *testing.T) {
	fx := newUpdateFixture(t)
	fx.gh.ListRepositoriesFunc = func(ctx context.Context, owner string) ([]*model.GitHubRepository, error) {
		return nil, goerr.New("API rate limit exceeded")
	}

	summary, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.Error(t, err)
	gt.True(t, summary == nil)
}

func TestUpdateProjects_SkipArchived(t *testing.T) {
	archived := newRepo("archived")
	archived.Archived = true
	fx := newUpdateFixture(t, archived)

	ctx, logs := logCapture(testContext())
	summary, err := fx.uc.UpdateProjects(ctx, fx.input)
	gt.NoError(t, err)

	gt.A(t, summary.Projects).Length(0)
	gt.A(t, summary.SkippedProjects).Length(1)
	gt.V(t, *summary.SkippedProjects[0]).Equal(model.SkippedProject{
		Name:   "archived",
		URL:    "https://github.com/test-org/archived",
		Reason: "Project archived",
	})
	gt.S(t, logs.String()).Contains("Skipped 'archived'. Project archived.")
	gt.A(t, fx.gh.GetContentDownloadURLCalls()).Length(0)

	// every line of the run carries its ID
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		gt.S(t, line).Contains("run_id=" + summary.RunID.String())
	}
}

func TestUpdateProjects_SkipDisabled(t *testing.T) {
	disabled := newRepo("disabled")
	disabled.Disabled = true
	fx := newUpdateFixture(t, disabled)

	summary, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.NoError(t, err)
	gt.A(t, summary.SkippedProjects).Length(1)
	gt.V(t, summary.SkippedProjects[0].Reason).Equal("Project disabled")
}

func TestUpdateProjects_SkipWithoutCruftJSON(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("plain"), newRepo("broken-api"))
	fx.gh.GetContentDownloadURLFunc = func(ctx context.Context, repo *model.GitHubRepository, path string) (string, error) {
		if repo.Name == "plain" {
			return "", goerr.Wrap(types.ErrMarkerNotFound, "not found")
		}
		return "", goerr.New("internal server error")
	}

	ctx, logs := logCapture(testContext())
	summary, err := fx.uc.UpdateProjects(ctx, fx.input)
	gt.NoError(t, err)

	gt.A(t, summary.SkippedProjects).Length(2)
	for _, s := range summary.SkippedProjects {
		gt.V(t, s.Reason).Equal("No '.cruft.json' file")
	}
	gt.S(t, logs.String()).Contains("Skipped 'plain'. Project does not have a '.cruft.json' file.")
	gt.A(t, fx.git.CloneCalls()).Length(0)
}

func TestUpdateProjects_SkipWhenDownloadFails(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"), newRepo("repo2"))
	fx.http.mockDo = func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Path, "repo1") {
			return httpResponse(http.StatusNotFound, "404: Not Found"), nil
		}
		return nil, errors.New("connection reset")
	}

	ctx, logs := logCapture(testContext())
	summary, err := fx.uc.UpdateProjects(ctx, fx.input)
	gt.NoError(t, err)

	gt.A(t, summary.SkippedProjects).Length(2)
	for _, s := range summary.SkippedProjects {
		gt.V(t, s.Reason).Equal("Cannot download '.cruft.json' file")
	}
	gt.S(t, logs.String()).Contains("level=WARN")
	gt.S(t, logs.String()).Contains("Skipped 'repo1'. Failed to retrieve '.cruft.json' file although the project has one.")
}

func TestUpdateProjects_MultipleCruftJSON(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("monorepo"), newRepo("repo2"))
	fx.gh.GetContentDownloadURLFunc = func(ctx context.Context, repo *model.GitHubRepository, path string) (string, error) {
		if repo.Name == "monorepo" {
			return "", goerr.Wrap(types.ErrMultipleMarkers, "path is a directory")
		}
		return "https://raw.example.com/" + repo.Name + "/.cruft.json", nil
	}

	summary, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "some projects failed to update"))

	// the other repository is still processed
	gt.A(t, summary.Projects).Length(1)
	gt.V(t, summary.Projects[0].Name).Equal("repo2")
	gt.A(t, summary.SkippedProjects).Length(1)
	gt.V(t, summary.SkippedProjects[0].Name).Equal("monorepo")
	gt.V(t, summary.SkippedProjects[0].Reason).Equal("Update failed")

	failed, ok := goerr.Unwrap(err).Values()["failed_repos"].([]string)
	gt.True(t, ok)
	gt.V(t, failed).Equal([]string{"test-org/monorepo"})
}

func TestUpdateProjects_InvalidCruftJSON(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"))
	fx.http.mockDo = func(req *http.Request) (*http.Response, error) {
		return httpResponse(http.StatusOK, `{"template": ""}`), nil
	}

	summary, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.Error(t, err)
	gt.A(t, summary.SkippedProjects).Length(1)
	gt.V(t, summary.SkippedProjects[0].Reason).Equal("Update failed")
}

func TestUpdateProjects_ExistingPullRequest(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"))
	existing := &model.PullRequest{
		Number:    42,
		Title:     "chore: Update Python template",
		HTMLURL:   "https://github.com/test-org/repo1/pull/42",
		CreatedAt: testNow.Add(-72 * time.Hour),
	}
	fx.gh.ListOpenPullRequestsFunc = func(ctx context.Context, repo *model.GitHubRepository) ([]*model.PullRequest, error) {
		return []*model.PullRequest{
			{Number: 41, Title: "feat: Unrelated", HeadBranch: "feature"},
			existing,
		}, nil
	}

	ctx, logs := logCapture(testContext())
	summary, err := fx.uc.UpdateProjects(ctx, fx.input)
	gt.NoError(t, err)

	gt.A(t, summary.Projects).Length(1)
	p := summary.Projects[0]
	gt.V(t, p.Status).Equal(model.StatusExistingPR)
	gt.V(t, p.PullRequest).Equal(existing)
	gt.V(t, p.Maintainer).Equal("Jane Doe")
	gt.V(t, p.StatusLabel(testNow)).Equal("Existing PR since 2024-02-27 (3 days)")
	gt.S(t, logs.String()).Contains("Skipped 'repo1'. Project already has an active pull request for a template update.")
	gt.A(t, fx.git.CloneCalls()).Length(0)
}

func TestUpdateProjects_UpToDate(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"))

	ctx, logs := logCapture(testContext())
	summary, err := fx.uc.UpdateProjects(ctx, fx.input)
	gt.NoError(t, err)

	gt.A(t, summary.Projects).Length(1)
	gt.V(t, *summary.Projects[0]).Equal(model.Project{
		Name:              "repo1",
		URL:               "https://github.com/test-org/repo1",
		Maintainer:        "Jane Doe",
		DefaultBranch:     "main",
		TemplateURL:       "git@github.com:test-org/template.git",
		TemplateBranch:    "dev",
		OldTemplateCommit: oldTemplateCommit,
		Status:            model.StatusUpToDate,
	})
	gt.V(t, summary.Owner).Equal("test-org")
	gt.V(t, summary.RunID).NotEqual(types.RunID(""))
	gt.S(t, logs.String()).Contains("Checking 'repo1'")

	gt.A(t, fx.git.CloneCalls()).Length(1)
	gt.V(t, fx.git.CloneCalls()[0].Url).Equal("https://github.com/test-org/repo1.git")
	gt.A(t, fx.cruft.CheckCalls()).Length(1)
	gt.V(t, fx.cruft.CheckCalls()[0].Checkout).Equal(types.BranchName("dev"))
	gt.V(t, fx.cruft.CheckCalls()[0].Dir).Equal(fx.git.CloneCalls()[0].Dir)
}

func TestUpdateProjects_MaintainerField(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"))
	fx.input.MaintainerFields = []types.MaintainerField{"maintainer", "email"}

	summary, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.NoError(t, err)
	gt.V(t, summary.Projects[0].Maintainer).Equal("jane@example.com")
}

func setupOutdated(t *testing.T, fx *updateFixture, messages []string) {
	fx.cruft.CheckFunc = func(ctx context.Context, dir string, checkout types.BranchName) (bool, error) {
		return false, nil
	}
	fx.cruft.UpdateFunc = func(ctx context.Context, dir string, checkout types.BranchName) error {
		return nil
	}
	fx.git.CreateBranchFunc = func(ctx context.Context, dir string, branch types.BranchName) error {
		return nil
	}
	fx.git.ResolveRevisionFunc = func(ctx context.Context, dir string, rev string) (types.CommitSHA, error) {
		gt.V(t, rev).Equal("dev")
		return newTemplateCommit, nil
	}
	fx.git.CommitMessagesFunc = func(ctx context.Context, dir string, from, to types.CommitSHA) ([]string, error) {
		gt.V(t, from).Equal(types.CommitSHA(oldTemplateCommit))
		gt.V(t, to).Equal(types.CommitSHA(newTemplateCommit))
		return messages, nil
	}
	fx.git.CommitAllFunc = func(ctx context.Context, dir, message string, author model.GitAuthor) error {
		return nil
	}
	fx.git.PushFunc = func(ctx context.Context, dir string, branch types.BranchName) error {
		return nil
	}
	fx.gh.CreatePullRequestFunc = func(ctx context.Context, repo *model.GitHubRepository, input *model.NewPullRequest) (*model.PullRequest, error) {
		return &model.PullRequest{
			Number:     7,
			Title:      input.Title,
			HeadBranch: input.Head.String(),
			HTMLURL:    "https://github.com/test-org/" + repo.Name + "/pull/7",
			CreatedAt:  testNow,
		}, nil
	}
}

func TestUpdateProjects_Outdated(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"))
	setupOutdated(t, fx, []string{
		"feat: Add pre-commit hook (#12)\n",
		"fix: Typo in README\n\nLong description\nacross lines\n",
	})

	ctx, logs := logCapture(testContext())
	summary, err := fx.uc.UpdateProjects(ctx, fx.input)
	gt.NoError(t, err)

	gt.A(t, summary.Projects).Length(1)
	p := summary.Projects[0]
	gt.V(t, p.Status).Equal(model.StatusUpdatedThisRun)
	gt.V(t, p.PullRequest.HTMLURL).Equal("https://github.com/test-org/repo1/pull/7")

	const branch = types.BranchName("chore/update-template-2024-03-01T10-00-00")

	// project clone, then template clone
	cloneCalls := fx.git.CloneCalls()
	gt.A(t, cloneCalls).Length(2)
	gt.V(t, cloneCalls[0].Url).Equal("https://github.com/test-org/repo1.git")
	gt.V(t, cloneCalls[1].Url).Equal("git@github.com:test-org/template.git")
	gt.V(t, cloneCalls[0].Dir).NotEqual(cloneCalls[1].Dir)
	projectDir := cloneCalls[0].Dir

	gt.A(t, fx.git.CreateBranchCalls()).Length(1)
	gt.V(t, fx.git.CreateBranchCalls()[0].Dir).Equal(projectDir)
	gt.V(t, fx.git.CreateBranchCalls()[0].Branch).Equal(branch)

	gt.A(t, fx.cruft.UpdateCalls()).Length(1)
	gt.V(t, fx.cruft.UpdateCalls()[0].Dir).Equal(projectDir)
	gt.V(t, fx.cruft.UpdateCalls()[0].Checkout).Equal(types.BranchName("dev"))

	gt.A(t, fx.git.CommitAllCalls()).Length(1)
	gt.V(t, fx.git.CommitAllCalls()[0].Message).Equal(usecase.PullRequestTitle)
	gt.V(t, fx.git.CommitAllCalls()[0].Author).Equal(fx.input.Author)

	gt.A(t, fx.git.PushCalls()).Length(1)
	gt.V(t, fx.git.PushCalls()[0].Branch).Equal(branch)

	gt.A(t, fx.gh.CreatePullRequestCalls()).Length(1)
	pr := fx.gh.CreatePullRequestCalls()[0].Input
	gt.V(t, pr.Title).Equal(usecase.PullRequestTitle)
	gt.V(t, pr.Head).Equal(branch)
	gt.V(t, pr.Base).Equal(types.BranchName("main"))
	gt.V(t, pr.Body).Equal(
		"Contains the following changes to get up-to-date with the newest version of the template's 'dev' branch.\n\n" +
			"- feat: Add pre-commit hook ([PR](https://github.com/test-org/template/pull/12))\n\n" +
			"- fix: Typo in README\n  \n  Long description\n  across lines\n")

	gt.S(t, logs.String()).Contains("Created pull request for 'repo1' to get up to date with the template's 'dev' branch.")
}

func TestUpdateProjects_IncrementalUpdate(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"))
	setupOutdated(t, fx, []string{"feat: Add pre-commit hook (#12)\n\nRuns ruff on commit.\n"})

	_, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.NoError(t, err)

	pr := fx.gh.CreatePullRequestCalls()[0].Input
	gt.V(t, pr.Title).Equal("feat: Add pre-commit hook ([PR](https://github.com/test-org/template/pull/12))")
	gt.V(t, pr.Body).Equal("Runs ruff on commit.")
	gt.V(t, fx.git.CommitAllCalls()[0].Message).Equal("feat: Add pre-commit hook ([PR](https://github.com/test-org/template/pull/12))\n\nRuns ruff on commit.\n")
}

func TestUpdateProjects_CruftFailure(t *testing.T) {
	fx := newUpdateFixture(t, newRepo("repo1"), newRepo("repo2"))
	fx.cruft.CheckFunc = func(ctx context.Context, dir string, checkout types.BranchName) (bool, error) {
		return false, nil
	}
	fx.cruft.UpdateFunc = func(ctx context.Context, dir string, checkout types.BranchName) error {
		return goerr.Wrap(types.ErrCommandFailed, "cruft update failed")
	}
	fx.git.CreateBranchFunc = func(ctx context.Context, dir string, branch types.BranchName) error {
		return nil
	}

	summary, err := fx.uc.UpdateProjects(testContext(), fx.input)
	gt.Error(t, err)
	gt.A(t, summary.Projects).Length(0)
	gt.A(t, summary.SkippedProjects).Length(2)
	gt.A(t, fx.git.PushCalls()).Length(0)
	gt.A(t, fx.gh.CreatePullRequestCalls()).Length(0)
}
