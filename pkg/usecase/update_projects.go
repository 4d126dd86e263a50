package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/utils/errutil"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
	"github.com/m-mizutani/update-template/pkg/utils/safe"
)

// UpdateProjects walks all repositories of the owner, updates those that are outdated against
// their cruft template and opens a pull request for each update. Repositories are processed one
// by one. A failure in one repository is reported and recorded in the summary without stopping
// the run; the returned error then lists all failed repositories. The summary is returned even
// when an error is returned, unless the repository list itself cannot be retrieved.
func (x *UseCase) UpdateProjects(ctx context.Context, input *model.UpdateProjectsInput) (*model.Summary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.clients.Git() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "git client is not configured")
	}

	runID, ctx := logging.StartRun(ctx)
	logger := logging.From(ctx)

	repos, err := x.clients.GitHub().ListRepositories(ctx, input.Owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", input.Owner))
	}

	logger.Info("Retrieved repositories",
		slog.String("owner", input.Owner),
		slog.Int("total_repos", len(repos)),
	)

	summary := &model.Summary{
		RunID: runID,
		Owner: input.Owner,
	}

	var failedRepos []string
	for _, repo := range repos {
		if err := x.updateRepository(ctx, input, repo, summary); err != nil {
			errutil.HandleError(ctx, "Failed to update project", goerr.Wrap(err, "failed to update project",
				goerr.V("repo", repo.FullName()),
			))
			summary.Skip(repo.Name, repo.HTMLURL, model.SkipReasonUpdateFailed)
			failedRepos = append(failedRepos, repo.FullName())
		}
	}

	logger.Info("Completed template update",
		slog.String("owner", input.Owner),
		slog.Int("projects", len(summary.Projects)),
		slog.Int("up_to_date", summary.CountUpToDate()),
		slog.Int("skipped", len(summary.SkippedProjects)),
		slog.Int("failure", len(failedRepos)),
	)

	if len(failedRepos) > 0 {
		return summary, goerr.New("some projects failed to update",
			goerr.V("owner", input.Owner),
			goerr.V("failure_count", len(failedRepos)),
			goerr.V("failed_repos", failedRepos),
		)
	}

	return summary, nil
}

func (x *UseCase) updateRepository(ctx context.Context, input *model.UpdateProjectsInput, repo *model.GitHubRepository, summary *model.Summary) error {
	logger := logging.From(ctx)

	if err := repo.Validate(); err != nil {
		return err
	}

	if repo.Archived {
		logger.Info(fmt.Sprintf("Skipped '%s'. Project archived.", repo.Name))
		summary.Skip(repo.Name, repo.HTMLURL, model.SkipReasonArchived)
		return nil
	}
	if repo.Disabled {
		logger.Info(fmt.Sprintf("Skipped '%s'. Project disabled.", repo.Name))
		summary.Skip(repo.Name, repo.HTMLURL, model.SkipReasonDisabled)
		return nil
	}

	cfg, err := x.getCruftConfig(ctx, repo)
	switch {
	case errors.Is(err, types.ErrMarkerNotFound):
		logger.Info(fmt.Sprintf("Skipped '%s'. Project does not have a '.cruft.json' file.", repo.Name))
		summary.Skip(repo.Name, repo.HTMLURL, model.SkipReasonNoMarker)
		return nil

	case errors.Is(err, types.ErrDownloadFailed):
		logger.Warn(fmt.Sprintf("Skipped '%s'. Failed to retrieve '.cruft.json' file although the project has one.", repo.Name),
			slog.Any("error", err),
		)
		summary.Skip(repo.Name, repo.HTMLURL, model.SkipReasonCannotFetch)
		return nil

	case err != nil:
		return err
	}

	project := &model.Project{
		Name:              repo.Name,
		URL:               repo.HTMLURL,
		Maintainer:        cfg.Maintainer(input.Fields()),
		DefaultBranch:     repo.DefaultBranch,
		TemplateURL:       cfg.Template,
		TemplateBranch:    cfg.TemplateBranch(),
		OldTemplateCommit: types.CommitSHA(cfg.Commit),
		Status:            model.StatusUpToDate,
	}

	prs, err := x.clients.GitHub().ListOpenPullRequests(ctx, repo)
	if err != nil {
		return err
	}
	if pr := findTemplateUpdatePullRequest(prs); pr != nil {
		logger.Info(fmt.Sprintf("Skipped '%s'. Project already has an active pull request for a template update.", repo.Name),
			slog.String("pull_request", pr.HTMLURL),
		)
		project.Status = model.StatusExistingPR
		project.PullRequest = pr
		summary.AddProject(project)
		return nil
	}

	dir, cleanup, err := safe.TempDir("update-template-project-*")
	if err != nil {
		return err
	}
	defer cleanup()

	if err := x.clients.Git().Clone(ctx, repo.CloneURL, dir); err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Checking '%s'", repo.Name))

	upToDate, err := x.clients.Cruft().Check(ctx, dir, project.TemplateBranch)
	if err != nil {
		return err
	}
	if upToDate {
		summary.AddProject(project)
		return nil
	}

	pr, err := x.updateProject(ctx, input, repo, project, dir)
	if err != nil {
		return err
	}

	project.Status = model.StatusUpdatedThisRun
	project.PullRequest = pr
	summary.AddProject(project)
	return nil
}

// updateProject applies the template update in the cloned project at dir and opens a pull request.
func (x *UseCase) updateProject(ctx context.Context, input *model.UpdateProjectsInput, repo *model.GitHubRepository, project *model.Project, dir string) (*model.PullRequest, error) {
	branch := updateBranchName(logging.CtxTime(ctx))
	if err := x.clients.Git().CreateBranch(ctx, dir, branch); err != nil {
		return nil, err
	}

	if err := x.clients.Cruft().Update(ctx, dir, project.TemplateBranch); err != nil {
		return nil, err
	}

	messages, err := x.templateCommitMessages(ctx, project)
	if err != nil {
		return nil, err
	}
	change := newTemplateChange(messages, project.TemplateURL, project.TemplateBranch)

	if err := x.clients.Git().CommitAll(ctx, dir, change.CommitMessage, input.Author); err != nil {
		return nil, err
	}
	if err := x.clients.Git().Push(ctx, dir, branch); err != nil {
		return nil, err
	}

	pr, err := x.clients.GitHub().CreatePullRequest(ctx, repo, &model.NewPullRequest{
		Title: change.Title,
		Body:  change.Body,
		Head:  branch,
		Base:  repo.DefaultBranch,
	})
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info(
		fmt.Sprintf("Created pull request for '%s' to get up to date with the template's '%s' branch.", repo.Name, project.TemplateBranch),
		slog.String("pull_request", pr.HTMLURL),
	)

	return pr, nil
}

// templateCommitMessages clones the template and returns the messages of the commits the project
// has not been synced to yet, newest first.
func (x *UseCase) templateCommitMessages(ctx context.Context, project *model.Project) ([]string, error) {
	dir, cleanup, err := safe.TempDir("update-template-template-*")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := x.clients.Git().Clone(ctx, project.TemplateURL, dir); err != nil {
		return nil, goerr.Wrap(err, "failed to clone template", goerr.V("template", project.TemplateURL))
	}

	head, err := x.clients.Git().ResolveRevision(ctx, dir, project.TemplateBranch.String())
	if err != nil {
		return nil, err
	}

	return x.clients.Git().CommitMessages(ctx, dir, project.OldTemplateCommit, head)
}
