package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

const (
	PullRequestTitle = "chore(template): Update template"

	pullRequestBodyHeader = "Contains the following changes to get up-to-date with the newest version of the template's '%s' branch.\n\n"
	updateBranchPrefix    = "chore/update-template-"
)

// legacyPullRequestTitles were used by earlier versions for the same kind of pull request.
var legacyPullRequestTitles = []string{
	"chore: Update Python template",
}

// updateBranchName returns the branch of an update started at now, e.g.
// chore/update-template-2024-03-01T10-00-00.
func updateBranchName(now time.Time) types.BranchName {
	return types.BranchName(updateBranchPrefix + now.Format("2006-01-02T15-04-05"))
}

func isTemplateUpdatePullRequest(pr *model.PullRequest) bool {
	if pr.Title == PullRequestTitle {
		return true
	}
	for _, title := range legacyPullRequestTitles {
		if pr.Title == title {
			return true
		}
	}
	return strings.HasPrefix(pr.HeadBranch, updateBranchPrefix)
}

func findTemplateUpdatePullRequest(prs []*model.PullRequest) *model.PullRequest {
	for _, pr := range prs {
		if isTemplateUpdatePullRequest(pr) {
			return pr
		}
	}
	return nil
}

var pullRequestRefPattern = regexp.MustCompile(`\(#(\d+)\)`)

// rewritePullRequestLinks turns "(#123)" references of squash merged template commits into
// explicit links. GitHub would otherwise resolve them against the project repository.
func rewritePullRequestLinks(message, templateURL string) string {
	link := model.HTTPSURL(templateURL) + "/pull/"
	return pullRequestRefPattern.ReplaceAllString(message, "([PR]("+link+"${1}))")
}

// templateChange describes the commit and pull request created for an update.
type templateChange struct {
	Title         string
	Body          string
	CommitMessage string
}

// newTemplateChange builds title, body and commit message from the template commits between
// the project's last synced commit and the new template head, newest first. A single commit is
// carried over as is. Several commits are listed as bullet points.
func newTemplateChange(messages []string, templateURL string, templateBranch types.BranchName) *templateChange {
	rewritten := make([]string, len(messages))
	for i, msg := range messages {
		rewritten[i] = rewritePullRequestLinks(msg, templateURL)
	}

	if len(rewritten) == 1 {
		title, body, _ := strings.Cut(strings.TrimSpace(rewritten[0]), "\n")
		return &templateChange{
			Title:         strings.TrimSpace(title),
			Body:          strings.TrimSpace(body),
			CommitMessage: rewritten[0],
		}
	}

	items := make([]string, len(rewritten))
	for i, msg := range rewritten {
		items[i] = strings.Join(splitLines(strings.TrimSpace(msg)), "\n  ")
	}

	return &templateChange{
		Title:         PullRequestTitle,
		Body:          fmt.Sprintf(pullRequestBodyHeader, templateBranch) + "- " + strings.Join(items, "\n\n- ") + "\n",
		CommitMessage: PullRequestTitle,
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
