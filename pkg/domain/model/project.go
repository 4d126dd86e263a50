package model

import (
	"fmt"
	"time"

	"github.com/m-mizutani/update-template/pkg/domain/types"
)

type Status string

const (
	StatusUpToDate       Status = "up_to_date"
	StatusUpdatedThisRun Status = "updated_this_run"
	StatusExistingPR     Status = "existing_pr"
)

// Project is a repository generated from a cruft-managed template.
type Project struct {
	Name              string
	URL               string
	Maintainer        string
	DefaultBranch     types.BranchName
	TemplateURL       string
	TemplateBranch    types.BranchName
	OldTemplateCommit types.CommitSHA
	Status            Status
	PullRequest       *PullRequest
}

// StatusLabel returns the human readable status. now is used to compute how long an existing
// pull request has been open.
func (x *Project) StatusLabel(now time.Time) string {
	switch x.Status {
	case StatusUpToDate:
		return "Up to date"
	case StatusUpdatedThisRun:
		return "Updated this run"
	case StatusExistingPR:
		if x.PullRequest == nil {
			return "Existing PR"
		}
		created := x.PullRequest.CreatedAt
		days := int(now.Sub(created).Hours() / 24)
		return fmt.Sprintf("Existing PR since %s (%d days)", created.Format("2006-01-02"), days)
	default:
		return string(x.Status)
	}
}

type SkippedProject struct {
	Name   string
	URL    string
	Reason string
}

const (
	SkipReasonArchived     = "Project archived"
	SkipReasonDisabled     = "Project disabled"
	SkipReasonNoMarker     = "No '.cruft.json' file"
	SkipReasonCannotFetch  = "Cannot download '.cruft.json' file"
	SkipReasonUpdateFailed = "Update failed"
)
