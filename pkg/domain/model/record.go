package model

import (
	"time"

	"github.com/m-mizutani/update-template/pkg/domain/types"
)

// ProjectRecord is one exported row describing the state of a repository in a run.
type ProjectRecord struct {
	RunID             types.RunID `bigquery:"run_id" json:"run_id"`
	Timestamp         time.Time   `bigquery:"timestamp" json:"timestamp"`
	Owner             string      `bigquery:"owner" json:"owner"`
	Name              string      `bigquery:"name" json:"name"`
	URL               string      `bigquery:"url" json:"url"`
	Maintainer        string      `bigquery:"maintainer" json:"maintainer"`
	DefaultBranch     string      `bigquery:"default_branch" json:"default_branch"`
	TemplateURL       string      `bigquery:"template_url" json:"template_url"`
	TemplateBranch    string      `bigquery:"template_branch" json:"template_branch"`
	OldTemplateCommit string      `bigquery:"old_template_commit" json:"old_template_commit"`
	Status            string      `bigquery:"status" json:"status"`
	PullRequestURL    string      `bigquery:"pull_request_url" json:"pull_request_url"`
	SkipReason        string      `bigquery:"skip_reason" json:"skip_reason"`
}

// ProjectRawRecord overrides Timestamp with unix microseconds as required by the storage write API.
type ProjectRawRecord struct {
	ProjectRecord
	Timestamp int64 `bigquery:"timestamp" json:"timestamp"`
}

const StatusSkipped Status = "skipped"

// Records flattens the summary into export rows.
func (x *Summary) Records(ts time.Time) []*ProjectRecord {
	records := make([]*ProjectRecord, 0, len(x.Projects)+len(x.SkippedProjects))

	for _, p := range x.Projects {
		rec := &ProjectRecord{
			RunID:             x.RunID,
			Timestamp:         ts,
			Owner:             x.Owner,
			Name:              p.Name,
			URL:               p.URL,
			Maintainer:        p.Maintainer,
			DefaultBranch:     p.DefaultBranch.String(),
			TemplateURL:       p.TemplateURL,
			TemplateBranch:    p.TemplateBranch.String(),
			OldTemplateCommit: string(p.OldTemplateCommit),
			Status:            string(p.Status),
		}
		if p.PullRequest != nil {
			rec.PullRequestURL = p.PullRequest.HTMLURL
		}
		records = append(records, rec)
	}

	for _, s := range x.SkippedProjects {
		records = append(records, &ProjectRecord{
			RunID:      x.RunID,
			Timestamp:  ts,
			Owner:      x.Owner,
			Name:       s.Name,
			URL:        s.URL,
			Status:     string(StatusSkipped),
			SkipReason: s.Reason,
		})
	}

	return records
}
