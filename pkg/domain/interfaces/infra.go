package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub Git Cruft

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

type BigQueryInsertOption func(*BigQueryInsertConfig)

type BigQueryInsertConfig struct {
	EnableRetry bool
}

// WithRetry makes Insert retry while the write stream has not caught up with a schema update.
func WithRetry(retry bool) BigQueryInsertOption {
	return func(c *BigQueryInsertConfig) {
		c.EnableRetry = retry
	}
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, rows []any, opts ...BigQueryInsertOption) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

type GitHub interface {
	// ListRepositories returns every repository owned by the user or organization.
	ListRepositories(ctx context.Context, owner string) ([]*model.GitHubRepository, error)
	// GetContentDownloadURL returns the raw download URL of a file on the default branch.
	// It returns types.ErrMarkerNotFound if the path does not exist and
	// types.ErrMultipleMarkers if the path is a directory.
	GetContentDownloadURL(ctx context.Context, repo *model.GitHubRepository, path string) (string, error)
	ListOpenPullRequests(ctx context.Context, repo *model.GitHubRepository) ([]*model.PullRequest, error)
	CreatePullRequest(ctx context.Context, repo *model.GitHubRepository, input *model.NewPullRequest) (*model.PullRequest, error)
}

type Git interface {
	Clone(ctx context.Context, url, dir string) error
	CreateBranch(ctx context.Context, dir string, branch types.BranchName) error
	CommitAll(ctx context.Context, dir, message string, author model.GitAuthor) error
	Push(ctx context.Context, dir string, branch types.BranchName) error
	// ResolveRevision resolves a branch of origin, a tag or a commit hash to a commit.
	ResolveRevision(ctx context.Context, dir string, rev string) (types.CommitSHA, error)
	// CommitMessages returns messages of commits reachable from `to` but not from `from`, newest first.
	CommitMessages(ctx context.Context, dir string, from, to types.CommitSHA) ([]string, error)
}

type Cruft interface {
	// Check reports whether the project in dir is up to date with the template branch.
	Check(ctx context.Context, dir string, checkout types.BranchName) (bool, error)
	Update(ctx context.Context, dir string, checkout types.BranchName) error
}
