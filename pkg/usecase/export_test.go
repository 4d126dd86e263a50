package usecase

// Export unexported functions for testing
var (
	UpdateBranchNameForTest              = updateBranchName
	NewTemplateChangeForTest             = newTemplateChange
	RewritePullRequestLinksForTest       = rewritePullRequestLinks
	FindTemplateUpdatePullRequestForTest = findTemplateUpdatePullRequest
	CreateOrUpdateBigQueryTableForTest   = createOrUpdateBigQueryTable
	DownloadFileForTest                  = downloadFile
	GetCruftConfigForTest                = (*UseCase).getCruftConfig
)
