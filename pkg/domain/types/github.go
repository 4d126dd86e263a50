package types

import "log/slog"

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	BranchName          string
	CommitSHA           string
	GoogleProjectID     string
	BQDatasetID         string
	BQTableID           string
	MaintainerField     string
	GitHubAccountType   string
	CruftMarkerPath     string
)

const (
	AccountTypeUser         GitHubAccountType = "User"
	AccountTypeOrganization GitHubAccountType = "Organization"
)

// CruftMarker is the file cruft keeps at the root of every project it manages.
const CruftMarker CruftMarkerPath = ".cruft.json"

// DefaultMaintainerField is the cookiecutter variable holding the project maintainer.
const DefaultMaintainerField MaintainerField = "full_name"

// DefaultTemplateBranch is used when .cruft.json has no checkout.
const DefaultTemplateBranch BranchName = "main"

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x BranchName) String() string      { return string(x) }
