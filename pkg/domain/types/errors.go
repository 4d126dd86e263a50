package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption      = goerr.New("invalid option")
	ErrMarkerNotFound     = goerr.New("cruft marker not found")
	ErrMultipleMarkers    = goerr.New("more than one cruft marker")
	ErrInvalidCruftConfig = goerr.New("invalid cruft config")
	ErrDownloadFailed     = goerr.New("download failed")
	ErrCommandFailed      = goerr.New("external command failed")
	ErrInvalidGitHubData  = goerr.New("invalid GitHub data")
)
