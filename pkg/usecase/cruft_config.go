package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/infra"
	"github.com/m-mizutani/update-template/pkg/utils/safe"
)

const cruftConfigDownloadTimeout = 10 * time.Second

// getCruftConfig fetches and parses .cruft.json of the repository. It returns an error wrapping
// types.ErrMarkerNotFound if the repository has no such file, and types.ErrDownloadFailed if the
// file exists but cannot be downloaded.
func (x *UseCase) getCruftConfig(ctx context.Context, repo *model.GitHubRepository) (*model.CruftConfig, error) {
	downloadURL, err := x.clients.GitHub().GetContentDownloadURL(ctx, repo, string(types.CruftMarker))
	if err != nil {
		if errors.Is(err, types.ErrMultipleMarkers) {
			return nil, goerr.Wrap(err, "repository contains more than one '.cruft.json' file, which is not supported",
				goerr.V("repo", repo.FullName()),
			)
		}
		// Any other contents API failure is treated like a missing file.
		return nil, goerr.Wrap(types.ErrMarkerNotFound, "failed to look up .cruft.json",
			goerr.V("repo", repo.FullName()),
			goerr.V("error", err.Error()),
		)
	}

	data, err := downloadFile(ctx, x.clients.HTTPClient(), downloadURL)
	if err != nil {
		return nil, err
	}

	cfg, err := model.ParseCruftConfig(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid .cruft.json", goerr.V("repo", repo.FullName()))
	}

	return cfg, nil
}

func downloadFile(ctx context.Context, client infra.HTTPClient, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, cruftConfigDownloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(types.ErrDownloadFailed, "failed to create request",
			goerr.V("url", url),
			goerr.V("error", err.Error()),
		)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrDownloadFailed, "failed to send request",
			goerr.V("url", url),
			goerr.V("error", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.Wrap(types.ErrDownloadFailed, "unexpected status code",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(types.ErrDownloadFailed, "failed to read response body",
			goerr.V("url", url),
			goerr.V("error", err.Error()),
		)
	}

	return data, nil
}
