package ghapp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

// Client authenticates as a GitHub App. It hands out installation scoped HTTP clients for the
// REST API and installation tokens for git over HTTPS.
type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	transport http.RoundTripper
}

type Option func(*Client)

// WithTransport replaces the base transport ghinstallation wraps.
func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:     appID,
		pem:       pem,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// Installation is bound to one installation of the app.
type Installation struct {
	id        types.GitHubAppInstallID
	transport *ghinstallation.Transport
}

func (x *Client) Installation(installID types.GitHubAppInstallID) (*Installation, error) {
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}

	itr, err := ghinstallation.New(x.transport, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github installation transport",
			goerr.V("installID", installID),
		)
	}

	return &Installation{id: installID, transport: itr}, nil
}

func (x *Installation) ID() types.GitHubAppInstallID {
	return x.id
}

func (x *Installation) HTTPClient() *http.Client {
	return &http.Client{Transport: x.transport}
}

// Token returns an installation access token. ghinstallation caches it and refreshes it
// shortly before expiry, so calling Token for every push is fine.
func (x *Installation) Token(ctx context.Context) (types.GitHubToken, error) {
	token, err := x.transport.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get installation token", goerr.V("installID", x.id))
	}
	return types.GitHubToken(token), nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(x.transport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	return github.NewClient(&http.Client{Transport: itr}), nil
}

// GetInstallationIDForOwner looks up the installation of the app on an organization, falling
// back to a user installation when the owner is not an organization.
func (x *Client) GetInstallationIDForOwner(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return 0, err
	}

	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}

		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrInvalidGitHubData, "installation not found for owner",
		goerr.V("owner", owner),
	)
}
