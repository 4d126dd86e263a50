package config

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/infra/ghapp"
	"github.com/m-mizutani/update-template/pkg/infra/github"
	"github.com/m-mizutani/update-template/pkg/infra/gitrepo"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// GitHub holds the credential for the REST API and for git over HTTPS. Either an access token
// or a GitHub App is required; the token wins when both are given.
type GitHub struct {
	token         types.GitHubToken
	appID         types.GitHubAppID
	installID     types.GitHubAppInstallID
	appPrivateKey types.GitHubAppPrivateKey
	apiBaseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-access-token",
			Usage:       "GitHub token to list repositories, clone, push and create pull requests",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used when no access token is given",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.appPrivateKey),
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID (looked up from the owner if omitted)",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL, e.g. for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.apiBaseURL,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GITHUB_API_URL"),
		},
	}
}

// NewClients builds the REST API client and the git client. owner is used to find the
// installation of the GitHub App when no installation ID is configured.
func (x *GitHub) NewClients(ctx context.Context, owner string) (*github.Client, *gitrepo.Client, error) {
	var (
		httpClient *http.Client
		tokens     gitrepo.TokenSource
	)

	switch {
	case x.token != "":
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)}))
		tokens = gitrepo.StaticToken(x.token)

	case x.appID != 0:
		app, err := ghapp.New(x.appID, x.appPrivateKey)
		if err != nil {
			return nil, nil, err
		}

		installID := x.installID
		if installID == 0 {
			id, err := app.GetInstallationIDForOwner(ctx, owner)
			if err != nil {
				return nil, nil, goerr.Wrap(err, "failed to get installation ID for owner", goerr.V("owner", owner))
			}
			installID = id
		}

		installation, err := app.Installation(installID)
		if err != nil {
			return nil, nil, err
		}
		httpClient = installation.HTTPClient()
		tokens = installation

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "GitHub access token or GitHub App is required (--github-access-token or GITHUB_TOKEN)")
	}

	var options []github.Option
	if x.apiBaseURL != "" {
		options = append(options, github.WithBaseURL(x.apiBaseURL))
	}
	ghClient, err := github.New(httpClient, options...)
	if err != nil {
		return nil, nil, err
	}

	hosts, err := x.gitHosts()
	if err != nil {
		return nil, nil, err
	}

	return ghClient, gitrepo.New(tokens, gitrepo.WithTrustedHosts(hosts...)), nil
}

// gitHosts returns the hosts besides github.com that may receive the token on clone and push.
// A GitHub Enterprise Server serves git on the host of its API URL.
func (x *GitHub) gitHosts() ([]string, error) {
	if x.apiBaseURL == "" {
		return nil, nil
	}

	u, err := url.Parse(x.apiBaseURL)
	if err != nil || u.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.apiBaseURL))
	}
	if u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API URL must use https", goerr.V("url", x.apiBaseURL))
	}
	return []string{u.Host}, nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.appPrivateKey)),
		slog.String("apiBaseURL", x.apiBaseURL),
	)
}
