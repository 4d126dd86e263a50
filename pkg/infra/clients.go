package infra

import (
	"net/http"

	"github.com/m-mizutani/update-template/pkg/domain/interfaces"
	"github.com/m-mizutani/update-template/pkg/infra/cruft"
)

type Clients struct {
	github     interfaces.GitHub
	git        interfaces.Git
	cruft      interfaces.Cruft
	httpClient HTTPClient
	bqClient   interfaces.BigQuery
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
		cruft:      cruft.New("cruft"),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) Cruft() interfaces.Cruft {
	return x.cruft
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithCruft(client interfaces.Cruft) Option {
	return func(x *Clients) {
		x.cruft = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}
