package config

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 5 * time.Second

type Sentry struct {
	dsn         string
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_SENTRY_RELEASE"),
		},
	}
}

// Configure initializes Sentry. The returned function flushes buffered events and must be
// called before the process exits, because a run ends right after its last failure.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if x.dsn == "" {
		logging.From(ctx).Debug("sentry is not configured")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() {
		if !sentry.Flush(sentryFlushTimeout) {
			logging.From(ctx).Warn("sentry events were not fully sent", "timeout", sentryFlushTimeout)
		}
	}, nil
}

// LogValue hides the public key of the DSN.
func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("DSN", redactDSN(x.dsn)),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
	)
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "(invalid)"
	}
	u.User = nil
	return u.String()
}
