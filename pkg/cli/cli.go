package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/update-template/pkg/cli/config"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/infra"
	"github.com/m-mizutani/update-template/pkg/usecase"
	"github.com/m-mizutani/update-template/pkg/utils/errutil"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
	"github.com/m-mizutani/update-template/pkg/utils/safe"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	output       io.Writer
	infraOptions []infra.Option
}

type Option func(*CLI)

// WithOutput sets the writer of the summary tables. Default is stdout.
func WithOutput(w io.Writer) Option {
	return func(x *CLI) {
		x.output = w
	}
}

// WithInfraOptions overrides clients built from the command line flags.
func WithInfraOptions(options ...infra.Option) Option {
	return func(x *CLI) {
		x.infraOptions = append(x.infraOptions, options...)
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		output: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(ctx context.Context, argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		colorMode string

		ghConfig     config.GitHub
		updateConfig config.Updater
		bqConfig     config.BigQuery
		sentryConfig config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [trace|debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>], - is stderr",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "-",
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "Color of summary tables [auto|always|never]",
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_COLOR"),
			Destination: &colorMode,
			Value:       "auto",
		},
	}

	app := &cli.Command{
		Name:      "update-template",
		Usage:     "Apply cruft template updates to GitHub repositories and open pull requests",
		ArgsUsage: "<user or organization>",
		Flags: slice.Flatten(
			flags,
			ghConfig.Flags(),
			updateConfig.Flags(),
			bqConfig.Flags(),
			sentryConfig.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() > 1 {
				return goerr.New("only one user or organization can be given", goerr.V("args", c.Args().Slice()))
			}

			owner := c.Args().First()
			if owner == "" {
				detected, err := DetectOwner(".")
				if err != nil {
					return err
				}
				logging.From(ctx).Info("Detected owner from git remote", "owner", detected)
				owner = detected
			}

			printOptions, err := summaryPrintOptions(colorMode)
			if err != nil {
				return err
			}

			return x.runUpdate(ctx, owner, printOptions, &ghConfig, &updateConfig, &bqConfig, &sentryConfig)
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}

func summaryPrintOptions(colorMode string) ([]model.PrintOption, error) {
	switch colorMode {
	case "auto", "":
		return nil, nil
	case "always":
		return []model.PrintOption{model.WithColorProfile(termenv.ANSI256)}, nil
	case "never":
		return []model.PrintOption{model.WithColorProfile(termenv.Ascii)}, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid color mode", goerr.V("color", colorMode))
	}
}

func (x *CLI) runUpdate(ctx context.Context, owner string, printOptions []model.PrintOption, ghConfig *config.GitHub, updateConfig *config.Updater, bqConfig *config.BigQuery, sentryConfig *config.Sentry) error {
	_, ctx = logging.StartRun(ctx)
	logger := logging.From(ctx)

	flushSentry, err := sentryConfig.Configure(ctx)
	if err != nil {
		return err
	}
	defer flushSentry()

	logger.Info("Starting update-template",
		"owner", owner,
		"github", ghConfig,
		"updater", updateConfig,
		"bigquery", bqConfig,
		"sentry", sentryConfig,
	)

	input := updateConfig.Input(owner)
	if err := input.Validate(); err != nil {
		return err
	}

	ghClient, gitClient, err := ghConfig.NewClients(ctx, owner)
	if err != nil {
		return err
	}

	infraOptions := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithGit(gitClient),
		infra.WithCruft(updateConfig.NewCruft()),
	}

	bqClient, err := bqConfig.NewClient(ctx)
	if err != nil {
		return err
	}
	if bqClient != nil {
		defer safe.Close(bqClient)
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	uc := usecase.New(infra.New(append(infraOptions, x.infraOptions...)...))

	summary, updateErr := uc.UpdateProjects(ctx, input)
	if summary == nil {
		return updateErr
	}

	if err := summary.Print(x.output, logging.CtxTime(ctx), printOptions...); err != nil {
		return err
	}

	if err := uc.ExportSummary(ctx, summary); err != nil {
		errutil.HandleError(ctx, "failed to export summary", err)
		if updateErr == nil {
			return err
		}
	}

	return updateErr
}
