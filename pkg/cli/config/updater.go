package config

import (
	"log/slog"

	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/infra/cruft"
	"github.com/urfave/cli/v3"
)

// Updater configures how projects are updated.
type Updater struct {
	cruftPath        string
	maintainerFields []string
	authorName       string
	authorEmail      string
}

func (x *Updater) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cruft-path",
			Usage:       "Path to cruft binary",
			Category:    "Update",
			Value:       "cruft",
			Destination: &x.cruftPath,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_CRUFT_PATH"),
		},
		&cli.StringSliceFlag{
			Name:        "maintainer-field",
			Usage:       "Cookiecutter variable holding the project maintainer, checked in the given order",
			Category:    "Update",
			Value:       []string{string(types.DefaultMaintainerField)},
			Destination: &x.maintainerFields,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_MAINTAINER_FIELD"),
		},
		&cli.StringFlag{
			Name:        "git-author-name",
			Usage:       "Author name of template update commits",
			Category:    "Update",
			Value:       "update-template",
			Destination: &x.authorName,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GIT_AUTHOR_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-author-email",
			Usage:       "Author email of template update commits",
			Category:    "Update",
			Value:       "update-template@users.noreply.github.com",
			Destination: &x.authorEmail,
			Sources:     cli.EnvVars("UPDATE_TEMPLATE_GIT_AUTHOR_EMAIL"),
		},
	}
}

func (x *Updater) NewCruft() *cruft.Client {
	return cruft.New(x.cruftPath)
}

func (x *Updater) Input(owner string) *model.UpdateProjectsInput {
	fields := make([]types.MaintainerField, 0, len(x.maintainerFields))
	for _, f := range x.maintainerFields {
		fields = append(fields, types.MaintainerField(f))
	}

	return &model.UpdateProjectsInput{
		Owner:            owner,
		MaintainerFields: fields,
		Author: model.GitAuthor{
			Name:  x.authorName,
			Email: x.authorEmail,
		},
	}
}

func (x Updater) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("cruftPath", x.cruftPath),
		slog.Any("maintainerFields", x.maintainerFields),
		slog.String("authorName", x.authorName),
		slog.String("authorEmail", x.authorEmail),
	)
}
