package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

// GitAuthor is the identity used for template update commits.
type GitAuthor struct {
	Name  string
	Email string
}

type UpdateProjectsInput struct {
	Owner            string
	MaintainerFields []types.MaintainerField
	Author           GitAuthor
}

func (x *UpdateProjectsInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "GitHub user or organization is empty")
	}
	if x.Author.Name == "" || x.Author.Email == "" {
		return goerr.Wrap(types.ErrInvalidOption, "git author name and email are required")
	}
	return nil
}

// Fields returns the configured maintainer fields, falling back to the default one.
func (x *UpdateProjectsInput) Fields() []types.MaintainerField {
	if len(x.MaintainerFields) == 0 {
		return []types.MaintainerField{types.DefaultMaintainerField}
	}
	return x.MaintainerFields
}
