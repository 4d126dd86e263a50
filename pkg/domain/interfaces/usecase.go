package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/update-template/pkg/domain/model"
)

type UseCase interface {
	UpdateProjects(ctx context.Context, input *model.UpdateProjectsInput) (*model.Summary, error)
	ExportSummary(ctx context.Context, summary *model.Summary) error
}
