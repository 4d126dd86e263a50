package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/update-template/pkg/cli/config"
	"github.com/m-mizutani/update-template/pkg/domain/types"
)

func TestBigQueryNewClient(t *testing.T) {
	unsetEnv(t,
		"UPDATE_TEMPLATE_BIGQUERY_PROJECT_ID",
		"UPDATE_TEMPLATE_BIGQUERY_DATASET_ID",
		"UPDATE_TEMPLATE_BIGQUERY_TABLE_ID",
		"UPDATE_TEMPLATE_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT",
	)

	t.Run("disabled without project", func(t *testing.T) {
		var bqConfig config.BigQuery
		parseFlags(t, bqConfig.Flags())

		gt.False(t, bqConfig.Enabled())
		client, err := bqConfig.NewClient(context.Background())
		gt.NoError(t, err)
		gt.True(t, client == nil)
	})

	t.Run("dataset is required", func(t *testing.T) {
		var bqConfig config.BigQuery
		parseFlags(t, bqConfig.Flags(), "--bigquery-project-id", "my-project")

		gt.True(t, bqConfig.Enabled())
		_, err := bqConfig.NewClient(context.Background())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
