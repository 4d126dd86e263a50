package usecase

import (
	"context"
	"log/slog"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/interfaces"
	"github.com/m-mizutani/update-template/pkg/domain/model"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

// ExportSummary writes one row per project and skipped project to BigQuery. It does nothing if
// BigQuery is not configured.
func (x *UseCase) ExportSummary(ctx context.Context, summary *model.Summary) error {
	if x.clients.BigQuery() == nil {
		return nil
	}

	records := summary.Records(logging.CtxTime(ctx).UTC())
	if len(records) == 0 {
		return nil
	}

	schema, schemaUpdated, err := createOrUpdateBigQueryTable(ctx, x.clients.BigQuery())
	if err != nil {
		return err
	}

	rows := make([]any, len(records))
	for i, rec := range records {
		rows[i] = &model.ProjectRawRecord{
			ProjectRecord: *rec,
			Timestamp:     rec.Timestamp.UnixMicro(),
		}
	}

	if err := x.clients.BigQuery().Insert(ctx, schema, rows, interfaces.WithRetry(schemaUpdated)); err != nil {
		return goerr.Wrap(err, "failed to insert summary to BigQuery", goerr.V("run_id", summary.RunID))
	}

	logging.From(ctx).Info("Exported summary to BigQuery",
		slog.Any("run_id", summary.RunID),
		slog.Int("rows", len(rows)),
	)
	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(&model.ProjectRecord{})
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer project record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
			TimePartitioning: &bigquery.TimePartitioning{
				Type:  bigquery.DayPartitioningType,
				Field: "timestamp",
			},
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
