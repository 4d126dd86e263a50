package bq

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/bigquery/storage/managedwriter"
	"cloud.google.com/go/bigquery/storage/managedwriter/adapt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/interfaces"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
	"github.com/m-mizutani/update-template/pkg/utils/safe"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

const (
	maxInsertAttempts = 5
	retryInterval     = 3 * time.Second
)

// Insert appends rows to the table in a single request. With interfaces.WithRetry it keeps
// retrying while the write stream still reports columns missing after a schema update.
func (x *Client) Insert(ctx context.Context, schema bigquery.Schema, rows []any, opts ...interfaces.BigQueryInsertOption) error {
	var cfg interfaces.BigQueryInsertConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(rows) == 0 {
		return nil
	}

	descriptor, encoded, err := encodeRows(schema, rows)
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err := x.appendRows(ctx, descriptor, encoded)
		if err == nil {
			return nil
		}
		if !cfg.EnableRetry || attempt >= maxInsertAttempts || !IsSchemaNotFoundError(err) {
			return err
		}

		logging.From(ctx).Warn("BigQuery schema is not propagated yet, retrying",
			slog.Int("attempt", attempt),
			slog.Any("table", x.tableID),
		)

		select {
		case <-ctx.Done():
			return goerr.Wrap(ctx.Err(), "insert canceled while waiting for retry")
		case <-time.After(retryInterval * time.Duration(attempt)):
		}
	}
}

func encodeRows(schema bigquery.Schema, rows []any) (*descriptorpb.DescriptorProto, [][]byte, error) {
	convertedSchema, err := adapt.BQSchemaToStorageTableSchema(schema)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema")
	}

	descriptor, err := adapt.StorageSchemaToProto2Descriptor(convertedSchema, "root")
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to convert schema to descriptor")
	}
	messageDescriptor, ok := descriptor.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, nil, goerr.New("adapted descriptor is not a message descriptor")
	}
	descriptorProto, err := adapt.NormalizeDescriptor(messageDescriptor)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to normalize descriptor")
	}

	encoded := make([][]byte, 0, len(rows))
	for _, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to Marshal json message", goerr.V("v", row))
		}
		sanitizedRaw, err := sanitizeProtoJSON(raw)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to sanitize json message", goerr.V("raw", string(raw)))
		}

		message := dynamicpb.NewMessage(messageDescriptor)
		if err := protojson.Unmarshal(sanitizedRaw, message); err != nil {
			return nil, nil, goerr.Wrap(err, "failed to Unmarshal json message", goerr.V("raw", string(raw)))
		}
		b, err := proto.Marshal(message)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to Marshal proto message")
		}
		encoded = append(encoded, b)
	}

	return descriptorProto, encoded, nil
}

func (x *Client) appendRows(ctx context.Context, descriptor *descriptorpb.DescriptorProto, rows [][]byte) error {
	ms, err := x.mwClient.NewManagedStream(ctx,
		managedwriter.WithDestinationTable(
			managedwriter.TableParentFromParts(
				x.project.String(),
				x.dataset.String(),
				x.tableID.String(),
			),
		),
		managedwriter.WithSchemaDescriptor(descriptor),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create managed stream")
	}
	defer safe.Close(ms)

	arResult, err := ms.AppendRows(ctx, rows)
	if err != nil {
		return goerr.Wrap(err, "failed to append rows", goerr.V("count", len(rows)))
	}

	if _, err := arResult.FullResponse(ctx); err != nil {
		return goerr.Wrap(err, "failed to get append result", goerr.V("count", len(rows)))
	}

	return nil
}

// IsSchemaNotFoundError reports whether err is the Storage Write API rejecting columns that the
// table schema does not have (yet).
func IsSchemaNotFoundError(err error) bool {
	var grpcErr interface{ GRPCStatus() *status.Status }
	if !errors.As(err, &grpcErr) {
		return false
	}

	st := grpcErr.GRPCStatus()
	return st.Code() == codes.InvalidArgument &&
		strings.Contains(st.Message(), "Input schema has more fields than BigQuery schema")
}

func sanitizeProtoJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}

	return json.Marshal(sanitizeProtoJSONValue(data))
}

func sanitizeProtoJSONValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for key, value := range val {
			res[protoFieldJSONName(key)] = sanitizeProtoJSONValue(value)
		}
		return res
	case []any:
		for i := range val {
			val[i] = sanitizeProtoJSONValue(val[i])
		}
		return val
	default:
		return v
	}
}

// protoFieldJSONName maps a key that is not a valid proto field name to a stable column name.
func protoFieldJSONName(name string) string {
	if protoreflect.Name(name).IsValid() {
		return name
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(name))
	encoded = strings.NewReplacer("+", "_", "/", "_", "=", "").Replace(encoded)
	return "col_" + encoded
}
