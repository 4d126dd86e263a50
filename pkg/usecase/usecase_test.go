package usecase_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/m-mizutani/update-template/pkg/infra"
	"github.com/m-mizutani/update-template/pkg/usecase"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

func TestNew(t *testing.T) {
	t.Run("create new usecase with all clients", func(t *testing.T) {
		// Actual behavior is tested in individual method tests
		uc := usecase.New(infra.New())

		_ = uc.UpdateProjects
		_ = uc.ExportSummary
	})
}

type httpMock struct {
	mockDo func(req *http.Request) (*http.Response, error)
}

func (x *httpMock) Do(req *http.Request) (*http.Response, error) {
	return x.mockDo(req)
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// logCapture returns a context whose logger writes text records to the returned buffer.
func logCapture(ctx context.Context) (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logging.With(ctx, logger), &buf
}
