package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

// HandleError reports err to Sentry (if configured) and logs it. The run ID of ctx is attached
// to the Sentry event so that all failures of one run can be correlated. Logs get it from the
// logger bound by logging.StartRun.
func HandleError(ctx context.Context, msg string, err error) {
	runID, _ := logging.CtxRunID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", runID.String())
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
