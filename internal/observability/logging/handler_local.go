//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs adds nothing outside GCP; trace_id and span_id already cover
// local collectors.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
