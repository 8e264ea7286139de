//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

func gcpTraceAttrs(context.Context, string) []slog.Attr {
	return nil
}
