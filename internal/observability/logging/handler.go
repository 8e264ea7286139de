package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type HandlerConfig struct {
	Level         slog.Level
	Service       ServiceInfo
	Environment   Environment
	DefaultModule Module
	// GCPProjectID enables Cloud Logging trace fields on gcloud builds.
	GCPProjectID string
}

// ContextHandler enriches records with request-scoped values carried by ctx.
type ContextHandler struct {
	inner         slog.Handler
	defaultModule Module
	projectID     string
}

func NewHandler(w io.Writer, cfg HandlerConfig) *ContextHandler {
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})

	var base slog.Handler = jsonHandler

	if cfg.Service.Name != "" {
		base = base.WithAttrs([]slog.Attr{
			slog.Group("service",
				slog.String("name", cfg.Service.Name),
				slog.String("version", cfg.Service.Version),
				slog.String("revision", cfg.Service.Revision),
			),
			slog.String("env", string(cfg.Environment)),
		})
	}

	return &ContextHandler{
		inner:         base,
		defaultModule: cfg.DefaultModule,
		projectID:     cfg.GCPProjectID,
	}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}

	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)

	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		inner:         h.inner.WithAttrs(attrs),
		defaultModule: h.defaultModule,
		projectID:     h.projectID,
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{
		inner:         h.inner.WithGroup(name),
		defaultModule: h.defaultModule,
		projectID:     h.projectID,
	}
}

// ParseLevel falls back to info for unknown values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
