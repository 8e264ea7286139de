//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-medication-helper/internal/config"
	"github.com/KasumiMercury/primind-medication-helper/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability"
	"github.com/KasumiMercury/primind-medication-helper/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewGCloudPublisher(ctx, pubsub.GCloudPublisherConfig{
		ProjectID: cfg.PubSub.GCloudProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub publisher initialized",
		"project_id", cfg.PubSub.GCloudProjectID,
	)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	name := os.Getenv("K_SERVICE")
	if name == "" {
		name = serviceName
	}

	env := logging.EnvProd
	if e := cfg.Observability.Environment; e != "" && e != string(logging.EnvLocal) {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = cfg.PubSub.GCloudProjectID
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     name,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:    env,
		LogLevel:       logging.ParseLevel(cfg.Log.Level),
		LogOutput:      os.Stdout,
		DefaultModule:  "app",
		GCPProjectID:   projectID,
		SamplingRate:   1.0,
		MetricsEnabled: cfg.Observability.MetricsEnabled,
	})
}
