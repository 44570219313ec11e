//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-voice-assistant/internal/config"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability"
	"github.com/KasumiMercury/primind-voice-assistant/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    cfg.ServiceName,
			Version: Version,
		},
		Environment:   env,
		LogLevel:      cfg.LogLevel,
		SamplingRate:  1.0,
		DefaultModule: moduleName,
	})
}
