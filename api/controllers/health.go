package controllers

import (
	"context"
	"net/http"

	"github.com/paypointhq/pos-register/api/responses"
	"github.com/paypointhq/pos-register/pkg/config"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/paypointhq/pos-register/pkg/logger"
	"github.com/paypointhq/pos-register/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PayPoint-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// UpstreamPinger reports whether the platform API answers.
type UpstreamPinger interface {
	Ping(ctx context.Context) error
}

func HealthReady(cfg *config.Config, pinger redis.Pinger, platform UpstreamPinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-PayPoint-Env", cfg.App.Env)
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		if platform != nil {
			if err := platform.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "platform api unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
