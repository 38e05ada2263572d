package controllers

import (
	"net/http"

	"github.com/freemanindumentaria/storefront-backend/api/responses"
	"github.com/freemanindumentaria/storefront-backend/pkg/config"
	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
	"github.com/freemanindumentaria/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Freeman-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the cart store is reachable before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Freeman-Env", cfg.App.Env)

		if redisP == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "cart store not configured"))
			return
		}
		if err := redisP.Ping(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart store unreachable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
