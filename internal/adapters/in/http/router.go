// Package httpin wires the inbound HTTP surface: form page, token API,
// health and metrics.
package httpin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchpad/internal/adapters/in/http/handlers"
	"launchpad/internal/adapters/in/http/middleware"
)

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	TokenSvc handlers.TokenService
	Wallet   handlers.WalletInfo
}

func NewRouter(deps RouterDeps) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	if deps.TokenSvc != nil {
		th := handlers.NewTokenHandler(deps.TokenSvc)
		r.Post("/tokens", th.Create)
		r.Get("/tokens/state", th.State)

		if deps.Wallet != nil {
			fh, err := handlers.NewFormHandler(deps.TokenSvc, deps.Wallet)
			if err != nil {
				return nil, err
			}
			r.Get("/", fh.Index)
		}
	}

	return r, nil
}
