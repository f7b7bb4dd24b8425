package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	httpin "launchpad/internal/adapters/in/http"
	"launchpad/internal/platform/di"
)

func main() {
	ctx := context.Background()
	bootLog := zerolog.New(os.Stdout).With().Timestamp().Str("component", "boot").Logger()

	cont, err := di.NewContainer(ctx)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("container init failed")
	}
	defer cont.Close()

	router, err := httpin.NewRouter(cont.RouterDeps())
	if err != nil {
		bootLog.Fatal().Err(err).Msg("router init failed")
	}

	srv := &http.Server{
		Addr:         ":" + cont.Config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // three sequential RPC round-trips per submission
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown for Cloud Run style SIGTERM
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c
		cont.Log.Info().Str("signal", sig.String()).Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			cont.Log.Error().Err(err).Msg("server shutdown error")
		}
		close(idleConnsClosed)
	}()

	cont.Log.Info().Str("port", cont.Config.Port).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		cont.Log.Fatal().Err(err).Msg("server error")
	}
	<-idleConnsClosed
}
