// Package di assembles the service: config, logger, chain client, wallet,
// workflow and router deps. It exists to keep main() thin.
package di

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	httpin "launchpad/internal/adapters/in/http"
	usecase "launchpad/internal/application/usecase"
	"launchpad/internal/infra/config"
	"launchpad/internal/infra/solana"
)

// Container is the bundle of dependencies main.go consumes.
type Container struct {
	Config *config.Config
	Log    zerolog.Logger

	Chain   *solana.Client
	Wallet  *solana.ServiceWallet
	TokenUC *usecase.TokenUsecase
}

// NewContainer loads configuration and wires every layer together.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("di: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)

	chain := solana.NewClient(cfg.RPCURL)
	if cfg.Commitment != "" {
		chain.Commitment = cfg.Commitment
	}

	wallet, err := solana.LoadServiceWallet(ctx, cfg.WalletKeyFile, cfg.WalletKeySecret, log)
	if err != nil {
		return nil, fmt.Errorf("di: load wallet: %w", err)
	}

	creator := solana.NewTokenCreatorSolana(chain, wallet, log)
	tokenUC := usecase.NewTokenUsecase(wallet, creator, log)

	return &Container{
		Config:  cfg,
		Log:     log,
		Chain:   chain,
		Wallet:  wallet,
		TokenUC: tokenUC,
	}, nil
}

// RouterDeps exposes the handlers' dependencies.
func (c *Container) RouterDeps() httpin.RouterDeps {
	return httpin.RouterDeps{
		TokenSvc: c.TokenUC,
		Wallet:   c.Wallet,
	}
}

// Close releases held resources. The RPC client is plain HTTP and needs no
// teardown today; the hook stays for symmetry with main's defer.
func (c *Container) Close() {}
