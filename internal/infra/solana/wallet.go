package solana

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretspb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWalletKeyMissing  = errors.New("service_wallet: no key source configured")
	ErrWalletKeyNotFound = errors.New("service_wallet: key secret not found")
)

// ServiceWallet is the signing identity that funds and authorizes every
// transaction of the creation workflow. It plays the wallet collaborator
// role: connected status, public identity, sign-and-send with optional
// auxiliary signers.
type ServiceWallet struct {
	account types.Account
	loaded  bool
}

func NewServiceWallet(acc types.Account) *ServiceWallet {
	return &ServiceWallet{account: acc, loaded: true}
}

// Connected reports whether a signing key was loaded.
func (w *ServiceWallet) Connected() bool {
	return w != nil && w.loaded
}

// Owner returns the wallet's base58 public key.
func (w *ServiceWallet) Owner() (string, bool) {
	if !w.Connected() {
		return "", false
	}
	return w.account.PublicKey.ToBase58(), true
}

// PublicKey returns the raw public key for instruction building.
func (w *ServiceWallet) PublicKey() common.PublicKey {
	return w.account.PublicKey
}

// SignAndSend builds one transaction from the given instructions with the
// wallet as fee payer, partially signed by any extra keypairs (e.g. a new
// mint account), and submits it. One best-effort attempt, no retry.
func (w *ServiceWallet) SignAndSend(ctx context.Context, c *Client, ins []types.Instruction, extraSigners ...types.Account) (string, error) {
	if !w.Connected() {
		return "", ErrWalletKeyMissing
	}

	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return "", err
	}

	signers := append([]types.Account{w.account}, extraSigners...)
	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: signers,
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        w.account.PublicKey,
			RecentBlockhash: blockhash,
			Instructions:    ins,
		}),
	})
	if err != nil {
		return "", fmt.Errorf("service_wallet: NewTransaction: %w", err)
	}

	return c.SendTransaction(ctx, tx)
}

// LoadServiceWallet resolves the wallet keypair from the first configured
// source, in order:
//  1. SOLANA_WALLET_KEY env var (solana-keygen keypair JSON, [u8;64])
//  2. keyFile path (same JSON on disk)
//  3. keySecret, a Secret Manager version path like
//     "projects/<PROJECT>/secrets/<SECRET>/versions/latest"
func LoadServiceWallet(ctx context.Context, keyFile, keySecret string, log zerolog.Logger) (*ServiceWallet, error) {
	log = log.With().Str("component", "service_wallet").Logger()

	if raw := strings.TrimSpace(os.Getenv("SOLANA_WALLET_KEY")); raw != "" {
		acc, err := AccountFromKeypairJSON([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("service_wallet: SOLANA_WALLET_KEY: %w", err)
		}
		log.Info().Str("source", "env").Str("pubkey", acc.PublicKey.ToBase58()).Msg("wallet key loaded")
		return NewServiceWallet(acc), nil
	}

	if f := strings.TrimSpace(keyFile); f != "" {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("service_wallet: read key file: %w", err)
		}
		acc, err := AccountFromKeypairJSON(data)
		if err != nil {
			return nil, fmt.Errorf("service_wallet: key file %s: %w", f, err)
		}
		log.Info().Str("source", "file").Str("pubkey", acc.PublicKey.ToBase58()).Msg("wallet key loaded")
		return NewServiceWallet(acc), nil
	}

	if s := strings.TrimSpace(keySecret); s != "" {
		acc, err := loadWalletFromSecret(ctx, s)
		if err != nil {
			return nil, err
		}
		log.Info().Str("source", "secretmanager").Str("pubkey", acc.PublicKey.ToBase58()).Msg("wallet key loaded")
		return NewServiceWallet(acc), nil
	}

	return nil, ErrWalletKeyMissing
}

func loadWalletFromSecret(ctx context.Context, secretName string) (types.Account, error) {
	cl, err := secretmanager.NewClient(ctx)
	if err != nil {
		return types.Account{}, fmt.Errorf("service_wallet: secretmanager.NewClient: %w", err)
	}
	defer cl.Close()

	resp, err := cl.AccessSecretVersion(ctx, &secretspb.AccessSecretVersionRequest{
		Name: secretName,
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Account{}, fmt.Errorf("%w: %s", ErrWalletKeyNotFound, secretName)
		}
		return types.Account{}, fmt.Errorf("service_wallet: AccessSecretVersion: %w", err)
	}

	acc, err := AccountFromKeypairJSON(resp.Payload.Data)
	if err != nil {
		return types.Account{}, fmt.Errorf("service_wallet: secret %s: %w", secretName, err)
	}
	return acc, nil
}
