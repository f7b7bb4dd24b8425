package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	tokendom "launchpad/internal/domain/token"
)

// ============================================================
// Ports
// ============================================================

// Wallet exposes the connected service wallet's identity.
// Signing happens inside ChainSubmitter implementations.
type Wallet interface {
	// Connected reports whether a signing identity is available.
	Connected() bool
	// Owner returns the wallet's base58 public key; ok=false when absent.
	Owner() (addr string, ok bool)
}

// ChainSubmitter performs the three on-chain submissions of the creation
// workflow. Each call builds, signs and sends exactly one transaction and
// returns once the RPC node has accepted it.
type ChainSubmitter interface {
	SubmitMintInit(ctx context.Context, in MintInitInput) (MintInitResult, error)
	SubmitAssociatedAccount(ctx context.Context, in AssociatedAccountInput) (AssociatedAccountResult, error)
	SubmitMintTo(ctx context.Context, in MintToInput) (MintToResult, error)
}

// MintInitInput carries the metadata for the new mint. The mint keypair is
// generated by the submitter, scoped to the one call; only the base58
// address comes back.
type MintInitInput struct {
	Name        string
	Symbol      string // already trimmed to the on-chain limit
	MetadataURI string
}

type MintInitResult struct {
	MintAddress string
	TxSignature string
}

type AssociatedAccountInput struct {
	MintAddress string
}

type AssociatedAccountResult struct {
	AssociatedAccount string
	TxSignature       string
}

type MintToInput struct {
	MintAddress       string
	AssociatedAccount string
	Amount            uint64 // base units (10^9 per token)
}

type MintToResult struct {
	TxSignature string
}

// ============================================================
// Errors
// ============================================================

var (
	ErrTokenUCNotConfigured = errors.New("token_uc: not configured")
	ErrWalletNotConnected   = errors.New("token_uc: wallet not connected")
	ErrSubmissionInFlight   = errors.New("token_uc: a submission is already in flight")
)

// ExternalCallError marks a failure from the wallet or RPC collaborator
// during one of the three steps. Steps after the failing one are never
// attempted; steps before it are NOT rolled back.
type ExternalCallError struct {
	Step string // "mint-init" | "associated-account" | "mint-to"
	Err  error
}

func (e *ExternalCallError) Error() string {
	return fmt.Sprintf("token_uc: %s: %v", e.Step, e.Err)
}

func (e *ExternalCallError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a precondition failure, i.e. no
// external call was made.
func IsValidation(err error) bool {
	return errors.Is(err, ErrWalletNotConnected) ||
		errors.Is(err, tokendom.ErrMissingFields) ||
		errors.Is(err, tokendom.ErrInvalidSupply) ||
		errors.Is(err, tokendom.ErrSupplyTooLarge)
}

// ============================================================
// Usecase
// ============================================================

// TokenUsecase realizes a new fungible token in three sequential
// transactions: mint account + metadata, associated account, supply mint.
// It owns the workflow State; callers read it through StateSnapshot.
type TokenUsecase struct {
	wallet Wallet
	chain  ChainSubmitter
	state  *tokendom.State
	log    zerolog.Logger
	now    func() time.Time
}

func NewTokenUsecase(wallet Wallet, chain ChainSubmitter, log zerolog.Logger) *TokenUsecase {
	return &TokenUsecase{
		wallet: wallet,
		chain:  chain,
		state:  tokendom.NewState(),
		log:    log.With().Str("component", "token_uc").Logger(),
		now:    time.Now,
	}
}

// StateSnapshot returns the current workflow status for rendering.
func (u *TokenUsecase) StateSnapshot() tokendom.Snapshot {
	return u.state.Snapshot()
}

type CreateTokenResult struct {
	MintAddress       string
	AssociatedAccount string
	MintInitSig       string
	AssociatedSig     string
	MintToSig         string
}

// CreateToken runs the full workflow for one draft.
//
// Precondition order matters: wallet connectivity first, then field
// presence, then supply parsing; none of them touches the chain. Partial
// completion (e.g. mint created, supply never minted) is a possible
// terminal state and surfaces only as a Failed status.
func (u *TokenUsecase) CreateToken(ctx context.Context, draft tokendom.Draft) (CreateTokenResult, error) {
	if u == nil || u.wallet == nil || u.chain == nil {
		return CreateTokenResult{}, ErrTokenUCNotConfigured
	}

	// Precondition failures never clear an in-flight Loading phase: that
	// would re-arm Begin() and let a second submission run concurrently.
	owner, ok := u.wallet.Owner()
	if !u.wallet.Connected() || !ok || owner == "" {
		u.state.FailPrecondition("wallet not connected")
		return CreateTokenResult{}, ErrWalletNotConnected
	}
	if err := draft.Validate(); err != nil {
		u.state.FailPrecondition("missing fields")
		return CreateTokenResult{}, err
	}
	amount, err := draft.ParseSupply()
	if err != nil {
		u.state.FailPrecondition(err.Error())
		return CreateTokenResult{}, err
	}

	if !u.state.Begin() {
		return CreateTokenResult{}, ErrSubmissionInFlight
	}

	started := u.now()
	res, err := u.run(ctx, draft, amount)
	elapsed := u.now().Sub(started)
	if err != nil {
		u.state.Fail(err.Error())
		observeCreation("failed", elapsed)
		u.log.Error().Err(err).Dur("elapsed", elapsed).Msg("token creation failed")
		return CreateTokenResult{}, err
	}

	u.state.Succeed(res.MintAddress)
	observeCreation("succeeded", elapsed)
	u.log.Info().
		Str("mint", maskShort(res.MintAddress)).
		Str("ata", maskShort(res.AssociatedAccount)).
		Uint64("amount", amount).
		Dur("elapsed", elapsed).
		Msg("token created")
	return res, nil
}

func (u *TokenUsecase) run(ctx context.Context, draft tokendom.Draft, amount uint64) (CreateTokenResult, error) {
	// 1) mint account + metadata (signed by wallet + fresh mint keypair)
	initRes, err := u.chain.SubmitMintInit(ctx, MintInitInput{
		Name:        draft.Name,
		Symbol:      draft.TrimmedSymbol(),
		MetadataURI: draft.MetadataURI,
	})
	if err != nil {
		return CreateTokenResult{}, &ExternalCallError{Step: "mint-init", Err: err}
	}

	// 2) associated account for (mint, wallet owner), wallet-funded
	ataRes, err := u.chain.SubmitAssociatedAccount(ctx, AssociatedAccountInput{
		MintAddress: initRes.MintAddress,
	})
	if err != nil {
		return CreateTokenResult{}, &ExternalCallError{Step: "associated-account", Err: err}
	}

	// 3) mint the initial supply into the associated account
	mintRes, err := u.chain.SubmitMintTo(ctx, MintToInput{
		MintAddress:       initRes.MintAddress,
		AssociatedAccount: ataRes.AssociatedAccount,
		Amount:            amount,
	})
	if err != nil {
		return CreateTokenResult{}, &ExternalCallError{Step: "mint-to", Err: err}
	}

	return CreateTokenResult{
		MintAddress:       initRes.MintAddress,
		AssociatedAccount: ataRes.AssociatedAccount,
		MintInitSig:       initRes.TxSignature,
		AssociatedSig:     ataRes.TxSignature,
		MintToSig:         mintRes.TxSignature,
	}, nil
}

func maskShort(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[:4] + "***" + s[len(s)-4:]
}
