package solana

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/rs/zerolog"

	usecase "launchpad/internal/application/usecase"
	tokendom "launchpad/internal/domain/token"
)

var (
	ErrCreatorNotConfigured = errors.New("token_creator: not configured")
	ErrCreatorMintInvalid   = errors.New("token_creator: invalid mintAddress")
	ErrCreatorAtaInvalid    = errors.New("token_creator: invalid associated account")
)

// TokenCreatorSolana implements usecase.ChainSubmitter with the SPL token
// program builders: one transaction per workflow step.
type TokenCreatorSolana struct {
	client *Client
	wallet *ServiceWallet
	log    zerolog.Logger
}

func NewTokenCreatorSolana(client *Client, wallet *ServiceWallet, log zerolog.Logger) *TokenCreatorSolana {
	return &TokenCreatorSolana{
		client: client,
		wallet: wallet,
		log:    log.With().Str("component", "token_creator").Logger(),
	}
}

// SubmitMintInit creates and initializes the mint in a single transaction:
//   - system.CreateAccount for a freshly generated keypair (rent-exempt)
//   - token.InitializeMint (fixed 9 decimals, no freeze authority)
//   - metadata account with name / trimmed symbol / URI, no creators
//
// Signed by the service wallet (fee payer) and the new mint keypair. The
// keypair never leaves this call; only its base58 address is returned.
func (c *TokenCreatorSolana) SubmitMintInit(ctx context.Context, in usecase.MintInitInput) (usecase.MintInitResult, error) {
	if c == nil || c.client == nil || c.wallet == nil {
		return usecase.MintInitResult{}, ErrCreatorNotConfigured
	}

	mint := types.NewAccount()
	payer := c.wallet.PublicKey()

	rent, err := c.client.MinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return usecase.MintInitResult{}, err
	}

	metadataPubkey, err := token_metadata.GetTokenMetaPubkey(mint.PublicKey)
	if err != nil {
		return usecase.MintInitResult{}, fmt.Errorf("token_creator: GetTokenMetaPubkey: %w", err)
	}

	ins := []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     payer,
			New:      mint.PublicKey,
			Owner:    common.TokenProgramID,
			Lamports: rent,
			Space:    token.MintAccountSize,
		}),
		token.InitializeMint(token.InitializeMintParam{
			Decimals: tokendom.Decimals,
			Mint:     mint.PublicKey,
			MintAuth: payer,
			// no freeze authority
		}),
		token_metadata.CreateMetadataAccountV3(token_metadata.CreateMetadataAccountV3Param{
			Metadata:                metadataPubkey,
			Mint:                    mint.PublicKey,
			MintAuthority:           payer,
			UpdateAuthority:         payer,
			Payer:                   payer,
			UpdateAuthorityIsSigner: true,
			IsMutable:               true,
			Data: token_metadata.DataV2{
				Name:                 in.Name,
				Symbol:               in.Symbol,
				Uri:                  in.MetadataURI,
				SellerFeeBasisPoints: 0,
			},
			CollectionDetails: nil,
		}),
	}

	sig, err := c.wallet.SignAndSend(ctx, c.client, ins, mint)
	if err != nil {
		return usecase.MintInitResult{}, err
	}

	c.log.Info().
		Str("mint", maskShort(mint.PublicKey.ToBase58())).
		Str("tx", maskShort(sig)).
		Msg("mint initialized")

	return usecase.MintInitResult{
		MintAddress: mint.PublicKey.ToBase58(),
		TxSignature: sig,
	}, nil
}

// SubmitAssociatedAccount creates the wallet owner's associated token
// account for the new mint, funded and signed by the wallet only.
func (c *TokenCreatorSolana) SubmitAssociatedAccount(ctx context.Context, in usecase.AssociatedAccountInput) (usecase.AssociatedAccountResult, error) {
	if c == nil || c.client == nil || c.wallet == nil {
		return usecase.AssociatedAccountResult{}, ErrCreatorNotConfigured
	}
	mintAddr := strings.TrimSpace(in.MintAddress)
	if !tokendom.IsValidAddress(mintAddr) {
		return usecase.AssociatedAccountResult{}, ErrCreatorMintInvalid
	}

	owner := c.wallet.PublicKey()
	mint := common.PublicKeyFromString(mintAddr)

	ata, _, err := common.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return usecase.AssociatedAccountResult{}, fmt.Errorf("token_creator: FindAssociatedTokenAddress: %w", err)
	}

	ins := []types.Instruction{
		associated_token_account.CreateAssociatedTokenAccount(
			associated_token_account.CreateAssociatedTokenAccountParam{
				Funder:                 owner,
				Owner:                  owner,
				Mint:                   mint,
				AssociatedTokenAccount: ata,
			},
		),
	}

	sig, err := c.wallet.SignAndSend(ctx, c.client, ins)
	if err != nil {
		return usecase.AssociatedAccountResult{}, err
	}

	c.log.Info().
		Str("mint", maskShort(mintAddr)).
		Str("ata", maskShort(ata.ToBase58())).
		Str("tx", maskShort(sig)).
		Msg("associated account created")

	return usecase.AssociatedAccountResult{
		AssociatedAccount: ata.ToBase58(),
		TxSignature:       sig,
	}, nil
}

// SubmitMintTo mints the initial supply (base units) into the associated
// account, authorized by the wallet.
func (c *TokenCreatorSolana) SubmitMintTo(ctx context.Context, in usecase.MintToInput) (usecase.MintToResult, error) {
	if c == nil || c.client == nil || c.wallet == nil {
		return usecase.MintToResult{}, ErrCreatorNotConfigured
	}
	mintAddr := strings.TrimSpace(in.MintAddress)
	if !tokendom.IsValidAddress(mintAddr) {
		return usecase.MintToResult{}, ErrCreatorMintInvalid
	}
	ataAddr := strings.TrimSpace(in.AssociatedAccount)
	if !tokendom.IsValidAddress(ataAddr) {
		return usecase.MintToResult{}, ErrCreatorAtaInvalid
	}

	ins := []types.Instruction{
		token.MintTo(token.MintToParam{
			Mint:   common.PublicKeyFromString(mintAddr),
			To:     common.PublicKeyFromString(ataAddr),
			Auth:   c.wallet.PublicKey(),
			Amount: in.Amount,
		}),
	}

	sig, err := c.wallet.SignAndSend(ctx, c.client, ins)
	if err != nil {
		return usecase.MintToResult{}, err
	}

	c.log.Info().
		Str("mint", maskShort(mintAddr)).
		Uint64("amount", in.Amount).
		Str("tx", maskShort(sig)).
		Msg("supply minted")

	return usecase.MintToResult{TxSignature: sig}, nil
}

func maskShort(s string) string {
	t := strings.TrimSpace(s)
	if len(t) <= 10 {
		return t
	}
	return t[:4] + "***" + t[len(t)-4:]
}
