package solana

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"
	cache "github.com/patrickmn/go-cache"
)

var ErrClientNotConfigured = errors.New("solana_client: not configured")

// Rent for a fixed account size only moves with cluster config changes,
// so a short memoization window saves one RPC round-trip per submission.
const (
	rentCacheTTL     = 10 * time.Minute
	rentCacheCleanup = 30 * time.Minute
)

// Client wraps the chain RPC collaborator: rent-exemption lookup, recent
// blockhash, transaction submission.
type Client struct {
	RPC *client.Client

	Commitment string        // e.g. "finalized"
	Timeout    time.Duration // RPC timeout hint (best-effort)

	rentCache *cache.Cache
}

// NewClient constructs the RPC wrapper.
// The URL resolves from SOLANA_RPC_URL when rpcURL is empty, falling back
// to the public devnet endpoint.
func NewClient(rpcURL string) *Client {
	u := strings.TrimSpace(rpcURL)
	if u == "" {
		u = strings.TrimSpace(os.Getenv("SOLANA_RPC_URL"))
	}
	if u == "" {
		u = rpc.DevnetRPCEndpoint
	}
	return &Client{
		RPC:        client.NewClient(u),
		Commitment: "finalized",
		Timeout:    20 * time.Second,
		rentCache:  cache.New(rentCacheTTL, rentCacheCleanup),
	}
}

// MinimumBalanceForRentExemption returns the lamports needed to keep an
// account of the given size alive, memoized per size.
func (c *Client) MinimumBalanceForRentExemption(ctx context.Context, size uint64) (uint64, error) {
	if c == nil || c.RPC == nil {
		return 0, ErrClientNotConfigured
	}

	key := strconv.FormatUint(size, 10)
	if v, ok := c.rentCache.Get(key); ok {
		if lamports, ok := v.(uint64); ok {
			return lamports, nil
		}
	}

	lamports, err := c.RPC.GetMinimumBalanceForRentExemption(ctx, size)
	if err != nil {
		return 0, fmt.Errorf("solana_client: GetMinimumBalanceForRentExemption: %w", err)
	}
	c.rentCache.Set(key, lamports, cache.DefaultExpiration)
	return lamports, nil
}

// LatestBlockhash fetches a recent blockhash for a new transaction.
// Never cached: a stale blockhash gets the transaction rejected.
func (c *Client) LatestBlockhash(ctx context.Context) (string, error) {
	if c == nil || c.RPC == nil {
		return "", ErrClientNotConfigured
	}
	latest, err := c.RPC.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("solana_client: GetLatestBlockhash: %w", err)
	}
	return latest.Blockhash, nil
}

// SendTransaction submits a fully signed transaction, one best-effort attempt.
func (c *Client) SendTransaction(ctx context.Context, tx types.Transaction) (string, error) {
	if c == nil || c.RPC == nil {
		return "", ErrClientNotConfigured
	}
	sig, err := c.RPC.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("solana_client: SendTransaction: %w", err)
	}
	return sig, nil
}
