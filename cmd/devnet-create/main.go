// devnet-create runs one token creation workflow from the command line,
// using the same container as the API server. Handy for devnet smoke runs:
//
//	SOLANA_WALLET_KEY_FILE=wallet.json go run ./cmd/devnet-create \
//	    -name "Example Coin" -symbol EXC \
//	    -uri https://example.com/meta.json -supply 1000
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tokendom "launchpad/internal/domain/token"
	"launchpad/internal/platform/di"
)

func main() {
	var (
		name   = flag.String("name", "", "token name")
		symbol = flag.String("symbol", "", "token symbol (max 10 chars)")
		uri    = flag.String("uri", "", "metadata URI")
		supply = flag.String("supply", "", "initial supply, decimal (e.g. 1.5)")
	)
	flag.Parse()

	ctx := context.Background()
	cont, err := di.NewContainer(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "container init failed: %v\n", err)
		os.Exit(1)
	}
	defer cont.Close()

	res, err := cont.TokenUC.CreateToken(ctx, tokendom.Draft{
		Name:          *name,
		Symbol:        *symbol,
		MetadataURI:   *uri,
		InitialSupply: *supply,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "token creation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("mint:        %s\n", res.MintAddress)
	fmt.Printf("ata:         %s\n", res.AssociatedAccount)
	fmt.Printf("tx mintInit: %s\n", res.MintInitSig)
	fmt.Printf("tx ata:      %s\n", res.AssociatedSig)
	fmt.Printf("tx mintTo:   %s\n", res.MintToSig)
}
