package solana

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
)

// DecodeKeypairJSON restores the 64-byte secret key from a keypair JSON.
// encoding/json only fills []byte from a base64 string, so the first branch
// serves base64-encoded payloads; the solana-keygen number array ("[12,34,...]")
// always takes the int-array path.
func DecodeKeypairJSON(data []byte) ([]byte, error) {
	var keyBytes []byte
	if err := json.Unmarshal(data, &keyBytes); err == nil {
		if len(keyBytes) == ed25519.PrivateKeySize {
			return keyBytes, nil
		}
		// unexpected length falls through to the int-array path
	}

	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return nil, fmt.Errorf("unmarshal keypair json: %w", err)
	}
	if len(ints) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("unexpected secret key length: got %d, want %d", len(ints), ed25519.PrivateKeySize)
	}

	keyBytes = make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("keypair json byte out of range at %d: %d", i, v)
		}
		keyBytes[i] = byte(v)
	}
	return keyBytes, nil
}

// AccountFromKeypairJSON decodes keypair JSON into a signing account.
func AccountFromKeypairJSON(data []byte) (types.Account, error) {
	keyBytes, err := DecodeKeypairJSON(data)
	if err != nil {
		return types.Account{}, err
	}
	acc, err := types.AccountFromBytes(keyBytes)
	if err != nil {
		return types.Account{}, fmt.Errorf("AccountFromBytes: %w", err)
	}
	return acc, nil
}
