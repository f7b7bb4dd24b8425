package token

import (
	"errors"
	"strings"
)

var ErrInvalidAddress = errors.New("token: invalid base58 address")

// Solana pubkey is 32 bytes base58-encoded; observed length typically 32..44.
const (
	base58MinLen   = 32
	base58MaxLen   = 44
	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// IsValidAddress reports whether s looks like a Solana pubkey
// (approximate: charset + length, no checksum).
func IsValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < base58MinLen || len(s) > base58MaxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(base58Alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
