package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	// token program id, a well-known 44-char pubkey
	assert.True(t, IsValidAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	// system program id (32 chars of '1')
	assert.True(t, IsValidAddress("11111111111111111111111111111111"))
	assert.True(t, IsValidAddress("  TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA "))

	assert.False(t, IsValidAddress(""))
	assert.False(t, IsValidAddress("tooshort"))
	assert.False(t, IsValidAddress("0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl")) // excluded chars
	assert.False(t, IsValidAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DAextrachars"))
}
