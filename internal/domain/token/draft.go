package token

import (
	"errors"
	"math/big"
	"strings"
)

// Domain errors
var (
	ErrMissingFields  = errors.New("token: missing fields")
	ErrInvalidSupply  = errors.New("token: invalid initialSupply")
	ErrSupplyTooLarge = errors.New("token: initialSupply exceeds u64 range")
)

// Policy
const (
	// SPL metadata keeps symbols short; anything longer is cut, not rejected.
	MaxSymbolLen = 10

	// Decimals is fixed for every mint the service creates.
	Decimals = 9
)

// Draft holds the user-entered fields of a token about to be created.
// Fields are written as-is by the presentation layer; nothing is normalized
// until the workflow reads them. The workflow never mutates a Draft.
type Draft struct {
	Name          string
	Symbol        string
	MetadataURI   string
	InitialSupply string // decimal string, e.g. "1.5"
}

// Validate checks that all four fields are present.
// Field-level format checks are deferred to ParseSupply / the chain itself.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" ||
		strings.TrimSpace(d.Symbol) == "" ||
		strings.TrimSpace(d.MetadataURI) == "" ||
		strings.TrimSpace(d.InitialSupply) == "" {
		return ErrMissingFields
	}
	return nil
}

// TrimmedSymbol returns the symbol cut to at most MaxSymbolLen characters.
func (d Draft) TrimmedSymbol() string {
	r := []rune(d.Symbol)
	if len(r) > MaxSymbolLen {
		r = r[:MaxSymbolLen]
	}
	return string(r)
}

// ParseSupply converts the decimal InitialSupply string into base units
// scaled by 10^Decimals: "1.5" -> 1_500_000_000, "0" -> 0.
// More than Decimals fractional digits, signs, or non-digit input is rejected.
func (d Draft) ParseSupply() (uint64, error) {
	s := strings.TrimSpace(d.InitialSupply)
	if s == "" {
		return 0, ErrInvalidSupply
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if hasDot && fracPart == "" {
		return 0, ErrInvalidSupply
	}
	if intPart == "" {
		if !hasDot {
			return 0, ErrInvalidSupply
		}
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return 0, ErrInvalidSupply
	}
	if len(fracPart) > Decimals {
		return 0, ErrInvalidSupply
	}

	// Right-pad the fraction to exactly Decimals digits, then read the whole
	// thing as one integer. big.Int keeps "supply * 10^9" overflow-safe until
	// the final u64 check.
	padded := fracPart + strings.Repeat("0", Decimals-len(fracPart))
	n, ok := new(big.Int).SetString(intPart+padded, 10)
	if !ok {
		return 0, ErrInvalidSupply
	}
	if !n.IsUint64() {
		return 0, ErrSupplyTooLarge
	}
	return n.Uint64(), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
