package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:          "Example Coin",
		Symbol:        "EXC",
		MetadataURI:   "https://example.com/meta.json",
		InitialSupply: "1000",
	}
}

func TestDraftValidate(t *testing.T) {
	assert.NoError(t, validDraft().Validate())

	for _, mutate := range []func(*Draft){
		func(d *Draft) { d.Name = "" },
		func(d *Draft) { d.Symbol = "   " },
		func(d *Draft) { d.MetadataURI = "" },
		func(d *Draft) { d.InitialSupply = "" },
	} {
		d := validDraft()
		mutate(&d)
		assert.ErrorIs(t, d.Validate(), ErrMissingFields)
	}
}

func TestTrimmedSymbol(t *testing.T) {
	d := validDraft()

	d.Symbol = "SHORT"
	assert.Equal(t, "SHORT", d.TrimmedSymbol())

	d.Symbol = "EXACTLYTEN"
	assert.Equal(t, "EXACTLYTEN", d.TrimmedSymbol())

	d.Symbol = "WAYTOOLONGSYMBOL"
	got := d.TrimmedSymbol()
	assert.Equal(t, "WAYTOOLONG", got)
	assert.Len(t, got, 10)
}

func TestParseSupply(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"1.5", 1_500_000_000},
		{"0", 0},
		{"1", 1_000_000_000},
		{"0.000000001", 1},
		{"1000000", 1_000_000_000_000_000},
		{"2.25", 2_250_000_000},
		{".5", 500_000_000},
	}
	for _, c := range cases {
		d := Draft{InitialSupply: c.in}
		got, err := d.ParseSupply()
		require.NoError(t, err, "supply %q", c.in)
		assert.Equal(t, c.want, got, "supply %q", c.in)
	}
}

func TestParseSupplyRejectsBadInput(t *testing.T) {
	for _, in := range []string{
		"", "abc", "-1", "+1", "1.2.3", "1,5", "1.", ".",
		"0.0000000001", // 10 fractional digits
		"1e9",
	} {
		d := Draft{InitialSupply: in}
		_, err := d.ParseSupply()
		assert.ErrorIs(t, err, ErrInvalidSupply, "supply %q", in)
	}
}

func TestParseSupplyOverflow(t *testing.T) {
	// 2^64 base units is out of u64 range after the 10^9 scaling.
	d := Draft{InitialSupply: "18446744073.709551616"}
	_, err := d.ParseSupply()
	assert.ErrorIs(t, err, ErrSupplyTooLarge)
}
