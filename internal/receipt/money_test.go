package receipt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/kvverti/serve-ex/pkg/domain-errors"
)

func TestParsePrice(t *testing.T) {
	t.Run("accepts valid amounts", func(t *testing.T) {
		tests := []struct {
			in      string
			dollars uint64
			cents   uint8
		}{
			{"0.50", 0, 50},
			{"3.00", 3, 0},
			{"10.07", 10, 7},
			{"999.99", 999, 99},
			{"01.00", 1, 0}, // leading zeros carry no meaning but are legal
			{"18446744073709551615.99", 1<<64 - 1, 99},
		}
		for _, tt := range tests {
			p, err := ParsePrice(tt.in)
			require.NoError(t, err, "input %q", tt.in)
			assert.Equal(t, Price{Dollars: tt.dollars, Cents: tt.cents}, p, "input %q", tt.in)
		}
	})

	t.Run("rejects malformed amounts", func(t *testing.T) {
		for _, in := range []string{
			"",
			"1",
			"1.",
			".50",
			"1.5",
			"1.555",
			"-1.00",
			"1.00.00",
			"1,00",
			"abc",
			"1.2a",
			" 1.00",
		} {
			_, err := ParsePrice(in)
			require.Error(t, err, "input %q", in)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput), "input %q", in)
		}
	})

	t.Run("rejects dollar overflow", func(t *testing.T) {
		_, err := ParsePrice("18446744073709551616.00")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestPriceRoundTrip(t *testing.T) {
	for _, in := range []string{"0.00", "0.09", "3.00", "12.25", "999.99"} {
		p, err := ParsePrice(in)
		require.NoError(t, err)
		assert.Equal(t, in, p.String())

		again, err := ParsePrice(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, again)
	}
}

func TestPriceCompare(t *testing.T) {
	assert.Equal(t, 0, Price{Dollars: 2, Cents: 50}.Compare(Price{Dollars: 2, Cents: 50}))
	assert.Equal(t, -1, Price{Dollars: 2, Cents: 50}.Compare(Price{Dollars: 3, Cents: 0}))
	assert.Equal(t, 1, Price{Dollars: 2, Cents: 50}.Compare(Price{Dollars: 2, Cents: 49}))
	// dollars dominate cents
	assert.Equal(t, -1, Price{Dollars: 1, Cents: 99}.Compare(Price{Dollars: 2, Cents: 0}))
}

func TestPriceJSON(t *testing.T) {
	t.Run("marshals as the wire string", func(t *testing.T) {
		out, err := json.Marshal(Price{Dollars: 1, Cents: 25})
		require.NoError(t, err)
		assert.Equal(t, `"1.25"`, string(out))
	})

	t.Run("unmarshals from the wire string", func(t *testing.T) {
		var p Price
		require.NoError(t, json.Unmarshal([]byte(`"12.25"`), &p))
		assert.Equal(t, Price{Dollars: 12, Cents: 25}, p)
	})

	t.Run("rejects JSON numbers", func(t *testing.T) {
		var p Price
		err := json.Unmarshal([]byte(`12.25`), &p)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
