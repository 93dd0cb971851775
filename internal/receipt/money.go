package receipt

import (
	"cmp"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	dErrors "github.com/kvverti/serve-ex/pkg/domain-errors"
)

// priceRE matches the wire form of an amount: one or more dollar digits and
// exactly two cent digits.
var priceRE = regexp.MustCompile(`^(\d+)\.(\d{2})$`)

// Price is an exact decimal amount. Receipts carry money as strings to avoid
// floating point representation error, so the type never holds a float.
type Price struct {
	Dollars uint64
	Cents   uint8
}

// ParsePrice decodes the "D.CC" wire form. The cents part is always exactly
// two digits; the dollars part has no leading-zero restriction but must fit
// in 64 bits.
func ParsePrice(s string) (Price, error) {
	m := priceRE.FindStringSubmatch(s)
	if m == nil {
		return Price{}, dErrors.New(dErrors.CodeInvalidInput, "price must be a numeric string with two digits after the decimal")
	}
	dollars, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Price{}, dErrors.Wrap(dErrors.CodeInvalidInput, "dollar amount out of range", err)
	}
	// cents is exactly two digits, so this cannot fail
	cents, _ := strconv.ParseUint(m[2], 10, 8)
	return Price{Dollars: dollars, Cents: uint8(cents)}, nil
}

// String renders the wire form, the inverse of ParsePrice for all valid values.
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.Dollars, p.Cents)
}

// Float64 returns the amount as a dollar quantity. Only the scoring engine
// should use this; the conversion is lossy for very large amounts.
func (p Price) Float64() float64 {
	return float64(p.Dollars) + float64(p.Cents)/100
}

// Compare orders prices lexicographically on (dollars, cents).
func (p Price) Compare(other Price) int {
	if c := cmp.Compare(p.Dollars, other.Dollars); c != 0 {
		return c
	}
	return cmp.Compare(p.Cents, other.Cents)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return dErrors.Wrap(dErrors.CodeInvalidInput, "price must be a string", err)
	}
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
