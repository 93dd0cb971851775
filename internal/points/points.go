// Package points computes the loyalty score for a stored receipt. This is
// pure domain logic - no I/O, no side effects, no shared state.
package points

import (
	"math"
	"strings"
	"unicode"

	"github.com/kvverti/serve-ex/internal/receipt"
)

const (
	afternoonStart = 14 * 60 // 14:00, exclusive
	afternoonEnd   = 16 * 60 // 16:00, exclusive
)

// Calculate awards points for the receipt, as follows:
//   - 1 pt for each letter or digit in the retailer name
//   - 50 pt if the total has .00 cents
//   - 25 pt if the total's cents are a multiple of 25
//   - 5 pt for every two items (e.g. 10 items = 25 pt, 3 items = 5 pt)
//   - if the trimmed length of an item description is a multiple of 3, add
//     ceil(price x 0.2) points for that item
//   - 6 pt if the day of the purchase date is odd
//   - 10 pt if the purchase time is between 14:00 and 16:00 (exclusive)
//
// Each rule contributes independently. Callers must only score receipts that
// passed acceptability; behavior on unvalidated data is undefined.
func Calculate(rec receipt.Receipt) uint64 {
	// Overflow is unreachable with realistic receipts, but the sum saturates
	// rather than wrapping just in case.
	var total saturatingTotal

	total.add(retailerDensity(rec.Retailer))

	if rec.Total.Cents == 0 {
		total.add(50)
	}
	if rec.Total.Cents%25 == 0 {
		total.add(25)
	}

	total.add(5 * uint64(len(rec.Items)/2))

	for _, item := range rec.Items {
		total.add(descriptionBonus(item))
	}

	if rec.PurchaseDate.Day()%2 != 0 {
		total.add(6)
	}

	minute := rec.PurchaseTime.MinuteOfDay()
	if minute > afternoonStart && minute < afternoonEnd {
		total.add(10)
	}

	return uint64(total)
}

// retailerDensity counts the Unicode letters and digits in the retailer name.
func retailerDensity(retailer string) uint64 {
	var n uint64
	for _, r := range retailer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// descriptionBonus awards ceil(price x 0.2) when the trimmed description's
// byte length is a multiple of 3. The price goes through float64 exactly once
// so the rounding matches plain IEEE arithmetic.
func descriptionBonus(item receipt.Item) uint64 {
	if len(strings.TrimSpace(item.ShortDescription))%3 != 0 {
		return 0
	}
	return uint64(math.Ceil(item.Price.Float64() * 0.2))
}

type saturatingTotal uint64

func (t *saturatingTotal) add(n uint64) {
	if uint64(*t) > math.MaxUint64-n {
		*t = math.MaxUint64
		return
	}
	*t += saturatingTotal(n)
}
