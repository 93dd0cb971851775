package receipt

import "regexp"

// Acceptability is semantic validity, checked after wire decoding succeeds.
// Word characters are Unicode letters, digits, and underscore; the retailer
// class additionally admits ampersand.
var (
	retailerRE    = regexp.MustCompile(`^[\p{L}\p{N}_\s&-]+$`)
	descriptionRE = regexp.MustCompile(`^[\p{L}\p{N}_\s-]+$`)
)

// Acceptable reports whether the item's short description contains only word
// characters, whitespace, and hyphens. Empty descriptions are rejected.
func (i Item) Acceptable() bool {
	return descriptionRE.MatchString(i.ShortDescription)
}

// Acceptable reports whether the receipt may enter the store:
//   - the retailer name contains only word characters, whitespace, ampersands,
//     and hyphens
//   - the receipt has at least one item
//   - every item is acceptable
//
// It is a pure predicate; invalid input yields false, never an error.
func (r Receipt) Acceptable() bool {
	if !retailerRE.MatchString(r.Retailer) {
		return false
	}
	if len(r.Items) == 0 {
		return false
	}
	for _, item := range r.Items {
		if !item.Acceptable() {
			return false
		}
	}
	return true
}
