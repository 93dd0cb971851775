// Package receipt holds the receipt data model, its wire decoding, the
// acceptability rules, and the identifier-keyed store. Wire decoding and
// acceptability are deliberately separate steps: a payload that does not
// decode never reaches the semantic checks.
package receipt

import (
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"time"

	dErrors "github.com/kvverti/serve-ex/pkg/domain-errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// time.Parse alone is too lenient about zero padding, so both encodings get a
// shape check first.
var (
	dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRE = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Date is a calendar date with no time zone, wire form "YYYY-MM-DD".
type Date struct {
	time.Time
}

// ParseDate decodes a strictly zero-padded calendar date.
func ParseDate(s string) (Date, error) {
	if !dateRE.MatchString(s) {
		return Date{}, dErrors.New(dErrors.CodeInvalidInput, "date must be in yyyy-mm-dd format")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, dErrors.Wrap(dErrors.CodeInvalidInput, "invalid calendar date", err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return dErrors.Wrap(dErrors.CodeInvalidInput, "date must be a string", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock time at minute precision, wire form 24-hour "HH:MM".
type TimeOfDay struct {
	time.Time
}

// ParseTimeOfDay decodes a strictly zero-padded 24-hour wall-clock time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if !timeRE.MatchString(s) {
		return TimeOfDay{}, dErrors.New(dErrors.CodeInvalidInput, "time must be in hh:mm format")
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return TimeOfDay{}, dErrors.Wrap(dErrors.CodeInvalidInput, "invalid wall-clock time", err)
	}
	return TimeOfDay{t}, nil
}

func (t TimeOfDay) String() string {
	return t.Format(timeLayout)
}

// MinuteOfDay returns the minute offset from midnight, which gives times a
// total order at the precision the wire format carries.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour()*60 + t.Minute()
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return dErrors.Wrap(dErrors.CodeInvalidInput, "time must be a string", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Item is a single line on a receipt. Items have no identity of their own and
// are copied by value wherever a receipt is copied.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            Price  `json:"price"`
}

// itemWire mirrors Item with pointer fields so missing keys are detectable.
type itemWire struct {
	ShortDescription *string `json:"shortDescription"`
	Price            *Price  `json:"price"`
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.ShortDescription == nil {
		return dErrors.New(dErrors.CodeBadRequest, "item is missing required field shortDescription")
	}
	if w.Price == nil {
		return dErrors.New(dErrors.CodeBadRequest, "item is missing required field price")
	}
	i.ShortDescription = *w.ShortDescription
	i.Price = *w.Price
	return nil
}

// Receipt is an immutable purchase record once validated and stored.
type Receipt struct {
	Retailer     string    `json:"retailer"`
	PurchaseDate Date      `json:"purchaseDate"`
	PurchaseTime TimeOfDay `json:"purchaseTime"`
	Items        []Item    `json:"items"`
	Total        Price     `json:"total"`
}

// receiptWire mirrors Receipt with pointer fields so missing keys are
// detectable; plain struct decoding would silently zero-fill them.
type receiptWire struct {
	Retailer     *string    `json:"retailer"`
	PurchaseDate *Date      `json:"purchaseDate"`
	PurchaseTime *TimeOfDay `json:"purchaseTime"`
	Items        *[]Item    `json:"items"`
	Total        *Price     `json:"total"`
}

func errMissingField(name string) error {
	return dErrors.New(dErrors.CodeBadRequest, "receipt is missing required field "+name)
}

// Decode parses the JSON wire form of a receipt. It reports structural
// problems only: missing fields, wrong types, and malformed money, date, or
// time strings. Semantic acceptability is a separate, later check.
func Decode(r io.Reader) (Receipt, error) {
	dec := json.NewDecoder(r)
	var w receiptWire
	if err := dec.Decode(&w); err != nil {
		var coded *dErrors.Error
		if errors.As(err, &coded) {
			return Receipt{}, coded
		}
		return Receipt{}, dErrors.Wrap(dErrors.CodeBadRequest, "malformed receipt payload", err)
	}
	// Exactly one JSON value; anything after it is a malformed payload.
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return Receipt{}, dErrors.New(dErrors.CodeBadRequest, "unexpected data after receipt payload")
	}
	switch {
	case w.Retailer == nil:
		return Receipt{}, errMissingField("retailer")
	case w.PurchaseDate == nil:
		return Receipt{}, errMissingField("purchaseDate")
	case w.PurchaseTime == nil:
		return Receipt{}, errMissingField("purchaseTime")
	case w.Items == nil:
		return Receipt{}, errMissingField("items")
	case w.Total == nil:
		return Receipt{}, errMissingField("total")
	}
	return Receipt{
		Retailer:     *w.Retailer,
		PurchaseDate: *w.PurchaseDate,
		PurchaseTime: *w.PurchaseTime,
		Items:        *w.Items,
		Total:        *w.Total,
	}, nil
}
