package payload

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type NotifyPayload struct {
	QuoteNumber      string    `json:"quoteNumber"`
	Company          string    `json:"company"`
	ContactName      string    `json:"contactName"`
	ContactEmail     string    `json:"contactEmail" validate:"omitempty,email"`
	SignerName       string    `json:"signerName"`
	SignerTitle      string    `json:"signerTitle"`
	SignedAt         string    `json:"signedAt"`
	SignatureData    string    `json:"signatureData"`
	MonthlyRecurring Amount    `json:"monthlyRecurring"`
	OnetimeFees      Amount    `json:"onetimeFees"`
	TotalDue         Amount    `json:"totalDue"`
	LineItems        LineItems `json:"lineItems"`
}

type LineItem struct {
	Name    Text   `json:"name"`
	Qty     Amount `json:"qty"`
	Monthly Amount `json:"monthly"`
	Onetime Amount `json:"onetime"`
}

// Quantity is the item count, defaulting to 1 when absent or zero.
func (i LineItem) Quantity() float64 {
	if i.Qty == 0 {
		return 1
	}
	return float64(i.Qty)
}

// MonthlyAmount is zero unless the monthly price is positive.
func (i LineItem) MonthlyAmount() float64 {
	return positive(i.Monthly)
}

// OnetimeAmount is zero unless the one-time price is positive.
func (i LineItem) OnetimeAmount() float64 {
	return positive(i.Onetime)
}

func positive(a Amount) float64 {
	if a > 0 {
		return float64(a)
	}
	return 0
}

// Amount is a lenient number. It accepts JSON numbers and numeric strings
// (reading the leading numeric prefix, so "12.5 USD" is 12.5); anything else,
// including null, decodes as zero.
type Amount float64

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	var raw string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(data)
	default:
		return nil
	}

	*a = Amount(ParseAmount(raw))
	return nil
}

// ParseAmount reads the leading number of s, returning 0 when there is none
// or the value is not finite.
func ParseAmount(s string) float64 {
	match := numericPrefix.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Text is a lenient label. Strings decode as-is, non-zero numbers print in
// plain decimal and true prints as "true". Zero, false, null and composite
// values decode as empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			*t = Text(s)
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseFloat(string(data), 64)
		if err == nil && v != 0 {
			*t = Text(strconv.FormatFloat(v, 'f', -1, 64))
		}
	case 't':
		if string(data) == "true" {
			*t = "true"
		}
	}
	return nil
}

// LineItems decodes any non-array value as an empty list. Elements that are
// not objects become zero items rather than failing the whole request.
type LineItems []LineItem

func (l *LineItems) UnmarshalJSON(data []byte) error {
	*l = nil

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	items := make(LineItems, 0, len(raw))
	for _, element := range raw {
		// Mistyped fields are skipped; the rest of the element still decodes.
		var item LineItem
		_ = json.Unmarshal(element, &item)
		items = append(items, item)
	}
	*l = items
	return nil
}
