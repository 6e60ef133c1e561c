package util

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/sunthewhat/quote-notify-api/type/payload"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	longDateLayout  = "Monday, January 2, 2006"
	shortDateLayout = "January 2, 2006"
	timeLayout      = "3:04 PM"
)

var (
	currencyPrinter = message.NewPrinter(language.English)
	htmlEscaper     = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// FormatCurrency renders value with two decimals and thousands separators,
// e.g. 1234.5 -> "1,234.50". Numeric strings are parsed; anything that is not
// a number formats as "0.00". No currency symbol is added.
func FormatCurrency(value any) string {
	return currencyPrinter.Sprintf("%.2f", toFloat(value))
}

func toFloat(value any) float64 {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		f = payload.ParseAmount(v)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		default:
			return 0
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FormatQuantity prints whole quantities without decimals.
func FormatQuantity(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}

// EscapeHTML escapes &, < and > for interpolation into markup.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// FirstName returns the first word of the first non-blank name.
func FirstName(names ...string) string {
	for _, name := range names {
		if fields := strings.Fields(name); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

var signedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseSignedAt parses an ISO-8601 timestamp. Values without an offset are
// read in loc; bare dates are midnight UTC.
func ParseSignedAt(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range signedAtLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SignedAt holds the localized strings shown wherever the signature time
// appears. All fields are empty when the timestamp could not be parsed.
type SignedAt struct {
	LongDate  string
	ShortDate string
	Time      string
}

func FormatSignedAt(s string, loc *time.Location) SignedAt {
	t, ok := ParseSignedAt(s, loc)
	if !ok {
		return SignedAt{}
	}
	if loc != nil {
		t = t.In(loc)
	}
	return SignedAt{
		LongDate:  t.Format(longDateLayout),
		ShortDate: t.Format(shortDateLayout),
		Time:      t.Format(timeLayout),
	}
}
