package util

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/quote-notify-api/type/payload"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"zero", 0, "0.00"},
		{"integer", 5, "5.00"},
		{"half", 199.5, "199.50"},
		{"thousands", 1234.5, "1,234.50"},
		{"millions", 1234567.891, "1,234,567.89"},
		{"negative", -2500.25, "-2,500.25"},
		{"amount type", payload.Amount(42.1), "42.10"},
		{"numeric string", "1999.99", "1,999.99"},
		{"numeric prefix string", "12.5 USD", "12.50"},
		{"non-numeric string", "abc", "0.00"},
		{"empty string", "", "0.00"},
		{"nil", nil, "0.00"},
		{"bool", true, "0.00"},
		{"nan", math.NaN(), "0.00"},
		{"infinity", math.Inf(1), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.input))
		})
	}
}

// TestFormatCurrency_AlwaysTwoDecimals checks the decimal part for a spread of values
func TestFormatCurrency_AlwaysTwoDecimals(t *testing.T) {
	for _, v := range []float64{0.1, 1, 10.006, 999.999, 1000, 123456.7, 98765432.1} {
		out := FormatCurrency(v)
		dot := strings.LastIndex(out, ".")
		require.NotEqual(t, -1, dot, out)
		assert.Len(t, out[dot+1:], 2, out)

		integer := strings.TrimPrefix(out[:dot], "-")
		groups := strings.Split(integer, ",")
		for i, g := range groups {
			if i == 0 {
				assert.True(t, len(g) >= 1 && len(g) <= 3, out)
				continue
			}
			assert.Len(t, g, 3, out)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "10", FormatQuantity(10))
	assert.Equal(t, "2.5", FormatQuantity(2.5))
	assert.Equal(t, "1", FormatQuantity(1))
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Acme Corp", "Acme Corp"},
		{"<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"Smith & Sons", "Smith &amp; Sons"},
		{"&amp;", "&amp;amp;"},
		{"a<b>c&d", "a&lt;b&gt;c&amp;d"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := EscapeHTML(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<")
			assert.NotContains(t, got, ">")
		})
	}
}

func TestEscapeHTML_EachAmpersandEscapedOncePerPass(t *testing.T) {
	input := "R&D & <Ops>"
	once := EscapeHTML(input)
	assert.Equal(t, strings.Count(input, "&"), strings.Count(once, "&amp;"))

	twice := EscapeHTML(once)
	assert.Equal(t, strings.Count(once, "&"), strings.Count(twice, "&amp;"))
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Jane", FirstName("Jane Roe", "John Doe"))
	assert.Equal(t, "John", FirstName("", "John Doe"))
	assert.Equal(t, "John", FirstName("   ", "John Doe"))
	assert.Equal(t, "", FirstName("", ""))
}

func TestParseSignedAt(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name   string
		input  string
		loc    *time.Location
		ok     bool
		expect time.Time
	}{
		{"rfc3339 utc", "2025-03-14T15:30:00Z", time.UTC, true, time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)},
		{"rfc3339 millis", "2025-03-14T15:30:00.123Z", time.UTC, true, time.Date(2025, 3, 14, 15, 30, 0, 123000000, time.UTC)},
		{"minutes utc", "2025-03-14T15:30Z", ny, true, time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)},
		{"minutes with offset", "2025-03-14T15:30+02:00", ny, true, time.Date(2025, 3, 14, 13, 30, 0, 0, time.UTC)},
		{"no offset uses location", "2025-03-14T15:30:00", ny, true, time.Date(2025, 3, 14, 15, 30, 0, 0, ny)},
		{"date only", "2025-03-14", ny, true, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"garbage", "yesterday", time.UTC, false, time.Time{}},
		{"empty", "", time.UTC, false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSignedAt(tt.input, tt.loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expect.Equal(got), "got %s", got)
			}
		})
	}
}

func TestFormatSignedAt(t *testing.T) {
	got := FormatSignedAt("2025-03-14T15:30:00Z", time.UTC)
	assert.Equal(t, "Friday, March 14, 2025", got.LongDate)
	assert.Equal(t, "March 14, 2025", got.ShortDate)
	assert.Equal(t, "3:30 PM", got.Time)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	local := FormatSignedAt("2025-03-14T02:05:00Z", ny)
	assert.Equal(t, "Thursday, March 13, 2025", local.LongDate)
	assert.Equal(t, "10:05 PM", local.Time)

	minutes := FormatSignedAt("2025-03-14T15:30Z", ny)
	assert.Equal(t, "Friday, March 14, 2025", minutes.LongDate)
	assert.Equal(t, "March 14, 2025", minutes.ShortDate)
	assert.Equal(t, "11:30 AM", minutes.Time)

	assert.Equal(t, SignedAt{}, FormatSignedAt("not a date", time.UTC))
}
