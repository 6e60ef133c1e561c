package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  Text
	}{
		{`"Seat"`, "Seat"},
		{`5`, "5"},
		{`12.5`, "12.5"},
		{`-3`, "-3"},
		{`0`, ""},
		{`true`, "true"},
		{`false`, ""},
		{`null`, ""},
		{`{"a":1}`, ""},
		{`[1,2]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Text("stale")
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  Amount
	}{
		{`199.5`, 199.5},
		{`"199.50"`, 199.5},
		{`"12.5 USD"`, 12.5},
		{`"abc"`, 0},
		{`null`, 0},
		{`true`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got Amount
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotifyPayload_LineItems(t *testing.T) {
	t.Run("numeric name keeps the other fields", func(t *testing.T) {
		var p NotifyPayload
		require.NoError(t, json.Unmarshal([]byte(`{"lineItems":[{"name":5,"qty":"2","monthly":9.5}]}`), &p))

		require.Len(t, p.LineItems, 1)
		item := p.LineItems[0]
		assert.Equal(t, Text("5"), item.Name)
		assert.Equal(t, 2.0, item.Quantity())
		assert.Equal(t, 9.5, item.MonthlyAmount())
	})

	t.Run("non-array decodes as empty", func(t *testing.T) {
		var p NotifyPayload
		require.NoError(t, json.Unmarshal([]byte(`{"quoteNumber":"Q-1","lineItems":"oops"}`), &p))
		assert.Empty(t, p.LineItems)
		assert.Equal(t, "Q-1", p.QuoteNumber)
	})

	t.Run("non-object element becomes a zero item", func(t *testing.T) {
		var p NotifyPayload
		require.NoError(t, json.Unmarshal([]byte(`{"lineItems":[7,{"name":"Seat"}]}`), &p))
		require.Len(t, p.LineItems, 2)
		assert.Equal(t, LineItem{}, p.LineItems[0])
		assert.Equal(t, Text("Seat"), p.LineItems[1].Name)
		assert.Equal(t, 1.0, p.LineItems[1].Quantity())
	})
}
