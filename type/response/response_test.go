package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	assert.Equal(t, "boom", Error("boom").Error)
	assert.Equal(t, "wrapped", Error(errors.New("wrapped")).Error)
	assert.Equal(t, "Unknown Error", Error(42).Error)
}

func TestNotified_NilResultsBecomeEmptyList(t *testing.T) {
	resp := Notified(nil)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Results)
	assert.Len(t, resp.Results, 0)
}

func TestDelivered(t *testing.T) {
	tests := []struct {
		name    string
		results []DispatchResult
		want    bool
	}{
		{"no sends", nil, true},
		{"all accepted", []DispatchResult{{To: "a@x.com", Status: 202}, {To: "b@x.com", Status: 200}}, true},
		{"one rejected", []DispatchResult{{To: "a@x.com", Status: 202}, {To: "b@x.com", Status: 400}}, false},
		{"smtp rejection", []DispatchResult{{To: "a@x.com", Status: 550}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Delivered(tt.results))
		})
	}
}
