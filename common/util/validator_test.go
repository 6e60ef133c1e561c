package util

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestRecipient struct {
	Email   string `json:"email" validate:"required,email"`
	Website string `json:"website" validate:"omitempty,url"`
}

type TestMailSettings struct {
	Transport string `yaml:"transport" validate:"oneof=sendgrid smtp"`
	Timezone  string `yaml:"timezone" validate:"required,timezone"`
	Port      int    `yaml:"port" validate:"omitempty,min=1,max=65535"`
}

type NoValidationStruct struct {
	Name  string
	Email string
}

func TestValidateStruct_ValidData(t *testing.T) {
	err := ValidateStruct(TestRecipient{Email: "buyer@acme.com", Website: "https://acme.com"})
	assert.NoError(t, err, "Valid struct should pass validation")
}

func TestValidateStruct_InvalidEmail(t *testing.T) {
	err := ValidateStruct(TestRecipient{Email: "not-an-email"})
	require.Error(t, err)

	messages := GetValidationErrors(err)
	require.Len(t, messages, 1)
	assert.Equal(t, "email must be a valid email", messages[0])
}

func TestValidateStruct_NoValidationTags(t *testing.T) {
	assert.NoError(t, ValidateStruct(NoValidationStruct{}))
}

// TestGetValidationErrors_UsesWireNames checks json and yaml names are reported
func TestGetValidationErrors_UsesWireNames(t *testing.T) {
	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{"json name", TestRecipient{Email: ""}, "email is required"},
		{"url", TestRecipient{Email: "a@b.com", Website: "nope"}, "website must be a valid URL"},
		{"oneof", TestMailSettings{Transport: "pigeon", Timezone: "UTC"}, "transport must be one of: sendgrid smtp"},
		{"timezone", TestMailSettings{Transport: "smtp", Timezone: "Mars/Olympus"}, "timezone must be a valid IANA timezone"},
		{"min", TestMailSettings{Transport: "smtp", Timezone: "UTC", Port: -1}, "port must be at least 1"},
		{"max", TestMailSettings{Transport: "smtp", Timezone: "UTC", Port: 70000}, "port must be at most 65535"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.input)
			require.Error(t, err)
			messages := GetValidationErrors(err)
			require.NotEmpty(t, messages)
			assert.Equal(t, tc.expected, messages[0])
		})
	}
}

func TestGetValidationErrors_NonValidationError(t *testing.T) {
	messages := GetValidationErrors(errors.New("plain failure"))
	assert.Equal(t, []string{"plain failure"}, messages)
}

func TestGetValidationErrors_NilError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
}

func TestValidateStruct_Concurrency(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Error(t, ValidateStruct(TestRecipient{Email: "bad"}))
		}()
	}
	wg.Wait()
}
