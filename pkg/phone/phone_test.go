package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hyphenated mobile", "090-1234-5678", "09012345678"},
		{"spaces and parens", "(03) 1234 5678", "0312345678"},
		{"international prefix", "+81 90 1234 5678", "819012345678"},
		{"already digits", "09012345678", "09012345678"},
		{"empty", "", ""},
		{"no digits at all", "電話なし", ""},
		{"mixed text", "tel: 050-1111-2222 (代)", "05011112222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDigits(tt.input))
		})
	}
}

func TestInspect_MobileNumber(t *testing.T) {
	result, err := Inspect("090-1234-5678", "JP")
	require.NoError(t, err)

	assert.Equal(t, "09012345678", result.Digits)
	assert.Equal(t, "+819012345678", result.E164Format)
	assert.Equal(t, "JP", result.Region)
}

func TestInspect_DefaultsToJapan(t *testing.T) {
	result, err := Inspect("03-1234-5678", "")
	require.NoError(t, err)

	assert.Equal(t, "0312345678", result.Digits)
	assert.Equal(t, "JP", result.Region)
}

func TestInspect_EmptyInput(t *testing.T) {
	_, err := Inspect("", "JP")
	assert.Error(t, err)
}
