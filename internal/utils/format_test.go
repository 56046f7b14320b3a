package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		symbol string
		amount string
		want   string
	}{
		{"$", "12450", "$12,450.00"},
		{"$", "12450.5", "$12,450.50"},
		{"€", "8230.50", "€8,230.50"},
		{"₦", "450000", "₦450,000.00"},
		{"$", "-500", "-$500.00"},
		{"$", "0", "$0.00"},
		{"$", "999", "$999.00"},
		{"$", "1000", "$1,000.00"},
		{"$", "1234567.891", "$1,234,567.89"},
	}

	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.amount)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, FormatAmount(tt.symbol, d))
	}
}

func TestFormatRaw(t *testing.T) {
	assert.Equal(t, "0", FormatRaw(""))
	assert.Equal(t, "450,000", FormatRaw("450000"))
	assert.Equal(t, "450,000.", FormatRaw("450000."))
	assert.Equal(t, "450,000.5", FormatRaw("450000.5"))
	assert.Equal(t, "12", FormatRaw("12"))
	assert.Equal(t, "0.25", FormatRaw("0.25"))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1", GroupDigits("1"))
	assert.Equal(t, "999", GroupDigits("999"))
	assert.Equal(t, "1,000", GroupDigits("1000"))
	assert.Equal(t, "12,450", GroupDigits("12450"))
	assert.Equal(t, "1,234,567", GroupDigits("1234567"))
}
