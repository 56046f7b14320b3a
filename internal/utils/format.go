package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money value with symbol, thousands grouping
// and two decimals: 12450 -> "$12,450.00".
func FormatAmount(symbol string, d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	parts := strings.SplitN(s, ".", 2)
	out := symbol + GroupDigits(parts[0]) + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatRaw groups the integer part of a keypad's raw input while
// preserving whatever fractional digits (or bare trailing point) the
// user has typed so far.
func FormatRaw(raw string) string {
	if raw == "" {
		return "0"
	}
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		return GroupDigits(raw[:i]) + raw[i:]
	}
	return GroupDigits(raw)
}

// GroupDigits inserts thousands separators into a plain digit string.
func GroupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
