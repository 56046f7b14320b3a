// Package keypad holds the input pads shared by the money flows: a
// numeric amount pad and a 4-digit PIN pad. Both are plain state
// machines; rendering lives with the screens.
package keypad

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/utils"
)

// AmountPad accumulates a decimal amount digit by digit. At most one
// decimal point is accepted and a leading zero collapses when a
// non-zero digit follows.
type AmountPad struct {
	raw string
}

func NewAmountPad() *AmountPad {
	return &AmountPad{raw: "0"}
}

// NewAmountPadWith seeds the pad, used when a flow starts from a
// pre-filled amount.
func NewAmountPadWith(raw string) *AmountPad {
	p := &AmountPad{raw: strings.ReplaceAll(raw, ",", "")}
	if p.raw == "" {
		p.raw = "0"
	}
	return p
}

// Press handles one key: '0'-'9' or '.'.
func (p *AmountPad) Press(key rune) {
	switch {
	case key == '.':
		if !strings.ContainsRune(p.raw, '.') {
			p.raw += "."
		}
	case key >= '0' && key <= '9':
		if p.raw == "0" {
			p.raw = string(key)
		} else {
			p.raw += string(key)
		}
	}
}

// Backspace removes the last typed character; an emptied pad reads 0.
func (p *AmountPad) Backspace() {
	if len(p.raw) > 0 {
		p.raw = p.raw[:len(p.raw)-1]
	}
	if p.raw == "" {
		p.raw = "0"
	}
}

func (p *AmountPad) Reset() {
	p.raw = "0"
}

// Value is the numeric amount entered so far.
func (p *AmountPad) Value() decimal.Decimal {
	raw := strings.TrimSuffix(p.raw, ".")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Display is the grouped human-readable form of the raw entry.
func (p *AmountPad) Display() string {
	return utils.FormatRaw(p.raw)
}

func (p *AmountPad) Raw() string {
	return p.raw
}
