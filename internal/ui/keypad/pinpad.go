package keypad

import "github.com/zerah-labs/zerah/internal/constants"

// PinPad collects exactly four digits. It only reports completion; it
// never decides whether the PIN is correct.
type PinPad struct {
	digits string
}

func NewPinPad() *PinPad {
	return &PinPad{}
}

func (p *PinPad) Press(key rune) {
	if key < '0' || key > '9' {
		return
	}
	if len(p.digits) < constants.PinLength {
		p.digits += string(key)
	}
}

func (p *PinPad) Backspace() {
	if len(p.digits) > 0 {
		p.digits = p.digits[:len(p.digits)-1]
	}
}

func (p *PinPad) Clear() {
	p.digits = ""
}

// Complete reports whether all four digits are entered.
func (p *PinPad) Complete() bool {
	return len(p.digits) == constants.PinLength
}

func (p *PinPad) Len() int {
	return len(p.digits)
}

func (p *PinPad) Value() string {
	return p.digits
}
