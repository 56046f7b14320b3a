package service

import (
	"crypto/subtle"

	"github.com/zerah-labs/zerah/internal/config"
)

// Verifier is the authentication gate in front of sensitive actions
// (transfers, card freezes, detail reveals). The 4-digit pads collect a
// candidate; only this capability decides whether it passes.
type Verifier interface {
	VerifyPin(candidate string) bool
}

// ConfigVerifier checks candidates against the PIN in local config.
type ConfigVerifier struct {
	pin string
}

func NewConfigVerifier(cfg *config.Config) *ConfigVerifier {
	return &ConfigVerifier{pin: cfg.Security.PIN}
}

func (v *ConfigVerifier) VerifyPin(candidate string) bool {
	if len(candidate) != len(v.pin) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(v.pin)) == 1
}
