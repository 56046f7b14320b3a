package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zerah-labs/zerah/internal/config"
)

func TestConfigVerifier(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Security.PIN = "4821"
	v := NewConfigVerifier(cfg)

	assert.True(t, v.VerifyPin("4821"))
	assert.False(t, v.VerifyPin("1234"))
	assert.False(t, v.VerifyPin("482"))
	assert.False(t, v.VerifyPin("48211"))
	assert.False(t, v.VerifyPin(""))
}
