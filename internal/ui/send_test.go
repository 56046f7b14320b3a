package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/ui/flow"
)

func updateSend(s *sendScreen, msg tea.Msg) *sendScreen {
	next, _ := s.Update(msg)
	return next.(*sendScreen)
}

// fillBeneficiary stands in for completing the form, which is
// interactive; the stage transition it triggers is replayed directly.
func fillBeneficiary(s *sendScreen) {
	s.benName = "Maria Gonzalez"
	s.benBank = "Banco Central"
	s.benAccount = "0045812290"
	s.machine.Advance()
}

func TestSendDefaultsToActiveWallet(t *testing.T) {
	deps := testDeps(t)

	eur, err := deps.Svc.Wallet.WalletByCurrency("EUR")
	require.NoError(t, err)

	s := newSendScreen(deps, eur)
	assert.Equal(t, "EUR", s.wallet().Currency)

	s = newSendScreen(deps, nil)
	assert.Equal(t, "USD", s.wallet().Currency)
}

func TestSendAmountGate(t *testing.T) {
	s := newSendScreen(testDeps(t), nil)

	// Zero amount cannot advance.
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, sendAmount, s.machine.Stage())

	// Over-balance cannot advance either (USD seed is 12,450).
	for _, r := range "99999" {
		s = updateSend(s, keyRunes(string(r)))
	}
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, sendAmount, s.machine.Stage())
}

func TestSendHappyPath(t *testing.T) {
	deps := testDeps(t)
	s := newSendScreen(deps, nil)

	for _, r := range "500" {
		s = updateSend(s, keyRunes(string(r)))
	}
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, sendBeneficiary, s.machine.Stage())
	require.NotNil(t, s.form)

	fillBeneficiary(s)
	require.Equal(t, sendPin, s.machine.Stage())

	// Correct default PIN.
	var cmd tea.Cmd
	for _, r := range "1234" {
		next, c := s.Update(keyRunes(string(r)))
		s = next.(*sendScreen)
		cmd = c
	}
	require.NotNil(t, cmd, "fourth digit schedules verification")
	require.True(t, s.pinPending)

	s = updateSend(s, pinDelayMsg{epoch: s.machine.Epoch()})
	require.Equal(t, sendProcessing, s.machine.Stage())
	require.NotNil(t, s.receipt)
	assert.Regexp(t, `^TXN-[A-Z0-9]{8}$`, s.receipt.Ref)
	assert.Equal(t, "Maria Gonzalez", s.receipt.Beneficiary.Name)

	// The debit lands immediately.
	usd, err := deps.Svc.Wallet.WalletByCurrency("USD")
	require.NoError(t, err)
	assert.True(t, usd.Balance.Equal(decimal.RequireFromString("11950")), usd.Balance.String())

	// And the activity feed gained a signed expense entry.
	activity := deps.Svc.Wallet.RecentActivity()
	require.NotEmpty(t, activity)
	assert.Equal(t, model.TypeExpense, activity[0].Type)
	assert.True(t, activity[0].Amount.IsNegative())

	s = updateSend(s, flow.AdvanceMsg{Epoch: s.machine.Epoch(), To: sendSuccess})
	assert.Equal(t, sendSuccess, s.machine.Stage())
}

func TestSendWrongPinClearsPad(t *testing.T) {
	s := newSendScreen(testDeps(t), nil)

	for _, r := range "500" {
		s = updateSend(s, keyRunes(string(r)))
	}
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	fillBeneficiary(s)

	for _, r := range "9999" {
		s = updateSend(s, keyRunes(string(r)))
	}
	s = updateSend(s, pinDelayMsg{epoch: s.machine.Epoch()})

	assert.Equal(t, sendPin, s.machine.Stage())
	assert.Equal(t, 0, s.pin.Len())
	assert.NotEmpty(t, s.errMsg)
	assert.Nil(t, s.receipt)
}

func TestSendPinBackEdgeInvalidatesPendingVerify(t *testing.T) {
	s := newSendScreen(testDeps(t), nil)

	for _, r := range "500" {
		s = updateSend(s, keyRunes(string(r)))
	}
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	fillBeneficiary(s)

	for _, r := range "1234" {
		s = updateSend(s, keyRunes(string(r)))
	}
	staleEpoch := s.machine.Epoch()

	// Cancel back to the beneficiary step before the delay fires.
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, sendBeneficiary, s.machine.Stage())
	assert.Equal(t, 0, s.pin.Len())

	// The stale verification message must do nothing.
	s = updateSend(s, pinDelayMsg{epoch: staleEpoch})
	assert.Equal(t, sendBeneficiary, s.machine.Stage())
	assert.Nil(t, s.receipt)
}

func TestSendDigitsIgnoredWhileVerifying(t *testing.T) {
	s := newSendScreen(testDeps(t), nil)

	for _, r := range "500" {
		s = updateSend(s, keyRunes(string(r)))
	}
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyEnter})
	fillBeneficiary(s)

	for _, r := range "1234" {
		s = updateSend(s, keyRunes(string(r)))
	}
	require.True(t, s.pinPending)

	s = updateSend(s, keyRunes("5"))
	s = updateSend(s, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 4, s.pin.Len())
}

func TestSendWalletCycle(t *testing.T) {
	s := newSendScreen(testDeps(t), nil)

	require.Equal(t, "USD", s.wallet().Currency)
	s = updateSend(s, keyRunes("w"))
	assert.Equal(t, "EUR", s.wallet().Currency)
	s = updateSend(s, keyRunes("w"))
	assert.Equal(t, "GBP", s.wallet().Currency)
	s = updateSend(s, keyRunes("w"))
	assert.Equal(t, "USD", s.wallet().Currency)
}
