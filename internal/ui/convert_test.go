package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/rates"
	"github.com/zerah-labs/zerah/internal/ui/flow"
	"github.com/zerah-labs/zerah/internal/ui/keypad"
)

func newConvertForTest(t *testing.T) *convertScreen {
	t.Helper()
	return newConvertScreen(testDeps(t))
}

func updateConvert(s *convertScreen, msg tea.Msg) *convertScreen {
	next, _ := s.Update(msg)
	return next.(*convertScreen)
}

func TestConvertDefaults(t *testing.T) {
	s := newConvertForTest(t)

	assert.Equal(t, "NGN", s.from().Code)
	assert.Equal(t, "USD", s.to().Code)
	assert.Equal(t, "450000", s.pad.Raw())
	assert.True(t, s.rate.Equal(decimal.RequireFromString("1605")))
	assert.Equal(t, convertInput, s.machine.Stage())
}

func TestConvertRateResultApplied(t *testing.T) {
	s := newConvertForTest(t)
	s.rateSeq = 3

	s = updateConvert(s, rateResultMsg{
		seq:  3,
		from: "NGN",
		to:   "USD",
		quote: &rates.Quote{
			From: "NGN", To: "USD",
			Rate:      decimal.RequireFromString("1610.50"),
			FetchedAt: time.Now(),
		},
	})

	assert.True(t, s.rate.Equal(decimal.RequireFromString("1610.50")))
	assert.False(t, s.loadingRate)
}

func TestConvertStaleRateResultDropped(t *testing.T) {
	s := newConvertForTest(t)
	s.rateSeq = 5

	// Superseded sequence.
	s = updateConvert(s, rateResultMsg{
		seq: 4, from: "NGN", to: "USD",
		quote: &rates.Quote{Rate: decimal.RequireFromString("9999")},
	})
	assert.True(t, s.rate.Equal(decimal.RequireFromString("1605")))

	// Right sequence, wrong pair.
	s = updateConvert(s, rateResultMsg{
		seq: 5, from: "EUR", to: "USD",
		quote: &rates.Quote{Rate: decimal.RequireFromString("9999")},
	})
	assert.True(t, s.rate.Equal(decimal.RequireFromString("1605")))
}

func TestConvertRateErrorKeepsPreviousRate(t *testing.T) {
	s := newConvertForTest(t)
	s.rateSeq = 1
	s.loadingRate = true

	s = updateConvert(s, rateResultMsg{
		seq: 1, from: "NGN", to: "USD",
		err: errors.New("upstream unavailable"),
	})

	assert.True(t, s.rate.Equal(decimal.RequireFromString("1605")))
	assert.False(t, s.loadingRate)
}

func TestConvertSwapRefetches(t *testing.T) {
	s := newConvertForTest(t)
	before := s.rateSeq

	next, cmd := s.Update(keyRunes("s"))
	s = next.(*convertScreen)

	assert.Equal(t, "USD", s.from().Code)
	assert.Equal(t, "NGN", s.to().Code)
	assert.Greater(t, s.rateSeq, before)
	assert.NotNil(t, cmd)
}

func TestConvertConfirmRunsFixedDelayFlow(t *testing.T) {
	s := newConvertForTest(t)

	s = updateConvert(s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, convertProcessing, s.machine.Stage())
	require.NotNil(t, s.receipt)
	assert.Regexp(t, `^ZRH-[A-Z0-9]{8}$`, s.receipt.Ref)

	// A second confirm during processing must be inert.
	s = updateConvert(s, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, convertProcessing, s.machine.Stage())

	// The scheduled advance lands on success.
	s = updateConvert(s, flow.AdvanceMsg{Epoch: s.machine.Epoch(), To: convertSuccess})
	assert.Equal(t, convertSuccess, s.machine.Stage())
}

func TestConvertStaleAdvanceDropped(t *testing.T) {
	s := newConvertForTest(t)

	stale := flow.AdvanceMsg{Epoch: s.machine.Epoch() - 1, To: convertSuccess}
	s = updateConvert(s, stale)
	assert.Equal(t, convertInput, s.machine.Stage())
}

func TestConvertZeroAmountNotConfirmable(t *testing.T) {
	s := newConvertForTest(t)
	s.pad.Reset()

	s = updateConvert(s, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, convertInput, s.machine.Stage())
	assert.Nil(t, s.receipt)
}

func TestConvertExecuteMovesBalances(t *testing.T) {
	deps := testDeps(t)
	s := newConvertScreen(deps)

	// USD -> EUR so both legs hit live wallets.
	s.fromIdx = s.indexOf("USD")
	s.toIdx = s.indexOf("EUR")
	s.rate = decimal.RequireFromString("0.92")
	s.pad = keypad.NewAmountPadWith("1000")

	s = updateConvert(s, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, convertProcessing, s.machine.Stage())

	usd, err := deps.Svc.Wallet.WalletByCurrency("USD")
	require.NoError(t, err)
	assert.True(t, usd.Balance.Equal(decimal.RequireFromString("11450")), usd.Balance.String())
}
