package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/config"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/rates"
	"github.com/zerah-labs/zerah/internal/service"
	"github.com/zerah-labs/zerah/internal/store"
)

// stubRates answers every lookup with a fixed quote so no screen test
// touches the network.
type stubRates struct {
	rate string
	err  error
}

func (s stubRates) Fetch(_ context.Context, from, to string) (*rates.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &rates.Quote{
		From:      from,
		To:        to,
		Rate:      decimal.RequireFromString(s.rate),
		FetchedAt: time.Now(),
	}, nil
}

func testDeps(t *testing.T) Deps {
	t.Helper()

	cfg := config.NewDefault()
	repo := store.NewMemoryStore(cfg.Profile.Name)
	return Deps{
		Cfg:   cfg,
		Svc:   service.NewService(repo, cfg, ident.NewRandomGenerator()),
		Rates: stubRates{rate: "1605.00"},
		Log:   zerolog.Nop(),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressKey(t *testing.T, a *App, msg tea.KeyMsg) {
	t.Helper()
	drain(t, a, msg)
}

// drain feeds a message and then runs any immediately returned
// commands whose messages the shell needs, so navigation lands in one
// call. Timer commands are never executed.
func drain(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()

	model, cmd := a.Update(msg)
	require.Same(t, a, model)
	if cmd == nil {
		return
	}
	if out := cmd(); out != nil {
		if _, isTick := out.(tea.BatchMsg); isTick {
			return
		}
		if nav, ok := out.(navMsg); ok {
			drain(t, a, nav)
		}
	}
}

func TestAppStartsOnHome(t *testing.T) {
	a := NewApp(testDeps(t))

	assert.Equal(t, ViewHome, a.CurrentView())
	assert.IsType(t, &homeScreen{}, a.current)
	assert.True(t, a.tabBarVisible())
}

func TestAppTabNavigation(t *testing.T) {
	a := NewApp(testDeps(t))

	pressKey(t, a, keyRunes("2"))
	assert.Equal(t, ViewWallets, a.CurrentView())
	assert.True(t, a.tabBarVisible())

	pressKey(t, a, keyRunes("4"))
	assert.Equal(t, ViewCards, a.CurrentView())

	pressKey(t, a, keyRunes("5"))
	assert.Equal(t, ViewEngine, a.CurrentView())

	pressKey(t, a, keyRunes("1"))
	assert.Equal(t, ViewHome, a.CurrentView())
}

func TestAppTabBarHiddenOnFullScreenViews(t *testing.T) {
	a := NewApp(testDeps(t))

	pressKey(t, a, keyRunes("3"))
	assert.Equal(t, ViewSend, a.CurrentView())
	assert.False(t, a.tabBarVisible())

	// Number keys must not navigate while a full-screen flow is up:
	// they belong to the amount keypad.
	pressKey(t, a, keyRunes("4"))
	assert.Equal(t, ViewSend, a.CurrentView())
}

func TestAppSendFromTabClearsActiveWallet(t *testing.T) {
	a := NewApp(testDeps(t))

	// Home's send action carries the selected wallet.
	pressKey(t, a, keyRunes("s"))
	require.Equal(t, ViewSend, a.CurrentView())
	require.NotNil(t, a.ActiveWallet())
	assert.Equal(t, "USD", a.ActiveWallet().Currency)

	// Returning home clears the pointer.
	drain(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ViewHome, a.CurrentView())
	assert.Nil(t, a.ActiveWallet())
}

func TestAppTransactionDetailsPointer(t *testing.T) {
	a := NewApp(testDeps(t))

	drain(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewTransactionDetails, a.CurrentView())
	require.NotNil(t, a.ActiveTransaction())
	assert.Equal(t, "Apple Store", a.ActiveTransaction().Name)
	assert.False(t, a.tabBarVisible())

	drain(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewHome, a.CurrentView())
	assert.Nil(t, a.ActiveTransaction())
}

func TestAppReceiveUsesSelectedWallet(t *testing.T) {
	a := NewApp(testDeps(t))

	// Move the carousel to the second wallet, then receive.
	pressKey(t, a, tea.KeyMsg{Type: tea.KeyRight})
	drain(t, a, keyRunes("r"))

	require.Equal(t, ViewReceive, a.CurrentView())
	require.NotNil(t, a.ActiveWallet())
	assert.Equal(t, "EUR", a.ActiveWallet().Currency)
}

func TestAppShortcutsSuppressedDuringCardPin(t *testing.T) {
	a := NewApp(testDeps(t))

	pressKey(t, a, keyRunes("4"))
	require.Equal(t, ViewCards, a.CurrentView())
	pressKey(t, a, keyRunes("v"))

	// Digits now belong to the PIN pad, not the tab shortcuts.
	pressKey(t, a, keyRunes("1"))
	assert.Equal(t, ViewCards, a.CurrentView())
	cs, ok := a.current.(*cardsScreen)
	require.True(t, ok)
	assert.Equal(t, 1, cs.pin.Len())
}

func TestViewString(t *testing.T) {
	assert.Equal(t, "Home", ViewHome.String())
	assert.Equal(t, "Convert", ViewConvert.String())
	assert.Equal(t, "Unknown", View(99).String())
}
