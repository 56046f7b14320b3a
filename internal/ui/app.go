// Package ui is the full-screen terminal app: a navigation shell that
// owns the current view and the active wallet/transaction pointers,
// and mounts one screen model at a time.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/zerah-labs/zerah/internal/config"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/rates"
	"github.com/zerah-labs/zerah/internal/service"
)

// View names a top-level screen.
type View int

const (
	ViewHome View = iota
	ViewWallets
	ViewSend
	ViewCards
	ViewEngine
	ViewConvert
	ViewReceive
	ViewTransactionDetails
	ViewProfile
	ViewNotifications
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewWallets:
		return "Wallets"
	case ViewSend:
		return "Send"
	case ViewCards:
		return "Cards"
	case ViewEngine:
		return "Engine"
	case ViewConvert:
		return "Convert"
	case ViewReceive:
		return "Receive"
	case ViewTransactionDetails:
		return "Transaction"
	case ViewProfile:
		return "Profile"
	case ViewNotifications:
		return "Notifications"
	default:
		return "Unknown"
	}
}

// fullScreenViews suppress the tab bar.
var fullScreenViews = map[View]bool{
	ViewConvert:            true,
	ViewSend:               true,
	ViewReceive:            true,
	ViewTransactionDetails: true,
	ViewProfile:            true,
	ViewNotifications:      true,
}

// Deps is the dependency bundle handed to every screen.
type Deps struct {
	Cfg   *config.Config
	Svc   *service.Service
	Rates rates.Client
	Log   zerolog.Logger
}

// navMsg asks the shell for a screen change. Screens never switch
// views themselves; they emit one of these.
type navMsg struct {
	view     View
	wallet   *model.Wallet
	tx       *model.Transaction
	clearPtr bool
}

func goTo(v View) tea.Cmd {
	return func() tea.Msg { return navMsg{view: v} }
}

// goHome clears the active pointers on the way back.
func goHome() tea.Cmd {
	return func() tea.Msg { return navMsg{view: ViewHome, clearPtr: true} }
}

func goToReceive(w model.Wallet) tea.Cmd {
	return func() tea.Msg { return navMsg{view: ViewReceive, wallet: &w} }
}

// goToSend sets the active wallet when one is given and clears it
// otherwise, so Send falls back to the first wallet.
func goToSend(w *model.Wallet) tea.Cmd {
	return func() tea.Msg { return navMsg{view: ViewSend, wallet: w, clearPtr: w == nil} }
}

func goToTransactionDetails(tx model.Transaction) tea.Cmd {
	return func() tea.Msg { return navMsg{view: ViewTransactionDetails, tx: &tx} }
}

// screen is one mounted view. Update returns the (possibly replaced)
// screen model; a screen is torn down simply by being dropped, and any
// timers it scheduled die against its wizard epoch.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
}

// inputCapturer lets a screen claim the keyboard while an embedded
// form is focused, suppressing the shell's global shortcuts.
type inputCapturer interface {
	capturesInput() bool
}

// App is the navigation shell and the bubbletea root model.
type App struct {
	deps Deps

	view         View
	activeWallet *model.Wallet
	activeTx     *model.Transaction

	current screen
	width   int
	height  int
}

func NewApp(deps Deps) *App {
	a := &App{deps: deps, view: ViewHome}
	a.current = a.mount(ViewHome)
	return a
}

func (a *App) Init() tea.Cmd {
	return a.current.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.tabBarVisible() && !a.inputCaptured() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				return a, goTo(ViewHome)
			case "2":
				return a, goTo(ViewWallets)
			case "3":
				return a, goToSend(nil)
			case "4":
				return a, goTo(ViewCards)
			case "5":
				return a, goTo(ViewEngine)
			}
		}

	case navMsg:
		a.navigate(msg)
		return a, a.current.Init()
	}

	next, cmd := a.current.Update(msg)
	a.current = next
	return a, cmd
}

func (a *App) View() string {
	body := a.current.View()
	if !a.tabBarVisible() {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.tabBarView())
}

func (a *App) navigate(msg navMsg) {
	if msg.clearPtr {
		a.activeWallet = nil
		a.activeTx = nil
	}
	if msg.wallet != nil {
		a.activeWallet = msg.wallet
	}
	if msg.tx != nil {
		a.activeTx = msg.tx
	}
	a.view = msg.view
	a.current = a.mount(msg.view)
}

// mount builds a fresh screen model for a view. Screens requiring an
// active entity receive the pointer and fall back internally when it
// is absent.
func (a *App) mount(v View) screen {
	switch v {
	case ViewHome:
		return newHomeScreen(a.deps)
	case ViewWallets:
		return newWalletsScreen(a.deps)
	case ViewSend:
		return newSendScreen(a.deps, a.activeWallet)
	case ViewCards:
		return newCardsScreen(a.deps)
	case ViewEngine:
		return newEngineScreen(a.deps)
	case ViewConvert:
		return newConvertScreen(a.deps)
	case ViewReceive:
		return newReceiveScreen(a.deps, a.activeWallet)
	case ViewTransactionDetails:
		return newTransactionDetailsScreen(a.deps, a.activeTx)
	case ViewProfile:
		return newProfileScreen(a.deps)
	case ViewNotifications:
		return newNotificationsScreen(a.deps)
	default:
		return newHomeScreen(a.deps)
	}
}

func (a *App) tabBarVisible() bool {
	return !fullScreenViews[a.view]
}

func (a *App) inputCaptured() bool {
	if c, ok := a.current.(inputCapturer); ok {
		return c.capturesInput()
	}
	return false
}

// CurrentView is exposed for the shell tests.
func (a *App) CurrentView() View {
	return a.view
}

// ActiveWallet is exposed for the shell tests.
func (a *App) ActiveWallet() *model.Wallet {
	return a.activeWallet
}

// ActiveTransaction is exposed for the shell tests.
func (a *App) ActiveTransaction() *model.Transaction {
	return a.activeTx
}
