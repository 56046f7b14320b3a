package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
	"github.com/zerah-labs/zerah/internal/utils"
)

// walletsScreen lists every wallet with its balance and opens new
// zero-balance wallets from the remaining currency catalog.
type walletsScreen struct {
	deps Deps

	wallets []model.Wallet
	idx     int

	adding     bool
	pickedCode string
	form       *huh.Form
	errMsg     string
}

func newWalletsScreen(deps Deps) *walletsScreen {
	return &walletsScreen{
		deps:    deps,
		wallets: deps.Svc.Wallet.Wallets(),
	}
}

func (s *walletsScreen) Init() tea.Cmd {
	return nil
}

// capturesInput claims the keyboard while the add-wallet picker is up.
func (s *walletsScreen) capturesInput() bool {
	return s.adding
}

func (s *walletsScreen) reload() {
	s.wallets = s.deps.Svc.Wallet.Wallets()
	if s.idx >= len(s.wallets) {
		s.idx = len(s.wallets) - 1
	}
	if s.idx < 0 {
		s.idx = 0
	}
}

func (s *walletsScreen) newPickerForm() *huh.Form {
	available := s.deps.Svc.Wallet.AvailableToOpen()

	opts := make([]huh.Option[string], 0, len(available))
	for _, c := range available {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", c.Code, c.Label), c.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Open a new wallet").
				Options(opts...).
				Value(&s.pickedCode),
		),
	)
}

func (s *walletsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	if s.adding {
		return s.updatePicker(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.idx > 0 {
			s.idx--
		}
	case "down", "j":
		if s.idx < len(s.wallets)-1 {
			s.idx++
		}
	case "enter", "r":
		if s.idx < len(s.wallets) {
			return s, goToReceive(s.wallets[s.idx])
		}
	case "s":
		if s.idx < len(s.wallets) {
			w := s.wallets[s.idx]
			return s, goToSend(&w)
		}
	case "a":
		if len(s.deps.Svc.Wallet.AvailableToOpen()) == 0 {
			s.errMsg = "All supported currencies already have a wallet."
			return s, nil
		}
		s.adding = true
		s.errMsg = ""
		s.pickedCode = ""
		s.form = s.newPickerForm()
		return s, s.form.Init()
	}
	return s, nil
}

func (s *walletsScreen) updatePicker(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		s.adding = false
		s.form = nil
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.adding = false
		s.form = nil
		return s, s.openWallet(s.pickedCode)
	}
	return s, cmd
}

func (s *walletsScreen) openWallet(code string) tea.Cmd {
	var picked *model.CurrencyOption
	for _, c := range model.AvailableCurrencies() {
		if c.Code == code {
			c := c
			picked = &c
			break
		}
	}
	if picked == nil {
		return nil
	}

	if _, err := s.deps.Svc.Wallet.OpenWallet(*picked); err != nil {
		if errors.Is(err, store.ErrDuplicateCurrency) {
			s.errMsg = "You already hold a " + code + " wallet."
		} else {
			s.errMsg = "Could not open wallet: " + err.Error()
		}
		s.deps.Log.Warn().Err(err).Str("currency", code).Msg("open wallet rejected")
		return nil
	}

	s.deps.Log.Info().Str("currency", code).Msg("wallet opened")
	s.reload()
	s.idx = len(s.wallets) - 1
	return nil
}

func (s *walletsScreen) View() string {
	if s.adding && s.form != nil {
		return titleStyle.Render("Add Wallet") + "\n\n" + s.form.View() +
			"\n" + helpStyle.Render("esc cancel")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Wallets") + "\n")
	b.WriteString(subtitleStyle.Render("Estimated total "+
		utils.FormatAmount("$", s.deps.Svc.Wallet.EstimatedTotalUSD())) + "\n\n")

	if s.errMsg != "" {
		b.WriteString(errorStyle.Render(s.errMsg) + "\n\n")
	}

	for i, w := range s.wallets {
		cursor := "  "
		if i == s.idx {
			cursor = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %-16s %s\n",
			cursor, selectedStyle.Render(w.Currency), w.Label,
			utils.FormatAmount(w.Symbol, w.Balance)))
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ select • enter receive • s send • a add wallet"))
	return b.String()
}
