package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/ui/flow"
	"github.com/zerah-labs/zerah/internal/ui/keypad"
)

const (
	cardBrowse     flow.Stage = "browse"
	cardPin        flow.Stage = "pin"
	cardNewPick    flow.Stage = "new-pick"
	cardProcessing flow.Stage = "processing"
	cardIssued     flow.Stage = "issued"
)

// cardAction names what a completed PIN entry authorizes.
type cardAction int

const (
	actionNone cardAction = iota
	actionToggleFreeze
	actionRevealDetails
	actionCreateCard
)

// bannerExpireMsg clears the status banner. seq drops banners that were
// replaced before their timer fired.
type bannerExpireMsg struct {
	seq int64
}

type cardsScreen struct {
	deps    Deps
	machine *flow.Machine
	pin     *keypad.PinPad
	spin    spinner.Model

	cards []model.Card
	idx   int

	// showDetails is shared across the carousel: only the active card
	// ever renders unmasked.
	showDetails bool

	action     cardAction
	pinPending bool
	pinErr     string

	banner    string
	bannerSeq int64

	newCurrency string
	pickForm    *huh.Form
	issued      *model.Card
}

func newCardsScreen(deps Deps) *cardsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	return &cardsScreen{
		deps:    deps,
		machine: flow.New(cardBrowse, cardPin, cardNewPick, cardProcessing, cardIssued),
		pin:     keypad.NewPinPad(),
		spin:    sp,
		cards:   deps.Svc.Card.Cards(),
	}
}

func (s *cardsScreen) Init() tea.Cmd {
	return nil
}

// capturesInput claims the keyboard whenever the screen is inside the
// PIN gate or the creation wizard, so digits reach the pad instead of
// the shell's tab shortcuts.
func (s *cardsScreen) capturesInput() bool {
	return s.machine.Stage() != cardBrowse
}

func (s *cardsScreen) card() *model.Card {
	if len(s.cards) == 0 {
		return nil
	}
	return &s.cards[s.idx]
}

// initiateAction opens the PIN gate for an action.
func (s *cardsScreen) initiateAction(action cardAction) {
	s.action = action
	s.pin.Clear()
	s.pinErr = ""
	s.pinPending = false
	s.machine.GoTo(cardPin)
}

func (s *cardsScreen) showBanner(text string) tea.Cmd {
	s.banner = text
	s.bannerSeq++
	seq := s.bannerSeq
	return tea.Tick(constants.StatusBannerDelay, func(time.Time) tea.Msg {
		return bannerExpireMsg{seq: seq}
	})
}

func (s *cardsScreen) newPickForm() *huh.Form {
	opts := make([]huh.Option[string], 0, len(model.ConvertCurrencies()))
	for _, c := range model.ConvertCurrencies() {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", c.Code, c.Label), c.Code))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Card currency").
				Description("Each currency issues a different tier.").
				Options(opts...).
				Value(&s.newCurrency),
		),
	)
}

func (s *cardsScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.AdvanceMsg:
		s.machine.Apply(msg)
		return s, nil

	case bannerExpireMsg:
		if msg.seq == s.bannerSeq {
			s.banner = ""
		}
		return s, nil

	case pinDelayMsg:
		return s, s.resolvePin(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		if s.machine.Stage() == cardProcessing {
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.machine.Stage() == cardNewPick && s.pickForm != nil {
		return s.updatePickForm(msg)
	}
	return s, nil
}

func (s *cardsScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch s.machine.Stage() {
	case cardBrowse:
		switch msg.String() {
		case "left", "h":
			if len(s.cards) > 0 {
				s.idx = (s.idx - 1 + len(s.cards)) % len(s.cards)
			}
		case "right", "l":
			if len(s.cards) > 0 {
				s.idx = (s.idx + 1) % len(s.cards)
			}
		case "v":
			if s.card() != nil {
				s.initiateAction(actionRevealDetails)
			}
		case "f":
			if s.card() != nil {
				s.initiateAction(actionToggleFreeze)
			}
		case "n":
			s.newCurrency = ""
			s.pickForm = s.newPickForm()
			s.machine.GoTo(cardNewPick)
			return s, s.pickForm.Init()
		}
		return s, nil

	case cardPin:
		return s.handlePinKey(msg)

	case cardNewPick:
		if msg.String() == "esc" {
			s.pickForm = nil
			s.machine.GoTo(cardBrowse)
			return s, nil
		}
		return s.updatePickForm(msg)

	case cardIssued:
		switch msg.String() {
		case "enter", "esc":
			issued := s.issued
			s.cards = s.deps.Svc.Card.Cards()
			if len(s.cards) > 0 {
				s.idx = len(s.cards) - 1
			}
			s.machine.GoTo(cardBrowse)
			if issued != nil {
				return s, s.showBanner(fmt.Sprintf("New %s Virtual Card Created!", issued.Currency))
			}
		}
	}
	return s, nil
}

func (s *cardsScreen) handlePinKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		action := s.action
		s.action = actionNone
		s.pin.Clear()
		s.pinPending = false
		s.pinErr = ""
		if action == actionCreateCard {
			s.pickForm = s.newPickForm()
			s.machine.GoTo(cardNewPick)
			return s, s.pickForm.Init()
		}
		s.machine.GoTo(cardBrowse)
		return s, nil
	case "backspace":
		if !s.pinPending {
			s.pin.Backspace()
		}
		return s, nil
	}

	if s.pinPending {
		return s, nil
	}
	if r := keyRune(msg); r >= '0' && r <= '9' {
		s.pin.Press(r)
		if s.pin.Complete() {
			s.pinPending = true
			epoch := s.machine.Epoch()
			return s, tea.Tick(constants.CardPinDelay, func(time.Time) tea.Msg {
				return pinDelayMsg{epoch: epoch}
			})
		}
	}
	return s, nil
}

// resolvePin settles a completed PIN entry after its visual delay and
// runs the gated action.
func (s *cardsScreen) resolvePin(msg pinDelayMsg) tea.Cmd {
	if msg.epoch != s.machine.Epoch() || s.machine.Stage() != cardPin {
		return nil
	}
	s.pinPending = false

	if !s.deps.Svc.Pin.VerifyPin(s.pin.Value()) {
		s.pin.Clear()
		s.pinErr = "Incorrect PIN. Try again."
		return nil
	}
	s.pin.Clear()
	s.pinErr = ""

	action := s.action
	s.action = actionNone

	switch action {
	case actionToggleFreeze:
		s.machine.GoTo(cardBrowse)
		return s.toggleFreeze()

	case actionRevealDetails:
		s.showDetails = !s.showDetails
		s.machine.GoTo(cardBrowse)
		if s.showDetails {
			return s.showBanner("Card Details Revealed")
		}
		return s.showBanner("Card Details Hidden")

	case actionCreateCard:
		card := s.deps.Svc.Card.Create(s.newCurrency)
		s.issued = &card
		s.deps.Log.Info().Str("currency", card.Currency).Str("tier", string(card.Tier)).
			Msg("virtual card issued")

		s.machine.GoTo(cardProcessing)
		return tea.Batch(
			s.spin.Tick,
			s.machine.AutoAdvance(constants.CardCreateDelay, cardIssued),
		)
	}
	return nil
}

func (s *cardsScreen) updatePickForm(msg tea.Msg) (screen, tea.Cmd) {
	form, cmd := s.pickForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.pickForm = f
	}

	if s.pickForm.State == huh.StateCompleted {
		s.pickForm = nil
		s.initiateAction(actionCreateCard)
		return s, nil
	}
	return s, cmd
}

func (s *cardsScreen) toggleFreeze() tea.Cmd {
	card := s.card()
	if card == nil {
		return nil
	}

	frozen, err := s.deps.Svc.Card.ToggleFreeze(card.ID)
	if err != nil {
		s.deps.Log.Error().Err(err).Str("card", card.ID).Msg("freeze toggle failed")
		return nil
	}
	s.cards = s.deps.Svc.Card.Cards()

	if frozen {
		return s.showBanner("Card Frozen Successfully")
	}
	return s.showBanner("Card Unfrozen Successfully")
}

func (s *cardsScreen) View() string {
	switch s.machine.Stage() {
	case cardPin:
		return s.pinGateView()
	case cardNewPick:
		if s.pickForm != nil {
			return titleStyle.Render("New Virtual Card") + "\n\n" + s.pickForm.View() +
				"\n" + helpStyle.Render("esc cancel")
		}
		return ""
	case cardProcessing:
		return processingView(s.spin, "Issuing Card", "Provisioning your new virtual card...")
	case cardIssued:
		return s.issuedView()
	default:
		return s.browseView()
	}
}

func (s *cardsScreen) browseView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Virtual Cards") + "  " +
		subtitleStyle.Render("Secure your spending") + "\n\n")

	if s.banner != "" {
		b.WriteString(bannerStyle.Render(s.banner) + "\n\n")
	}

	card := s.card()
	if card == nil {
		b.WriteString(subtitleStyle.Render("No cards yet. Press n to issue one.") + "\n")
		b.WriteString("\n" + helpStyle.Render("n new card"))
		return b.String()
	}

	b.WriteString(s.cardFace(*card, s.showDetails) + "\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Card %d of %d", s.idx+1, len(s.cards))) + "\n\n")

	b.WriteString(labelStyle.Render("RECENT ACTIVITY") + "\n")
	activity := s.deps.Svc.Card.Activity(card.Currency)
	if len(activity) == 0 {
		b.WriteString(subtitleStyle.Render("No activity in this currency.") + "\n")
	}
	for _, tx := range activity {
		symbol := currencySymbol(s.deps.Svc.Wallet.Wallets(), tx.Currency)
		b.WriteString(fmt.Sprintf("  %-24s %s  %s\n",
			tx.Name, subtitleStyle.Render(tx.Date),
			amountColor(tx.Type == model.TypeIncome).Render(signedAmount(symbol, tx))))
	}

	reveal := "v reveal details"
	if s.showDetails {
		reveal = "v hide details"
	}
	freeze := "f freeze"
	if card.Frozen {
		freeze = "f unfreeze"
	}
	b.WriteString("\n" + helpStyle.Render("←/→ switch card • "+reveal+" • "+freeze+" • n new card"))
	return b.String()
}

func (s *cardsScreen) cardFace(card model.Card, unmasked bool) string {
	pan := "•••• •••• •••• " + card.LastFour
	cvv := "•••"
	if unmasked {
		pan = card.PAN
		cvv = card.CVV
	}

	face := fmt.Sprintf("%s %s\n\n%s\nEXP %s  CVV %s\n%s",
		selectedStyle.Render(string(card.Tier)), subtitleStyle.Render(card.Currency),
		amountStyle.Render(pan),
		card.Expiry, cvv,
		card.Holder,
	)
	if card.Frozen {
		face += "\n" + frozenStyle.Render("FROZEN")
	}
	return cardStyle.Render(face)
}

func (s *cardsScreen) pinGateView() string {
	title := "Security Check"
	sub := "Enter your PIN to continue"
	switch s.action {
	case actionToggleFreeze:
		if card := s.card(); card != nil && card.Frozen {
			sub = "Confirm unfreezing this card"
		} else {
			sub = "Confirm freezing this card"
		}
	case actionRevealDetails:
		if s.showDetails {
			sub = "Confirm hiding card details"
		} else {
			sub = "Card details stay masked until you verify"
		}
	case actionCreateCard:
		title = "Authorize New Card"
		sub = fmt.Sprintf("Confirm issuing a %s card", s.newCurrency)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(subtitleStyle.Render(sub) + "\n\n")
	b.WriteString(pinDots(s.pin.Len()) + "\n\n")
	if s.pinErr != "" {
		b.WriteString(errorStyle.Render(s.pinErr) + "\n\n")
	}
	b.WriteString(helpStyle.Render("0-9 digits • backspace delete • esc cancel"))
	return b.String()
}

func (s *cardsScreen) issuedView() string {
	card := s.issued
	if card == nil {
		return errorStyle.Render("No card issued")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Card Ready!") + "\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Your %s %s card is active.",
		card.Currency, card.Tier)) + "\n\n")
	b.WriteString(s.cardFace(*card, true) + "\n\n")
	b.WriteString(helpStyle.Render("enter back to cards"))
	return b.String()
}
