package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/service"
	"github.com/zerah-labs/zerah/internal/ui/flow"
	"github.com/zerah-labs/zerah/internal/ui/keypad"
	"github.com/zerah-labs/zerah/internal/utils"
)

const (
	sendAmount      flow.Stage = "amount"
	sendBeneficiary flow.Stage = "beneficiary"
	sendPin         flow.Stage = "pin"
	sendProcessing  flow.Stage = "processing"
	sendSuccess     flow.Stage = "success"
)

// pinDelayMsg fires after the short visual delay that follows the
// fourth PIN digit. Epoch-guarded like the wizard's own transitions.
type pinDelayMsg struct {
	epoch int64
}

type sendScreen struct {
	deps    Deps
	machine *flow.Machine
	pad     *keypad.AmountPad
	pin     *keypad.PinPad
	spin    spinner.Model

	wallets   []model.Wallet
	walletIdx int

	benName    string
	benBank    string
	benAccount string
	benIdent   string
	form       *huh.Form

	pinPending bool
	errMsg     string
	receipt    *service.TransferReceipt
}

// newSendScreen defaults to the active wallet when the shell set one,
// else the first wallet in the collection.
func newSendScreen(deps Deps, active *model.Wallet) *sendScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	wallets := deps.Svc.Wallet.Wallets()
	idx := 0
	if active != nil {
		for i, w := range wallets {
			if w.Currency == active.Currency {
				idx = i
				break
			}
		}
	}

	return &sendScreen{
		deps:      deps,
		machine:   flow.New(sendAmount, sendBeneficiary, sendPin, sendProcessing, sendSuccess),
		pad:       keypad.NewAmountPad(),
		pin:       keypad.NewPinPad(),
		spin:      sp,
		wallets:   wallets,
		walletIdx: idx,
	}
}

func (s *sendScreen) wallet() model.Wallet {
	return s.wallets[s.walletIdx]
}

func (s *sendScreen) Init() tea.Cmd {
	return nil
}

func (s *sendScreen) newBeneficiaryForm() *huh.Form {
	required := func(field string) func(string) error {
		return func(v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recipient Name").
				Value(&s.benName).
				Validate(required("recipient name")),
			huh.NewInput().
				Title("Bank Name").
				Value(&s.benBank).
				Validate(required("bank name")),
			huh.NewInput().
				Title("Account Number").
				Value(&s.benAccount).
				Validate(required("account number")),
			huh.NewInput().
				Title("Reference (optional)").
				Value(&s.benIdent),
		),
	)
}

func (s *sendScreen) beneficiary() model.Beneficiary {
	return model.Beneficiary{
		Name:          strings.TrimSpace(s.benName),
		BankName:      strings.TrimSpace(s.benBank),
		AccountNumber: strings.TrimSpace(s.benAccount),
		Identifier:    strings.TrimSpace(s.benIdent),
	}
}

func (s *sendScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.AdvanceMsg:
		s.machine.Apply(msg)
		return s, nil

	case pinDelayMsg:
		return s, s.verifyPin(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		if s.machine.Stage() == sendProcessing {
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Everything else may belong to the embedded beneficiary form.
	if s.machine.Stage() == sendBeneficiary && s.form != nil {
		return s.updateForm(msg)
	}
	return s, nil
}

func (s *sendScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch s.machine.Stage() {
	case sendAmount:
		switch msg.String() {
		case "esc":
			return s, goHome()
		case "backspace":
			s.pad.Backspace()
		case "w":
			s.walletIdx = (s.walletIdx + 1) % len(s.wallets)
		case "enter":
			amount := s.pad.Value()
			if err := s.deps.Svc.Transfer.ValidateAmount(s.wallet().Currency, amount); err != nil {
				return s, nil
			}
			s.errMsg = ""
			s.form = s.newBeneficiaryForm()
			s.machine.Advance()
			return s, s.form.Init()
		default:
			if r := keyRune(msg); r != 0 {
				s.pad.Press(r)
			}
		}
		return s, nil

	case sendBeneficiary:
		if msg.String() == "esc" {
			// Cancel back to the amount stage.
			s.form = nil
			s.machine.Back()
			return s, nil
		}
		return s.updateForm(msg)

	case sendPin:
		switch msg.String() {
		case "esc":
			// Cancel clears the entered digits.
			s.pin.Clear()
			s.pinPending = false
			s.errMsg = ""
			s.form = s.newBeneficiaryForm()
			s.machine.Back()
			return s, s.form.Init()
		case "backspace":
			if !s.pinPending {
				s.pin.Backspace()
			}
			return s, nil
		default:
			if s.pinPending {
				return s, nil
			}
			if r := keyRune(msg); r >= '0' && r <= '9' {
				s.pin.Press(r)
				if s.pin.Complete() {
					s.pinPending = true
					epoch := s.machine.Epoch()
					return s, tea.Tick(constants.TransferPinDelay, func(time.Time) tea.Msg {
						return pinDelayMsg{epoch: epoch}
					})
				}
			}
			return s, nil
		}

	case sendSuccess:
		switch msg.String() {
		case "enter", "esc":
			return s, goHome()
		}
	}
	return s, nil
}

func (s *sendScreen) updateForm(msg tea.Msg) (screen, tea.Cmd) {
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		if err := s.deps.Svc.Transfer.ValidateBeneficiary(s.beneficiary()); err != nil {
			// Shouldn't happen: the form enforces the required fields.
			s.errMsg = err.Error()
			s.form = s.newBeneficiaryForm()
			return s, s.form.Init()
		}
		s.pin.Clear()
		s.pinPending = false
		s.machine.Advance()
		return s, nil
	}
	return s, cmd
}

// verifyPin runs after the 300ms confirmation delay: a correct PIN
// settles the transfer and enters processing, a wrong one clears the
// pad.
func (s *sendScreen) verifyPin(msg pinDelayMsg) tea.Cmd {
	if msg.epoch != s.machine.Epoch() || s.machine.Stage() != sendPin {
		return nil
	}
	s.pinPending = false

	if !s.deps.Svc.Pin.VerifyPin(s.pin.Value()) {
		s.pin.Clear()
		s.errMsg = "Incorrect PIN. Try again."
		return nil
	}

	receipt, err := s.deps.Svc.Transfer.Execute(service.TransferRequest{
		Currency:    s.wallet().Currency,
		Amount:      s.pad.Value(),
		Beneficiary: s.beneficiary(),
	})
	if err != nil {
		if errors.Is(err, service.ErrBeneficiaryIncomplete) {
			s.errMsg = "Beneficiary details incomplete."
		} else {
			s.errMsg = "Transfer failed: " + err.Error()
		}
		s.deps.Log.Error().Err(err).Msg("transfer failed")
		s.pin.Clear()
		s.machine.GoTo(sendAmount)
		return nil
	}

	s.receipt = receipt
	s.errMsg = ""
	s.machine.Advance()
	return tea.Batch(
		s.spin.Tick,
		s.machine.AutoAdvance(constants.TransferProcessingDelay, sendSuccess),
	)
}

func (s *sendScreen) View() string {
	switch s.machine.Stage() {
	case sendBeneficiary:
		return s.beneficiaryView()
	case sendPin:
		return s.pinView()
	case sendProcessing:
		return processingView(s.spin, "Sending Funds", "Your request is being processed by the network...")
	case sendSuccess:
		return s.successView()
	default:
		return s.amountView()
	}
}

func (s *sendScreen) amountView() string {
	w := s.wallet()
	amount := s.pad.Value()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Send Money") + "\n\n")
	b.WriteString(labelStyle.Render("FROM WALLET") + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		selectedStyle.Render(w.Currency), w.Label,
		subtitleStyle.Render("Bal: "+utils.FormatAmount(w.Symbol, w.Balance))))

	b.WriteString(labelStyle.Render("AMOUNT") + "\n")
	b.WriteString(amountStyle.Render(w.Symbol+s.pad.Display()) + "\n\n")

	if s.errMsg != "" {
		b.WriteString(errorStyle.Render(s.errMsg) + "\n\n")
	}

	cont := "enter continue"
	switch {
	case !amount.IsPositive():
		cont = subtitleStyle.Render("enter an amount to continue")
	case amount.GreaterThan(w.Balance):
		cont = errorStyle.Render("amount exceeds balance")
	}
	b.WriteString(helpStyle.Render("0-9/. amount • w switch wallet • " + cont + " • esc back"))
	return b.String()
}

func (s *sendScreen) beneficiaryView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Beneficiary") + "\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Sending %s from your %s wallet",
		utils.FormatAmount(s.wallet().Symbol, s.pad.Value()), s.wallet().Currency)) + "\n\n")
	if s.form != nil {
		b.WriteString(s.form.View())
	}
	b.WriteString("\n" + helpStyle.Render("esc back to amount"))
	return b.String()
}

func (s *sendScreen) pinView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enter Security PIN") + "\n")
	b.WriteString(subtitleStyle.Render("Verify your identity to proceed") + "\n\n")
	b.WriteString(pinDots(s.pin.Len()) + "\n\n")
	if s.errMsg != "" {
		b.WriteString(errorStyle.Render(s.errMsg) + "\n\n")
	}
	b.WriteString(helpStyle.Render("0-9 digits • backspace delete • esc back"))
	return b.String()
}

func (s *sendScreen) successView() string {
	r := s.receipt
	if r == nil {
		return errorStyle.Render("No receipt available")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Transfer Sent!") + "\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s successfully sent to %s.",
		utils.FormatAmount(r.Symbol, r.Amount), r.Beneficiary.Name)) + "\n\n")

	receipt := fmt.Sprintf(
		"Amount Withdrawn  %s\n\nRecipient         %s\nBank              %s\nAccount           %s\nTransaction ID    %s",
		expenseStyle.Render("-"+utils.FormatAmount(r.Symbol, r.Amount)),
		r.Beneficiary.Name,
		r.Beneficiary.BankName,
		r.Beneficiary.AccountNumber,
		r.Ref,
	)
	b.WriteString(cardStyle.Render(receipt) + "\n")
	b.WriteString(subtitleStyle.Render(r.Date.Format("Jan 2, 2006 3:04 PM")) + "\n\n")
	b.WriteString(helpStyle.Render("enter done"))
	return b.String()
}

// pinDots renders the 4-slot PIN indicator.
func pinDots(filled int) string {
	var b strings.Builder
	for i := 0; i < constants.PinLength; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		if i < filled {
			b.WriteString(pinDotFilled.Render("●"))
		} else {
			b.WriteString(pinDotEmpty.Render("○"))
		}
	}
	return b.String()
}
