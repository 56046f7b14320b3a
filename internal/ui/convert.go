package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/rates"
	"github.com/zerah-labs/zerah/internal/service"
	"github.com/zerah-labs/zerah/internal/ui/flow"
	"github.com/zerah-labs/zerah/internal/ui/keypad"
	"github.com/zerah-labs/zerah/internal/utils"
)

const (
	convertInput      flow.Stage = "input"
	convertProcessing flow.Stage = "processing"
	convertSuccess    flow.Stage = "success"
)

// rateResultMsg carries a finished live-rate lookup. seq and the pair
// let the screen drop responses that were superseded before resolving.
type rateResultMsg struct {
	seq   int64
	from  string
	to    string
	quote *rates.Quote
	err   error
}

// rateTickMsg drives the periodic refresh while the input stage is up.
type rateTickMsg struct {
	seq int64
}

type convertScreen struct {
	deps    Deps
	machine *flow.Machine
	pad     *keypad.AmountPad
	spin    spinner.Model

	currencies []model.CurrencyOption
	fromIdx    int
	toIdx      int

	rate        decimal.Decimal
	sources     []rates.Source
	lastUpdated time.Time
	loadingRate bool
	rateSeq     int64

	receipt *service.ConversionReceipt
}

func newConvertScreen(deps Deps) *convertScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	currencies := model.ConvertCurrencies()
	s := &convertScreen{
		deps:       deps,
		machine:    flow.New(convertInput, convertProcessing, convertSuccess),
		pad:        keypad.NewAmountPadWith("450000"),
		spin:       sp,
		currencies: currencies,
		rate:       decimal.NewFromFloat(1605.00),
	}
	// Default pair NGN -> USD.
	s.fromIdx = s.indexOf("NGN")
	s.toIdx = s.indexOf("USD")
	return s
}

func (s *convertScreen) indexOf(code string) int {
	for i, c := range s.currencies {
		if c.Code == code {
			return i
		}
	}
	return 0
}

func (s *convertScreen) from() model.CurrencyOption { return s.currencies[s.fromIdx] }
func (s *convertScreen) to() model.CurrencyOption   { return s.currencies[s.toIdx] }

func (s *convertScreen) Init() tea.Cmd {
	return s.fetchRate()
}

// fetchRate starts a lookup for the current pair. Bumping the sequence
// first makes any still-in-flight response stale.
func (s *convertScreen) fetchRate() tea.Cmd {
	s.rateSeq++
	s.loadingRate = true

	seq := s.rateSeq
	from, to := s.from().Code, s.to().Code
	client := s.deps.Rates

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		quote, err := client.Fetch(ctx, from, to)
		return rateResultMsg{seq: seq, from: from, to: to, quote: quote, err: err}
	}
}

func (s *convertScreen) refreshInterval() time.Duration {
	if s.deps.Cfg != nil && s.deps.Cfg.Rates.RefreshSeconds > 0 {
		return time.Duration(s.deps.Cfg.Rates.RefreshSeconds) * time.Second
	}
	return constants.RateRefreshInterval
}

func (s *convertScreen) scheduleRefresh() tea.Cmd {
	seq := s.rateSeq
	return tea.Tick(s.refreshInterval(), func(time.Time) tea.Msg {
		return rateTickMsg{seq: seq}
	})
}

func (s *convertScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rateResultMsg:
		// Drop superseded lookups: the pair changed or a newer fetch
		// started while this one was in flight.
		if msg.seq != s.rateSeq || msg.from != s.from().Code || msg.to != s.to().Code {
			return s, nil
		}
		s.loadingRate = false
		if msg.err != nil {
			s.deps.Log.Warn().Err(msg.err).
				Str("from", msg.from).Str("to", msg.to).
				Msg("live rate lookup failed, keeping previous rate")
		} else {
			s.rate = msg.quote.Rate
			s.sources = msg.quote.Sources
			s.lastUpdated = msg.quote.FetchedAt
		}
		if s.machine.Stage() == convertInput {
			return s, s.scheduleRefresh()
		}
		return s, nil

	case rateTickMsg:
		if msg.seq != s.rateSeq || s.machine.Stage() != convertInput {
			return s, nil
		}
		return s, s.fetchRate()

	case flow.AdvanceMsg:
		s.machine.Apply(msg)
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		if s.machine.Stage() == convertProcessing {
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *convertScreen) handleKey(msg tea.KeyMsg) (screen, tea.Cmd) {
	switch s.machine.Stage() {
	case convertInput:
		switch msg.String() {
		case "esc":
			return s, goHome()
		case "backspace":
			s.pad.Backspace()
		case "s":
			s.fromIdx, s.toIdx = s.toIdx, s.fromIdx
			return s, s.fetchRate()
		case "f":
			s.fromIdx = (s.fromIdx + 1) % len(s.currencies)
			return s, s.fetchRate()
		case "t":
			s.toIdx = (s.toIdx + 1) % len(s.currencies)
			return s, s.fetchRate()
		case "r":
			return s, s.fetchRate()
		case "enter":
			return s, s.confirm()
		default:
			if r := keyRune(msg); r != 0 {
				s.pad.Press(r)
			}
		}

	case convertSuccess:
		switch msg.String() {
		case "enter", "esc":
			return s, goHome()
		}
	}
	return s, nil
}

// confirm executes the swap and enters the processing stage. The stage
// check makes a double-tapped confirm inert.
func (s *convertScreen) confirm() tea.Cmd {
	if s.machine.Stage() != convertInput {
		return nil
	}
	amount := s.pad.Value()
	if !amount.IsPositive() {
		return nil
	}

	quote := s.deps.Svc.Convert.Quote(s.from(), s.to(), amount, s.rate)
	receipt, err := s.deps.Svc.Convert.Execute(quote)
	if err != nil {
		s.deps.Log.Error().Err(err).Msg("conversion failed")
		return nil
	}
	s.receipt = receipt

	s.machine.Advance()
	return tea.Batch(
		s.spin.Tick,
		s.machine.AutoAdvance(constants.ConvertProcessingDelay, convertSuccess),
	)
}

func (s *convertScreen) quote() service.ConversionQuote {
	return s.deps.Svc.Convert.Quote(s.from(), s.to(), s.pad.Value(), s.rate)
}

func (s *convertScreen) View() string {
	switch s.machine.Stage() {
	case convertProcessing:
		return processingView(s.spin, "Processing", "Finalizing your currency swap at the best market rate...")
	case convertSuccess:
		return s.successView()
	default:
		return s.inputView()
	}
}

func (s *convertScreen) inputView() string {
	q := s.quote()

	status := "updating..."
	if !s.lastUpdated.IsZero() {
		status = "updated " + s.lastUpdated.Format("15:04:05")
	}
	if s.loadingRate {
		status = "fetching rate..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Convert") + "  " + subtitleStyle.Render(status) + "\n\n")

	b.WriteString(labelStyle.Render("FROM") + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		selectedStyle.Render(s.from().Code), s.from().Symbol,
		amountStyle.Render(s.pad.Display())))

	b.WriteString(labelStyle.Render("TO") + "\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		selectedStyle.Render(s.to().Code), s.to().Symbol,
		subtitleStyle.Render(q.Converted.Round(2).StringFixed(2))))

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("1 %s = %s %s", s.from().Code, s.rate.String(), s.to().Code)) + "\n\n")

	details := fmt.Sprintf("Subtotal   %s\nFee (0.1%%) %s\nNet        %s",
		utils.FormatAmount(s.from().Symbol, q.Amount),
		utils.FormatAmount(s.from().Symbol, q.Fee),
		utils.FormatAmount(s.to().Symbol, q.Converted))
	b.WriteString(panelStyle.Render(details) + "\n")

	if len(s.sources) > 0 {
		b.WriteString("\n" + labelStyle.Render("SOURCES") + "\n")
		for _, src := range s.sources {
			title := src.Title
			if title == "" {
				title = src.URI
			}
			b.WriteString(subtitleStyle.Render("• "+title) + "\n")
		}
	}

	confirm := "enter confirm swap"
	if !q.Amount.IsPositive() {
		confirm = subtitleStyle.Render("enter amount to continue")
	}
	b.WriteString("\n" + helpStyle.Render("0-9/. amount • s swap • f/t cycle currency • r refresh • "+confirm+" • esc back"))
	return b.String()
}

func (s *convertScreen) successView() string {
	r := s.receipt
	if r == nil {
		return errorStyle.Render("No receipt available")
	}
	q := r.Quote

	var b strings.Builder
	b.WriteString(titleStyle.Render("Conversion Successful!") + "\n")
	b.WriteString(subtitleStyle.Render("Funds added to your "+q.To.Code+" wallet.") + "\n\n")

	receipt := fmt.Sprintf(
		"Total Received  %s\n\nTransaction ID  %s\nFrom            %s (%s)\nTo              %s (%s)\nRate            1 %s = %s %s\nFee             %s",
		titleStyle.Render(utils.FormatAmount(q.To.Symbol, q.Converted)),
		r.Ref,
		q.From.Code, utils.FormatAmount(q.From.Symbol, q.Amount),
		q.To.Code, utils.FormatAmount(q.To.Symbol, q.Converted),
		q.From.Code, q.Rate.Round(4).StringFixed(4), q.To.Code,
		utils.FormatAmount(q.From.Symbol, q.Fee),
	)
	b.WriteString(cardStyle.Render(receipt) + "\n")
	b.WriteString(subtitleStyle.Render("Settled Instantly • "+r.Date.Format("Jan 2, 2006")) + "\n\n")
	b.WriteString(helpStyle.Render("enter back to dashboard"))
	return b.String()
}

// keyRune extracts a keypad rune from a key press, if any.
func keyRune(msg tea.KeyMsg) rune {
	str := msg.String()
	if len(str) != 1 {
		return 0
	}
	r := rune(str[0])
	if (r >= '0' && r <= '9') || r == '.' {
		return r
	}
	return 0
}

// processingView is the shared fixed-delay settlement screen.
func processingView(sp spinner.Model, title, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		sp.View()+" "+titleStyle.Render(strings.ToUpper(title)),
		"",
		subtitleStyle.Render(body),
	)
}
