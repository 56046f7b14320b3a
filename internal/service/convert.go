package service

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
)

var ErrNonPositiveAmount = errors.New("amount must be greater than zero")

// ConversionQuote is the fully computed breakdown shown on the Convert
// screen and receipt. All values keep full precision; rounding to two
// decimals happens at render time only.
type ConversionQuote struct {
	From      model.CurrencyOption
	To        model.CurrencyOption
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Net       decimal.Decimal
	Rate      decimal.Decimal
	Converted decimal.Decimal
}

// ConversionReceipt is the outcome of an executed conversion.
type ConversionReceipt struct {
	Ref   string
	Quote ConversionQuote
	Date  time.Time
}

type ConvertService struct {
	repo store.Repository
	ids  ident.Generator
	fee  decimal.Decimal
}

func NewConvertService(repo store.Repository, ids ident.Generator) *ConvertService {
	fee, err := decimal.NewFromString(constants.FeeRateStr)
	if err != nil {
		panic("invalid fee rate constant: " + constants.FeeRateStr)
	}
	return &ConvertService{repo: repo, ids: ids, fee: fee}
}

// Quote computes fee = amount x 0.001, net = amount - fee and
// converted = net x rate. A same-currency pair always uses rate 1, no
// matter what the caller passes.
func (cs *ConvertService) Quote(from, to model.CurrencyOption, amount, rate decimal.Decimal) ConversionQuote {
	if strings.EqualFold(from.Code, to.Code) {
		rate = decimal.NewFromInt(1)
	}

	fee := amount.Mul(cs.fee)
	net := amount.Sub(fee)

	return ConversionQuote{
		From:      from,
		To:        to,
		Amount:    amount,
		Fee:       fee,
		Net:       net,
		Rate:      rate,
		Converted: net.Mul(rate),
	}
}

// Execute settles a quote: it generates the ZRH reference, applies the
// movement to any held wallets (debit source, credit target with the
// converted net) and appends an activity record. Currencies without a
// wallet, or a source balance below the amount, skip that side of the
// movement; the conversion itself still completes.
func (cs *ConvertService) Execute(q ConversionQuote) (*ConversionReceipt, error) {
	if !q.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	ref := cs.ids.Ref(constants.ConvertRefPrefix)
	now := time.Now()

	if err := cs.repo.DebitWallet(q.From.Code, q.Amount); err != nil {
		if !errors.Is(err, store.ErrWalletNotFound) && !errors.Is(err, store.ErrInsufficientFunds) {
			return nil, err
		}
	}
	if err := cs.repo.CreditWallet(q.To.Code, q.Converted); err != nil {
		if !errors.Is(err, store.ErrWalletNotFound) {
			return nil, err
		}
	}

	cs.repo.AppendTransaction(model.Transaction{
		ID:        ref,
		Name:      "Currency Swap " + q.From.Code + " → " + q.To.Code,
		Date:      now.Format("Jan 2, 3:04 PM"),
		Amount:    q.Converted,
		Currency:  q.To.Code,
		Type:      model.TypeIncome,
		Icon:      "swap_horiz",
		Status:    model.StatusCompleted,
		Reference: ref,
	})

	return &ConversionReceipt{Ref: ref, Quote: q, Date: now}, nil
}
