package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
)

var (
	ErrBeneficiaryIncomplete = errors.New("beneficiary name and account number are required")
)

// TransferRequest is everything the Send flow collects before the PIN
// gate.
type TransferRequest struct {
	Currency    string
	Amount      decimal.Decimal
	Beneficiary model.Beneficiary
}

// TransferReceipt is the outcome of a settled transfer.
type TransferReceipt struct {
	Ref         string
	Amount      decimal.Decimal
	Currency    string
	Symbol      string
	Beneficiary model.Beneficiary
	Date        time.Time
}

type TransferService struct {
	repo store.Repository
	ids  ident.Generator
}

func NewTransferService(repo store.Repository, ids ident.Generator) *TransferService {
	return &TransferService{repo: repo, ids: ids}
}

// ValidateAmount mirrors the continue-button gate: positive and within
// the source wallet's balance.
func (ts *TransferService) ValidateAmount(currency string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	w, err := ts.repo.WalletByCurrency(currency)
	if err != nil {
		return err
	}
	if amount.GreaterThan(w.Balance) {
		return store.ErrInsufficientFunds
	}
	return nil
}

// ValidateBeneficiary requires name and account number; bank name is
// collected but only non-emptiness of the two key fields blocks the
// form.
func (ts *TransferService) ValidateBeneficiary(b model.Beneficiary) error {
	if strings.TrimSpace(b.Name) == "" || strings.TrimSpace(b.AccountNumber) == "" {
		return ErrBeneficiaryIncomplete
	}
	return nil
}

// Execute settles a transfer: re-validates, debits the source wallet
// and appends the expense to the activity feed.
func (ts *TransferService) Execute(req TransferRequest) (*TransferReceipt, error) {
	if err := ts.ValidateAmount(req.Currency, req.Amount); err != nil {
		return nil, err
	}
	if err := ts.ValidateBeneficiary(req.Beneficiary); err != nil {
		return nil, err
	}

	w, err := ts.repo.WalletByCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	if err := ts.repo.DebitWallet(req.Currency, req.Amount); err != nil {
		return nil, fmt.Errorf("debit %s wallet: %w", req.Currency, err)
	}

	ref := ts.ids.Ref(constants.TransferRefPrefix)
	now := time.Now()

	ts.repo.AppendTransaction(model.Transaction{
		ID:        ref,
		Name:      req.Beneficiary.Name,
		Date:      now.Format("Jan 2, 3:04 PM"),
		Amount:    req.Amount.Neg(),
		Currency:  req.Currency,
		Type:      model.TypeExpense,
		Icon:      "send",
		Status:    model.StatusCompleted,
		Reference: ref,
	})

	return &TransferReceipt{
		Ref:         ref,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Symbol:      w.Symbol,
		Beneficiary: req.Beneficiary,
		Date:        now,
	}, nil
}
