package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
)

func validBeneficiary() model.Beneficiary {
	return model.Beneficiary{
		Name:          "Jane Doe",
		BankName:      "First Bank",
		AccountNumber: "0123456789",
	}
}

func TestTransferService_ValidateAmount(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	ts := NewTransferService(repo, &stubIDs{ref: "AAAAAAAA"})

	assert.NoError(t, ts.ValidateAmount("USD", dec("500")))
	assert.NoError(t, ts.ValidateAmount("USD", dec("12450")))

	assert.ErrorIs(t, ts.ValidateAmount("USD", dec("0")), ErrNonPositiveAmount)
	assert.ErrorIs(t, ts.ValidateAmount("USD", dec("-10")), ErrNonPositiveAmount)
	assert.ErrorIs(t, ts.ValidateAmount("USD", dec("12450.01")), store.ErrInsufficientFunds)
	assert.ErrorIs(t, ts.ValidateAmount("CHF", dec("10")), store.ErrWalletNotFound)
}

func TestTransferService_ValidateBeneficiary(t *testing.T) {
	ts := NewTransferService(store.NewEmptyStore(), &stubIDs{ref: "AAAAAAAA"})

	assert.NoError(t, ts.ValidateBeneficiary(validBeneficiary()))

	// Bank name alone does not block the form.
	b := validBeneficiary()
	b.BankName = ""
	assert.NoError(t, ts.ValidateBeneficiary(b))

	b = validBeneficiary()
	b.Name = "   "
	assert.ErrorIs(t, ts.ValidateBeneficiary(b), ErrBeneficiaryIncomplete)

	b = validBeneficiary()
	b.AccountNumber = ""
	assert.ErrorIs(t, ts.ValidateBeneficiary(b), ErrBeneficiaryIncomplete)
}

func TestTransferService_ExecuteDebitsAndRecords(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	ts := NewTransferService(repo, &stubIDs{ref: "7GH2KL9M"})

	receipt, err := ts.Execute(TransferRequest{
		Currency:    "USD",
		Amount:      dec("500"),
		Beneficiary: validBeneficiary(),
	})
	require.NoError(t, err)

	assert.Equal(t, "TXN-7GH2KL9M", receipt.Ref)
	assert.Equal(t, "$", receipt.Symbol)
	assert.Equal(t, "Jane Doe", receipt.Beneficiary.Name)

	w, _ := repo.WalletByCurrency("USD")
	assert.True(t, w.Balance.Equal(dec("11950")), "balance %s", w.Balance)

	txs := repo.Transactions()
	require.Len(t, txs, 5)
	assert.Equal(t, "Jane Doe", txs[0].Name)
	assert.True(t, txs[0].Amount.Equal(dec("-500")))
	assert.Equal(t, model.TypeExpense, txs[0].Type)
	assert.Equal(t, model.StatusCompleted, txs[0].Status)
}

func TestTransferService_ExecuteRejectsOverdraft(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	ts := NewTransferService(repo, &stubIDs{ref: "AAAAAAAA"})

	_, err := ts.Execute(TransferRequest{
		Currency:    "GBP",
		Amount:      dec("4120.01"),
		Beneficiary: validBeneficiary(),
	})
	assert.ErrorIs(t, err, store.ErrInsufficientFunds)

	// Nothing moved, nothing recorded.
	w, _ := repo.WalletByCurrency("GBP")
	assert.True(t, w.Balance.Equal(dec("4120")))
	assert.Len(t, repo.Transactions(), 4)
}

func TestTransferService_ExecuteRejectsIncompleteBeneficiary(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	ts := NewTransferService(repo, &stubIDs{ref: "AAAAAAAA"})

	_, err := ts.Execute(TransferRequest{
		Currency: "USD",
		Amount:   dec("10"),
	})
	assert.ErrorIs(t, err, ErrBeneficiaryIncomplete)
}
