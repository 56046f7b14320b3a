package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/model"
)

func TestMemoryStore_SeedState(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")

	wallets := s.Wallets()
	require.Len(t, wallets, 3)
	assert.Equal(t, "USD", wallets[0].Currency)
	assert.True(t, wallets[0].Balance.Equal(decimal.NewFromFloat(12450.00)))
	assert.True(t, wallets[1].Balance.Equal(decimal.NewFromFloat(8230.50)))
	assert.True(t, wallets[2].Balance.Equal(decimal.NewFromFloat(4120.00)))

	require.Len(t, s.Cards(), 1)
	assert.Equal(t, "Alex Thompson", s.Cards()[0].Holder)

	assert.Len(t, s.Transactions(), 4)
	assert.Equal(t, 2, s.UnreadCount())
}

func TestMemoryStore_AddWalletRejectsDuplicateCurrency(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")

	err := s.AddWallet(model.Wallet{Currency: "USD", Label: "US Dollar"})
	assert.ErrorIs(t, err, ErrDuplicateCurrency)

	// Case differences still count as the same currency.
	err = s.AddWallet(model.Wallet{Currency: "usd"})
	assert.ErrorIs(t, err, ErrDuplicateCurrency)

	err = s.AddWallet(model.Wallet{Currency: "NGN", Label: "Nigerian Naira"})
	require.NoError(t, err)
	assert.Len(t, s.Wallets(), 4)
}

func TestMemoryStore_DebitCredit(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")

	require.NoError(t, s.DebitWallet("USD", decimal.NewFromInt(500)))
	w, err := s.WalletByCurrency("USD")
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(decimal.NewFromFloat(11950.00)))

	require.NoError(t, s.CreditWallet("USD", decimal.NewFromInt(50)))
	w, _ = s.WalletByCurrency("USD")
	assert.True(t, w.Balance.Equal(decimal.NewFromFloat(12000.00)))
}

func TestMemoryStore_DebitInsufficientFunds(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")

	err := s.DebitWallet("GBP", decimal.NewFromInt(999999))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Balance untouched on failure.
	w, _ := s.WalletByCurrency("GBP")
	assert.True(t, w.Balance.Equal(decimal.NewFromFloat(4120.00)))
}

func TestMemoryStore_DebitUnknownWallet(t *testing.T) {
	s := NewEmptyStore()

	err := s.DebitWallet("CHF", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestMemoryStore_AppendTransactionIsNewestFirst(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")

	s.AppendTransaction(model.Transaction{ID: "new", Name: "Coffee", Currency: "USD", Type: model.TypeExpense})

	txs := s.Transactions()
	require.Len(t, txs, 5)
	assert.Equal(t, "new", txs[0].ID)
}

func TestMemoryStore_TransactionsByCurrencyLimit(t *testing.T) {
	s := NewEmptyStore()
	for _, id := range []string{"a", "b", "c", "d"} {
		s.AppendTransaction(model.Transaction{ID: id, Currency: "USD"})
	}
	s.AppendTransaction(model.Transaction{ID: "e", Currency: "EUR"})

	usd := s.TransactionsByCurrency("USD", 3)
	assert.Len(t, usd, 3)

	eur := s.TransactionsByCurrency("EUR", 3)
	assert.Len(t, eur, 1)

	assert.Empty(t, s.TransactionsByCurrency("JPY", 3))
}

func TestMemoryStore_SetCardFrozen(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")
	id := s.Cards()[0].ID

	require.NoError(t, s.SetCardFrozen(id, true))
	c, err := s.CardByID(id)
	require.NoError(t, err)
	assert.True(t, c.Frozen)

	require.NoError(t, s.SetCardFrozen(id, false))
	c, _ = s.CardByID(id)
	assert.False(t, c.Frozen)

	assert.ErrorIs(t, s.SetCardFrozen("missing", true), ErrCardNotFound)
}

func TestMemoryStore_MarkAllNotificationsRead(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")
	require.Equal(t, 2, s.UnreadCount())

	s.MarkAllNotificationsRead()
	assert.Equal(t, 0, s.UnreadCount())

	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestMemoryStore_ReadsReturnCopies(t *testing.T) {
	s := NewMemoryStore("Alex Thompson")

	wallets := s.Wallets()
	wallets[0].Balance = decimal.Zero

	fresh, err := s.WalletByCurrency("USD")
	require.NoError(t, err)
	assert.True(t, fresh.Balance.Equal(decimal.NewFromFloat(12450.00)))
}
