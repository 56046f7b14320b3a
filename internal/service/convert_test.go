package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
)

type stubIDs struct {
	ref    string
	cardID string
}

func (s *stubIDs) Ref(prefix string) string { return prefix + "-" + s.ref }
func (s *stubIDs) CardID() string           { return s.cardID }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var (
	ngn = model.CurrencyOption{Code: "NGN", Label: "Nigerian Naira", Symbol: "₦"}
	usd = model.CurrencyOption{Code: "USD", Label: "US Dollar", Symbol: "$"}
)

func TestConvertService_QuoteFeeAndNet(t *testing.T) {
	cs := NewConvertService(store.NewEmptyStore(), &stubIDs{ref: "AAAAAAAA"})

	// 450,000 NGN at the USD-per-NGN rate.
	q := cs.Quote(ngn, usd, dec("450000"), dec("1").Div(dec("1605")))

	assert.True(t, q.Fee.Equal(dec("450")), "fee was %s", q.Fee)
	assert.True(t, q.Net.Equal(dec("449550")), "net was %s", q.Net)
	assert.Equal(t, "280.09", q.Converted.Round(2).StringFixed(2))
}

func TestConvertService_QuoteFeeIsExact(t *testing.T) {
	cs := NewConvertService(store.NewEmptyStore(), &stubIDs{ref: "AAAAAAAA"})

	q := cs.Quote(usd, ngn, dec("123.45"), dec("1605"))
	assert.True(t, q.Fee.Equal(dec("0.12345")))
	assert.True(t, q.Net.Equal(dec("123.32655")))
}

func TestConvertService_SameCurrencyForcesUnitRate(t *testing.T) {
	cs := NewConvertService(store.NewEmptyStore(), &stubIDs{ref: "AAAAAAAA"})

	q := cs.Quote(usd, usd, dec("100"), dec("1605"))
	assert.True(t, q.Rate.Equal(dec("1")))
	assert.True(t, q.Converted.Equal(q.Net))
}

func TestConvertService_ExecuteAppliesMovement(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	cs := NewConvertService(repo, &stubIDs{ref: "K3N9PQ2X"})

	eur := model.CurrencyOption{Code: "EUR", Symbol: "€"}
	q := cs.Quote(usd, eur, dec("1000"), dec("0.92"))

	receipt, err := cs.Execute(q)
	require.NoError(t, err)
	assert.Equal(t, "ZRH-K3N9PQ2X", receipt.Ref)

	usdWallet, _ := repo.WalletByCurrency("USD")
	assert.True(t, usdWallet.Balance.Equal(dec("11450")), "usd balance %s", usdWallet.Balance)

	eurWallet, _ := repo.WalletByCurrency("EUR")
	// 8230.50 + 999 x 0.92
	assert.True(t, eurWallet.Balance.Equal(dec("8230.50").Add(dec("999").Mul(dec("0.92")))))

	txs := repo.Transactions()
	require.Len(t, txs, 5)
	assert.Equal(t, "ZRH-K3N9PQ2X", txs[0].Reference)
	assert.Equal(t, model.TypeIncome, txs[0].Type)
	assert.Equal(t, "EUR", txs[0].Currency)
}

func TestConvertService_ExecuteUnheldCurrenciesStillSettle(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	cs := NewConvertService(repo, &stubIDs{ref: "K3N9PQ2X"})

	// No NGN wallet in the seed; the conversion still produces a
	// receipt and activity entry.
	q := cs.Quote(ngn, usd, dec("450000"), dec("0.000623"))
	receipt, err := cs.Execute(q)
	require.NoError(t, err)
	assert.NotNil(t, receipt)

	usdWallet, _ := repo.WalletByCurrency("USD")
	assert.True(t, usdWallet.Balance.GreaterThan(dec("12450")))
}

func TestConvertService_ExecuteRejectsNonPositive(t *testing.T) {
	cs := NewConvertService(store.NewEmptyStore(), &stubIDs{ref: "AAAAAAAA"})

	_, err := cs.Execute(cs.Quote(usd, ngn, decimal.Zero, dec("1605")))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = cs.Execute(cs.Quote(usd, ngn, dec("-5"), dec("1605")))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)
}
