package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/rates"
	"github.com/zerah-labs/zerah/internal/store"
)

type WalletService struct {
	repo store.Repository
}

func NewWalletService(repo store.Repository) *WalletService {
	return &WalletService{repo: repo}
}

func (ws *WalletService) Wallets() []model.Wallet {
	return ws.repo.Wallets()
}

func (ws *WalletService) WalletByCurrency(currency string) (*model.Wallet, error) {
	return ws.repo.WalletByCurrency(currency)
}

// OpenWallet creates a zero-balance wallet for one of the available
// currencies. Currency uniqueness is enforced by the store.
func (ws *WalletService) OpenWallet(opt model.CurrencyOption) (*model.Wallet, error) {
	w := model.Wallet{
		Currency:    opt.Code,
		Label:       opt.Label,
		Balance:     decimal.Zero,
		Symbol:      opt.Symbol,
		Icon:        opt.Icon,
		BankAccount: opt.BankAccount,
	}

	if err := ws.repo.AddWallet(w); err != nil {
		return nil, fmt.Errorf("open %s wallet: %w", opt.Code, err)
	}
	return &w, nil
}

// AvailableToOpen filters the currency catalog down to codes without a
// wallet yet.
func (ws *WalletService) AvailableToOpen() []model.CurrencyOption {
	held := make(map[string]bool)
	for _, w := range ws.repo.Wallets() {
		held[w.Currency] = true
	}

	var out []model.CurrencyOption
	for _, opt := range model.AvailableCurrencies() {
		if !held[opt.Code] {
			out = append(out, opt)
		}
	}
	return out
}

// EstimatedTotalUSD sums all wallet balances through the static USD
// rate table. Display estimate only.
func (ws *WalletService) EstimatedTotalUSD() decimal.Decimal {
	total := decimal.Zero
	for _, w := range ws.repo.Wallets() {
		total = total.Add(w.Balance.Mul(rates.USDRate(w.Currency)))
	}
	return total
}

func (ws *WalletService) RecentActivity() []model.Transaction {
	return ws.repo.Transactions()
}

func (ws *WalletService) Notifications() []model.Notification {
	return ws.repo.Notifications()
}

func (ws *WalletService) UnreadCount() int {
	return ws.repo.UnreadCount()
}

func (ws *WalletService) MarkAllNotificationsRead() {
	ws.repo.MarkAllNotificationsRead()
}
