package store

import (
	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/model"
)

// Repository is the session state container. All shared mutable state
// (wallets, activity, cards, notifications) is mutated only through
// these operations; reads return defensive copies.
type Repository interface {
	// Wallet Operations
	Wallets() []model.Wallet
	WalletByCurrency(currency string) (*model.Wallet, error)
	AddWallet(w model.Wallet) error
	DebitWallet(currency string, amount decimal.Decimal) error
	CreditWallet(currency string, amount decimal.Decimal) error

	// Activity Operations
	Transactions() []model.Transaction
	TransactionsByCurrency(currency string, limit int) []model.Transaction
	AppendTransaction(tx model.Transaction)

	// Card Operations
	Cards() []model.Card
	CardByID(id string) (*model.Card, error)
	AddCard(c model.Card)
	SetCardFrozen(id string, frozen bool) error

	// Notification Operations
	Notifications() []model.Notification
	UnreadCount() int
	MarkAllNotificationsRead()
}
