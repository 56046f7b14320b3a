package model

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger entry from the holder's point of view.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// TransactionStatus is the optional settlement state shown on detail views.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Completed"
	StatusPending   TransactionStatus = "Pending"
	StatusFailed    TransactionStatus = "Failed"
)

// CardTier maps to the visual treatment of a virtual card.
type CardTier string

const (
	TierPlatinum CardTier = "Platinum"
	TierGold     CardTier = "Gold"
	TierBlack    CardTier = "Black"
)

// BankDetail is one labeled line of receiving instructions. Copyable
// details get a copy affordance on the Receive screen.
type BankDetail struct {
	Label    string
	Value    string
	Copyable bool
}

// BankAccount holds the receiving details attached to a wallet.
type BankAccount struct {
	Institution string
	AccountName string
	Details     []BankDetail
}

// Wallet is a per-currency balance. Currency is unique within the
// session's wallet collection.
type Wallet struct {
	Currency    string
	Label       string
	Balance     decimal.Decimal
	Symbol      string
	Icon        string
	BankAccount *BankAccount
}

// Transaction is an immutable activity record. Amount is signed:
// negative for expenses, positive for income.
type Transaction struct {
	ID        string
	Name      string
	Date      string
	Amount    decimal.Decimal
	Currency  string
	Type      TransactionType
	Icon      string
	Status    TransactionStatus
	Reference string
}

// Card is a session-scoped virtual card. PAN and CVV are cosmetic.
type Card struct {
	ID       string
	LastFour string
	PAN      string
	CVV      string
	Expiry   string
	Holder   string
	Currency string
	Frozen   bool
	Tier     CardTier
}

// Beneficiary is the transfer flow's transient recipient draft. It does
// not outlive a single Send flow instance.
type Beneficiary struct {
	Name          string
	BankName      string
	AccountNumber string
	Identifier    string
}

// NotificationCategory buckets inbox entries.
type NotificationCategory string

const (
	CategoryTransaction NotificationCategory = "transaction"
	CategorySecurity    NotificationCategory = "security"
	CategoryEngine      NotificationCategory = "engine"
	CategorySystem      NotificationCategory = "system"
)

// Notification is one inbox entry. Only Read is ever mutated.
type Notification struct {
	ID       string
	Category NotificationCategory
	Title    string
	Body     string
	Time     string
	Read     bool
	Icon     string
}

// CurrencyOption describes a currency the user can open a wallet in or
// convert between.
type CurrencyOption struct {
	Code        string
	Label       string
	Symbol      string
	Icon        string
	BankAccount *BankAccount
}
