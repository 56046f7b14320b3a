package store

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/zerah-labs/zerah/internal/model"
)

// MemoryStore holds one session's state. Everything is volatile; a new
// process starts from the seed lists again.
type MemoryStore struct {
	mu            sync.RWMutex
	wallets       []model.Wallet
	transactions  []model.Transaction
	cards         []model.Card
	notifications []model.Notification
}

// NewMemoryStore builds a store pre-populated with the Zerah seed data.
func NewMemoryStore(holder string) *MemoryStore {
	return &MemoryStore{
		wallets:       model.SeedWallets(),
		transactions:  model.SeedActivity(),
		cards:         model.SeedCards(holder),
		notifications: model.SeedNotifications(),
	}
}

// NewEmptyStore builds a store with no seed data. Used by tests that
// want full control over the collection contents.
func NewEmptyStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Wallets() []model.Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Wallet, len(s.wallets))
	copy(out, s.wallets)
	return out
}

func (s *MemoryStore) WalletByCurrency(currency string) (*model.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, w := range s.wallets {
		if strings.EqualFold(w.Currency, currency) {
			cp := w
			return &cp, nil
		}
	}
	return nil, ErrWalletNotFound
}

// AddWallet appends a wallet to the collection. Currency codes are
// unique per session; a second wallet for a held currency is rejected.
func (s *MemoryStore) AddWallet(w model.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.wallets {
		if strings.EqualFold(existing.Currency, w.Currency) {
			return ErrDuplicateCurrency
		}
	}

	s.wallets = append(s.wallets, w)
	return nil
}

func (s *MemoryStore) DebitWallet(currency string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wallets {
		if !strings.EqualFold(s.wallets[i].Currency, currency) {
			continue
		}
		if s.wallets[i].Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		s.wallets[i].Balance = s.wallets[i].Balance.Sub(amount)
		return nil
	}
	return ErrWalletNotFound
}

func (s *MemoryStore) CreditWallet(currency string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wallets {
		if strings.EqualFold(s.wallets[i].Currency, currency) {
			s.wallets[i].Balance = s.wallets[i].Balance.Add(amount)
			return nil
		}
	}
	return ErrWalletNotFound
}

// Transactions returns the activity feed, most recent first.
func (s *MemoryStore) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *MemoryStore) TransactionsByCurrency(currency string, limit int) []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Transaction
	for _, tx := range s.transactions {
		if !strings.EqualFold(tx.Currency, currency) {
			continue
		}
		out = append(out, tx)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// AppendTransaction prepends so the feed stays newest-first.
func (s *MemoryStore) AppendTransaction(tx model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append([]model.Transaction{tx}, s.transactions...)
}

func (s *MemoryStore) Cards() []model.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *MemoryStore) CardByID(id string) (*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.cards {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, ErrCardNotFound
}

func (s *MemoryStore) AddCard(c model.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = append(s.cards, c)
}

func (s *MemoryStore) SetCardFrozen(id string, frozen bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].Frozen = frozen
			return nil
		}
	}
	return ErrCardNotFound
}

func (s *MemoryStore) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *MemoryStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *MemoryStore) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}
