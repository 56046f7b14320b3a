package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/zerah-labs/zerah/internal/config"
	"github.com/zerah-labs/zerah/internal/constants"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
)

type CardService struct {
	repo   store.Repository
	holder string
	ids    ident.Generator
}

func NewCardService(repo store.Repository, cfg *config.Config, ids ident.Generator) *CardService {
	return &CardService{repo: repo, holder: cfg.Profile.Name, ids: ids}
}

func (cs *CardService) Cards() []model.Card {
	return cs.repo.Cards()
}

// Create issues a virtual card in the chosen currency and appends it to
// the session. PAN and CVV are cosmetic, but the id comes from the id
// capability and never collides.
func (cs *CardService) Create(currency string) model.Card {
	groups := [3]string{fourDigits(), fourDigits(), fourDigits()}

	card := model.Card{
		ID:       cs.ids.CardID(),
		LastFour: groups[2],
		PAN:      fmt.Sprintf("%s %s %s %s", constants.CardPANPrefix, groups[0], groups[1], groups[2]),
		CVV:      fmt.Sprintf("%03d", rand.IntN(900)+100),
		Expiry:   constants.CardExpiry,
		Holder:   cs.holder,
		Currency: currency,
		Frozen:   false,
		Tier:     TierFor(currency),
	}

	cs.repo.AddCard(card)
	return card
}

// ToggleFreeze flips the frozen flag and reports the new state.
func (cs *CardService) ToggleFreeze(id string) (bool, error) {
	card, err := cs.repo.CardByID(id)
	if err != nil {
		return false, err
	}

	frozen := !card.Frozen
	if err := cs.repo.SetCardFrozen(id, frozen); err != nil {
		return false, err
	}
	return frozen, nil
}

// Activity returns the shared recent activity scoped to the card's
// currency, capped for the card detail panel.
func (cs *CardService) Activity(currency string) []model.Transaction {
	return cs.repo.TransactionsByCurrency(currency, constants.CardActivityLimit)
}

// TierFor maps a currency to the issued card tier.
func TierFor(currency string) model.CardTier {
	switch currency {
	case "EUR":
		return model.TierGold
	case "GBP":
		return model.TierBlack
	default:
		return model.TierPlatinum
	}
}

func fourDigits() string {
	return fmt.Sprintf("%04d", rand.IntN(9000)+1000)
}
