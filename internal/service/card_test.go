package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerah-labs/zerah/internal/config"
	"github.com/zerah-labs/zerah/internal/ident"
	"github.com/zerah-labs/zerah/internal/model"
	"github.com/zerah-labs/zerah/internal/store"
)

func newCardService(repo store.Repository) *CardService {
	return NewCardService(repo, config.NewDefault(), ident.NewRandomGenerator())
}

func TestCardService_CreateShape(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	cs := newCardService(repo)

	card := cs.Create("USD")

	assert.True(t, strings.HasPrefix(card.PAN, "4532 "), "pan %q", card.PAN)
	assert.Regexp(t, `^4532 \d{4} \d{4} \d{4}$`, card.PAN)
	assert.Equal(t, card.PAN[len(card.PAN)-4:], card.LastFour)
	assert.Regexp(t, `^\d{3}$`, card.CVV)
	assert.Equal(t, "05 / 30", card.Expiry)
	assert.Equal(t, "Alex Thompson", card.Holder)
	assert.False(t, card.Frozen)

	require.Len(t, repo.Cards(), 2)
}

func TestCardService_CreateTierMapping(t *testing.T) {
	repo := store.NewEmptyStore()
	cs := newCardService(repo)

	assert.Equal(t, model.TierGold, cs.Create("EUR").Tier)
	assert.Equal(t, model.TierBlack, cs.Create("GBP").Tier)
	assert.Equal(t, model.TierPlatinum, cs.Create("USD").Tier)
	assert.Equal(t, model.TierPlatinum, cs.Create("NGN").Tier)
}

func TestCardService_CreateNeverDuplicatesIDs(t *testing.T) {
	repo := store.NewEmptyStore()
	cs := newCardService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		card := cs.Create("USD")
		require.False(t, seen[card.ID], "duplicate card id %s", card.ID)
		seen[card.ID] = true
	}
}

func TestCardService_ToggleFreeze(t *testing.T) {
	repo := store.NewMemoryStore("Alex Thompson")
	cs := newCardService(repo)
	id := repo.Cards()[0].ID

	frozen, err := cs.ToggleFreeze(id)
	require.NoError(t, err)
	assert.True(t, frozen)

	frozen, err = cs.ToggleFreeze(id)
	require.NoError(t, err)
	assert.False(t, frozen)

	_, err = cs.ToggleFreeze("missing")
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardService_ActivityScopedAndCapped(t *testing.T) {
	repo := store.NewEmptyStore()
	for i := 0; i < 5; i++ {
		repo.AppendTransaction(model.Transaction{ID: fmt.Sprintf("u%d", i), Currency: "USD"})
	}
	repo.AppendTransaction(model.Transaction{ID: "e1", Currency: "EUR"})

	cs := newCardService(repo)

	usd := cs.Activity("USD")
	assert.Len(t, usd, 3)
	for _, tx := range usd {
		assert.Equal(t, "USD", tx.Currency)
	}

	assert.Empty(t, cs.Activity("JPY"))
}
