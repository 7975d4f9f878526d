package cart

import (
	"testing"

	"carameche/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(id string, priceCents int64, stock int) domain.Card {
	return domain.Card{ID: id, Name: "Card " + id, PriceCents: priceCents, Stock: stock}
}

func quantityOf(t *testing.T, c domain.Cart, cardID string) int {
	t.Helper()
	for _, e := range c.Entries {
		if e.Card.ID == cardID {
			return e.Quantity
		}
	}
	t.Fatalf("no entry for card %s", cardID)
	return 0
}

func TestAdd_NewEntry(t *testing.T) {
	c, limit := Add(domain.Cart{}, card("a", 1000, 3), 1)
	assert.False(t, limit)
	require.Len(t, c.Entries, 1)
	assert.Equal(t, 1, c.Entries[0].Quantity)
	assert.Equal(t, "a", c.Entries[0].Card.ID)
}

func TestAdd_NonPositiveDeltaOnMissingEntryIsNoop(t *testing.T) {
	c, limit := Add(domain.Cart{}, card("a", 1000, 3), 0)
	assert.False(t, limit)
	assert.Empty(t, c.Entries)

	c, limit = Add(domain.Cart{}, card("a", 1000, 3), -2)
	assert.False(t, limit)
	assert.Empty(t, c.Entries)
}

func TestAdd_ClampsToStock(t *testing.T) {
	// Card A: price 10.00, stock 3, quantity 1; add(A, 5) yields 3, not 6.
	a := card("a", 1000, 3)
	c, _ := Add(domain.Cart{}, a, 1)
	c, limit := Add(c, a, 5)
	assert.True(t, limit)
	assert.Equal(t, 3, quantityOf(t, c, "a"))
}

func TestAdd_NegativeDeltaRemovesEntry(t *testing.T) {
	// Card A at quantity 2; add(A, -5) removes the entry entirely.
	a := card("a", 1000, 10)
	c, _ := Add(domain.Cart{}, a, 2)
	c, limit := Add(c, a, -5)
	assert.False(t, limit)
	assert.Empty(t, c.Entries)
}

func TestAdd_AssociativeUpToClamping(t *testing.T) {
	a := card("a", 500, 10)

	split, _ := Add(domain.Cart{}, a, 3)
	split, _ = Add(split, a, 4)

	direct, _ := Add(domain.Cart{}, a, 7)
	assert.Equal(t, quantityOf(t, direct, "a"), quantityOf(t, split, "a"))

	// Both paths clamp the same way when stock is exceeded.
	split, _ = Add(split, a, 100)
	direct, _ = Add(direct, a, 100)
	assert.Equal(t, 10, quantityOf(t, split, "a"))
	assert.Equal(t, 10, quantityOf(t, direct, "a"))
}

func TestAdd_AtStockSignalsLimitWithoutChange(t *testing.T) {
	a := card("a", 500, 2)
	c, _ := Add(domain.Cart{}, a, 2)
	next, limit := Add(c, a, 1)
	assert.True(t, limit)
	assert.Equal(t, 2, quantityOf(t, next, "a"))
}

func TestAdd_NewEntryOutOfStockCard(t *testing.T) {
	c, limit := Add(domain.Cart{}, card("a", 500, 0), 2)
	assert.True(t, limit)
	assert.Empty(t, c.Entries)
}

func TestUpdate_SetsAbsoluteQuantity(t *testing.T) {
	a := card("a", 500, 10)
	c, _ := Add(domain.Cart{}, a, 5)
	c, limit := Update(c, "a", 2)
	assert.False(t, limit)
	assert.Equal(t, 2, quantityOf(t, c, "a"))
}

func TestUpdate_ClampsAndSignals(t *testing.T) {
	a := card("a", 500, 4)
	c, _ := Add(domain.Cart{}, a, 1)
	c, limit := Update(c, "a", 9)
	assert.True(t, limit)
	assert.Equal(t, 4, quantityOf(t, c, "a"))
}

func TestUpdate_NonPositiveRemovesEntry(t *testing.T) {
	a := card("a", 500, 4)
	c, _ := Add(domain.Cart{}, a, 2)
	c, limit := Update(c, "a", 0)
	assert.False(t, limit)
	assert.Empty(t, c.Entries)
}

func TestUpdate_UnknownCardIsNoop(t *testing.T) {
	a := card("a", 500, 4)
	c, _ := Add(domain.Cart{}, a, 2)
	next, limit := Update(c, "zzz", 3)
	assert.False(t, limit)
	assert.Equal(t, c, next)
}

func TestRemove(t *testing.T) {
	a := card("a", 500, 4)
	b := card("b", 900, 4)
	c, _ := Add(domain.Cart{}, a, 2)
	c, _ = Add(c, b, 1)

	c = Remove(c, "a")
	require.Len(t, c.Entries, 1)
	assert.Equal(t, "b", c.Entries[0].Card.ID)

	// Removing an absent card leaves the cart unchanged.
	c = Remove(c, "a")
	require.Len(t, c.Entries, 1)
}

func TestInvariants_QuantityWithinBounds(t *testing.T) {
	a := card("a", 500, 3)
	deltas := []int{1, 5, -2, 4, -10, 2, 0, 7}

	c := domain.Cart{}
	for _, d := range deltas {
		c, _ = Add(c, a, d)
		for _, e := range c.Entries {
			assert.Greater(t, e.Quantity, 0)
			assert.LessOrEqual(t, e.Quantity, e.Card.Stock)
		}
	}
}

func TestDerivedValues(t *testing.T) {
	c, _ := Add(domain.Cart{}, card("a", 1000, 5), 2)
	c, _ = Add(c, card("b", 250, 5), 3)

	assert.Equal(t, 5, c.ItemCount())
	assert.Equal(t, int64(2750), c.TotalCents())
}
