// Package cart implements the shopping-cart state machine: a set of entries
// keyed by card id, quantities clamped to the card's stock, entries removed
// when a mutation drives their quantity to zero or below.
package cart

import "carameche/internal/domain"

// Add applies a quantity delta for a card. A non-positive delta on a missing
// entry is a no-op; a delta that drives an existing entry to zero or below
// removes it. Quantities clamp to the card's snapshotted stock, and the
// second return value reports whether clamping occurred ("limit reached").
func Add(c domain.Cart, card domain.Card, quantity int) (domain.Cart, bool) {
	idx := indexOf(c, card.ID)

	if idx < 0 {
		if quantity <= 0 {
			return c, false
		}
		clamped := quantity
		limit := false
		if clamped > card.Stock {
			clamped = card.Stock
			limit = true
		}
		if clamped <= 0 {
			// Out-of-stock card: nothing to insert.
			return c, true
		}
		out := clone(c)
		out.Entries = append(out.Entries, domain.CartEntry{Card: card, Quantity: clamped})
		return out, limit
	}

	entry := c.Entries[idx]
	newQty := entry.Quantity + quantity
	if newQty <= 0 {
		return removeAt(c, idx), false
	}

	stock := entry.Card.Stock
	limit := false
	if newQty > stock {
		newQty = stock
		limit = true
	}
	if newQty == entry.Quantity {
		return c, limit && quantity > 0
	}

	out := clone(c)
	out.Entries[idx].Quantity = newQty
	return out, limit
}

// Update sets an entry's quantity to an absolute value. A value of zero or
// below removes the entry; values above the snapshotted stock clamp and
// report "limit reached". Unknown card ids leave the cart unchanged.
func Update(c domain.Cart, cardID string, quantity int) (domain.Cart, bool) {
	idx := indexOf(c, cardID)
	if idx < 0 {
		return c, false
	}
	if quantity <= 0 {
		return removeAt(c, idx), false
	}

	stock := c.Entries[idx].Card.Stock
	limit := false
	if quantity > stock {
		quantity = stock
		limit = true
	}
	if quantity <= 0 {
		return removeAt(c, idx), limit
	}
	if quantity == c.Entries[idx].Quantity {
		return c, limit
	}

	out := clone(c)
	out.Entries[idx].Quantity = quantity
	return out, limit
}

// Remove deletes the entry for a card id if present.
func Remove(c domain.Cart, cardID string) domain.Cart {
	idx := indexOf(c, cardID)
	if idx < 0 {
		return c
	}
	return removeAt(c, idx)
}

func indexOf(c domain.Cart, cardID string) int {
	for i, e := range c.Entries {
		if e.Card.ID == cardID {
			return i
		}
	}
	return -1
}

func clone(c domain.Cart) domain.Cart {
	entries := make([]domain.CartEntry, len(c.Entries))
	copy(entries, c.Entries)
	return domain.Cart{Entries: entries}
}

func removeAt(c domain.Cart, idx int) domain.Cart {
	entries := make([]domain.CartEntry, 0, len(c.Entries)-1)
	entries = append(entries, c.Entries[:idx]...)
	entries = append(entries, c.Entries[idx+1:]...)
	return domain.Cart{Entries: entries}
}
