package domain

// CartEntry pairs a card snapshot taken at add-time with a quantity.
// Quantity is always positive and never exceeds Card.Stock.
type CartEntry struct {
	Card     Card `json:"card"`
	Quantity int  `json:"quantity"`
}

// Cart is the serialized form of a session cart: entries keyed by card id,
// at most one entry per card.
type Cart struct {
	Entries []CartEntry `json:"entries"`
}

// ItemCount is the sum of quantities over all entries.
func (c Cart) ItemCount() int {
	n := 0
	for _, e := range c.Entries {
		n += e.Quantity
	}
	return n
}

// TotalCents is the sum of unit price times quantity over all entries.
func (c Cart) TotalCents() int64 {
	var total int64
	for _, e := range c.Entries {
		total += e.Card.PriceCents * int64(e.Quantity)
	}
	return total
}
