package domain

// Card is a single tradable Pokémon card as exposed by the marketplace
// export. Immutable once fetched; Stock is informational and is not
// decremented locally on purchase.
type Card struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameFR     string `json:"nameFr"`
	Number     string `json:"number"`
	Series     string `json:"series"`
	Rarity     string `json:"rarity"`
	Image      string `json:"image"`
	PriceCents int64  `json:"priceCents"`
	Stock      int    `json:"stock"`
	Condition  string `json:"condition"`
	Language   string `json:"language"`
	Holo       bool   `json:"holo"`
	Reverse    bool   `json:"reverse"`
	Promo      bool   `json:"promo"`
}

// Series is derived entirely from the card set; CardCount is the number of
// cards whose Series field matches Name.
type Series struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Symbol      string `json:"symbol,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	CardCount   int    `json:"cardCount"`
}
