package catalog

import (
	"sort"
	"strconv"
	"strings"

	"carameche/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TriState expresses a boolean filter with no constraint as a distinct
// variant rather than a nil pointer.
type TriState int

const (
	TriAny TriState = iota
	TriRequired
	TriExcluded
)

func (t TriState) matches(v bool) bool {
	switch t {
	case TriRequired:
		return v
	case TriExcluded:
		return !v
	default:
		return true
	}
}

type SortKey string

const (
	SortNameAsc       SortKey = "name_asc"
	SortNameDesc      SortKey = "name_desc"
	SortNumberAsc     SortKey = "number_asc"
	SortNumberDesc    SortKey = "number_desc"
	SortNumberNumAsc  SortKey = "number_numeric_asc"
	SortNumberNumDesc SortKey = "number_numeric_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortPriceDesc     SortKey = "price_desc"
)

// Query is a filter specification plus sort key and page request. List-valued
// fields are inclusion filters: OR within a field, AND across fields, empty
// means unconstrained. Price bounds are active only when positive.
type Query struct {
	Search        string
	Series        []string
	Rarities      []string
	Conditions    []string
	Languages     []string
	PriceMinCents int64
	PriceMaxCents int64
	Reverse       TriState
	Promo         TriState
	Holo          TriState
	Sort          SortKey
	Page          int
	PageSize      int
}

// Result carries one page of matches plus the unsliced match count.
type Result struct {
	Cards []domain.Card `json:"cards"`
	Total int           `json:"total"`
}

// Search filters, sorts and paginates the card list. Pages are 1-based; an
// out-of-range page yields an empty slice with Total unchanged. The input
// slice is not modified.
func Search(cards []domain.Card, q Query) Result {
	matches := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if q.matches(card) {
			matches = append(matches, card)
		}
	}

	sortCards(matches, q.Sort)

	total := len(matches)
	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = 100
	}

	start := (page - 1) * pageSize
	if start >= total {
		return Result{Cards: []domain.Card{}, Total: total}
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return Result{Cards: matches[start:end], Total: total}
}

func (q Query) matches(card domain.Card) bool {
	if s := strings.TrimSpace(q.Search); s != "" {
		needle := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(card.Name), needle) &&
			!strings.Contains(strings.ToLower(card.NameFR), needle) {
			return false
		}
	}
	if len(q.Series) > 0 && !containsFold(q.Series, card.Series) {
		return false
	}
	if len(q.Rarities) > 0 && !contains(q.Rarities, card.Rarity) {
		return false
	}
	if len(q.Conditions) > 0 && !contains(q.Conditions, card.Condition) {
		return false
	}
	if len(q.Languages) > 0 && !contains(q.Languages, card.Language) {
		return false
	}
	if q.PriceMinCents > 0 && card.PriceCents < q.PriceMinCents {
		return false
	}
	if q.PriceMaxCents > 0 && card.PriceCents > q.PriceMaxCents {
		return false
	}
	if !q.Reverse.matches(card.Reverse) {
		return false
	}
	if !q.Promo.matches(card.Promo) {
		return false
	}
	if !q.Holo.matches(card.Holo) {
		return false
	}
	return true
}

func sortCards(cards []domain.Card, key SortKey) {
	switch key {
	case SortNameAsc, SortNameDesc, "":
		coll := collate.New(language.French, collate.IgnoreCase)
		desc := key == SortNameDesc
		sort.SliceStable(cards, func(i, j int) bool {
			cmp := coll.CompareString(cards[i].Name, cards[j].Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	case SortNumberAsc:
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].Number < cards[j].Number })
	case SortNumberDesc:
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].Number > cards[j].Number })
	case SortNumberNumAsc:
		sort.SliceStable(cards, func(i, j int) bool { return numberLess(cards[i].Number, cards[j].Number) })
	case SortNumberNumDesc:
		sort.SliceStable(cards, func(i, j int) bool { return numberLess(cards[j].Number, cards[i].Number) })
	case SortPriceAsc:
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].PriceCents < cards[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(cards, func(i, j int) bool { return cards[i].PriceCents > cards[j].PriceCents })
	}
}

// numberLess compares collector numbers by their numeric prefix ("10/102"
// sorts after "2/102"), falling back to the full string on ties or when a
// number has no numeric prefix.
func numberLess(a, b string) bool {
	na, aok := numericPrefix(a)
	nb, bok := numericPrefix(b)
	switch {
	case aok && bok && na != nb:
		return na < nb
	case aok != bok:
		return aok
	default:
		return a < b
	}
}

func numericPrefix(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
