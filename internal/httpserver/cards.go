package httpserver

import (
	"math"
	"net/http"
	"strconv"

	"carameche/internal/catalog"
	"carameche/internal/domain"

	"github.com/gin-gonic/gin"
)

type cardPage struct {
	Cards    []domain.Card `json:"cards"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
}

func listCardsHandler(source CatalogSource, defaultPageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		cards, err := source.Load(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}

		query := parseCardQuery(c, defaultPageSize)
		result := catalog.Search(cards, query)
		c.JSON(http.StatusOK, cardPage{
			Cards:    result.Cards,
			Total:    result.Total,
			Page:     query.Page,
			PageSize: query.PageSize,
		})
	}
}

func listSeriesHandler(source CatalogSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		series, err := source.Series(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"series": series})
	}
}

func parseCardQuery(c *gin.Context, defaultPageSize int) catalog.Query {
	q := catalog.Query{
		Search:     c.Query("search"),
		Series:     c.QueryArray("series"),
		Rarities:   c.QueryArray("rarity"),
		Conditions: c.QueryArray("condition"),
		Languages:  c.QueryArray("language"),
		Reverse:    parseTriState(c.Query("reverse")),
		Promo:      parseTriState(c.Query("promo")),
		Holo:       parseTriState(c.Query("holo")),
		Sort:       catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortNameAsc))),
		Page:       parsePositiveInt(c.Query("page"), 1),
		PageSize:   parsePositiveInt(c.Query("pageSize"), defaultPageSize),
	}
	q.PriceMinCents = parsePriceCents(c.Query("priceMin"))
	q.PriceMaxCents = parsePriceCents(c.Query("priceMax"))
	return q
}

func parseTriState(v string) catalog.TriState {
	switch v {
	case "true":
		return catalog.TriRequired
	case "false":
		return catalog.TriExcluded
	default:
		return catalog.TriAny
	}
}

func parsePositiveInt(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// parsePriceCents converts a decimal price in whole currency units into
// cents; absent or malformed values deactivate the bound.
func parsePriceCents(v string) int64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0
	}
	return int64(math.Round(f * 100))
}
