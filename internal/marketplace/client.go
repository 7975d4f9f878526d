package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"carameche/internal/domain"

	"github.com/rs/zerolog"
)

// Fallback values for records the export leaves incomplete, so the pipeline
// always produces a renderable card.
const (
	fallbackRarity    = "Common"
	fallbackCondition = "Near Mint"
	fallbackSeries    = "Unknown Series"
	fallbackLanguage  = "EN"
)

// Client consumes the marketplace export API with a bearer credential.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     zerolog.Logger
}

func New(httpClient *http.Client, baseURL, token string, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		logger:     logger.With().Str("component", "marketplace").Logger(),
	}
}

// rawProduct mirrors one record of the tradable-card export.
type rawProduct struct {
	ID          int64         `json:"id"`
	NameEN      string        `json:"name_en"`
	PriceCents  int64         `json:"price_cents"`
	Quantity    int           `json:"quantity"`
	ExpansionID int64         `json:"expansion_id"`
	BlueprintID int64         `json:"blueprint_id"`
	Properties  rawProperties `json:"properties_hash"`
}

type rawProperties struct {
	CollectorNumber string `json:"collector_number"`
	Condition       string `json:"condition"`
	Language        string `json:"pokemon_language"`
	Rarity          string `json:"pokemon_rarity"`
	Reverse         bool   `json:"pokemon_reverse"`
	Holo            bool   `json:"foil"`
	Promo           bool   `json:"promo"`
}

type rawExpansion struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
}

// Export fetches the full tradable-card export and maps each record into a
// domain.Card. Series names are resolved through the expansion list; records
// referencing an unknown expansion fall back to "Unknown Series". Network or
// decode failure is returned to the caller.
func (c *Client) Export(ctx context.Context) ([]domain.Card, error) {
	expansions, err := c.fetchExpansions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch expansions: %w", err)
	}
	names := make(map[int64]string, len(expansions))
	for _, e := range expansions {
		names[e.ID] = e.Name
	}

	var products []rawProduct
	if err := c.get(ctx, "/products/export", &products); err != nil {
		return nil, fmt.Errorf("fetch export: %w", err)
	}

	cards := make([]domain.Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, mapCard(p, names))
	}
	c.logger.Info().Int("cards", len(cards)).Int("expansions", len(expansions)).Msg("export fetched")
	return cards, nil
}

// Expansions fetches the expansion list mapped into domain.Series with a
// zero card count; the catalog fills the count from the card set.
func (c *Client) Expansions(ctx context.Context) ([]domain.Series, error) {
	raw, err := c.fetchExpansions(ctx)
	if err != nil {
		return nil, err
	}
	series := make([]domain.Series, 0, len(raw))
	for _, e := range raw {
		series = append(series, domain.Series{
			ID:          strconv.FormatInt(e.ID, 10),
			Name:        e.Name,
			Logo:        c.baseURL + "/expansions/" + strconv.FormatInt(e.ID, 10) + "/logo.png",
			Symbol:      c.baseURL + "/expansions/" + strconv.FormatInt(e.ID, 10) + "/symbol.png",
			ReleaseDate: e.ReleaseDate,
		})
	}
	return series, nil
}

func (c *Client) fetchExpansions(ctx context.Context) ([]rawExpansion, error) {
	var expansions []rawExpansion
	if err := c.get(ctx, "/expansions", &expansions); err != nil {
		return nil, err
	}
	return expansions, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("marketplace: %s returned %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func mapCard(p rawProduct, seriesNames map[int64]string) domain.Card {
	series, ok := seriesNames[p.ExpansionID]
	if !ok || series == "" {
		series = fallbackSeries
	}

	rarity := strings.TrimSpace(p.Properties.Rarity)
	if rarity == "" {
		rarity = fallbackRarity
	}
	condition := strings.TrimSpace(p.Properties.Condition)
	if condition == "" {
		condition = fallbackCondition
	}
	language := strings.ToUpper(strings.TrimSpace(p.Properties.Language))
	if language == "" {
		language = fallbackLanguage
	}

	return domain.Card{
		ID:         strconv.FormatInt(p.ID, 10),
		Name:       p.NameEN,
		NameFR:     p.NameEN,
		Number:     p.Properties.CollectorNumber,
		Series:     series,
		Rarity:     rarity,
		Image:      blueprintImageURL(p.BlueprintID),
		PriceCents: p.PriceCents,
		Stock:      p.Quantity,
		Condition:  condition,
		Language:   language,
		Holo:       p.Properties.Holo,
		Reverse:    p.Properties.Reverse,
		Promo:      p.Properties.Promo || strings.EqualFold(rarity, "Promo"),
	}
}

func blueprintImageURL(blueprintID int64) string {
	if blueprintID == 0 {
		return ""
	}
	return fmt.Sprintf("https://images.cardtrader.com/blueprints/%d.jpg", blueprintID)
}
