package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Card name suffixes stripped before lookup and reattached to the result.
var suffixes = []string{" VMAX", " VSTAR", " V", " GX", " EX"}

// Client resolves French card names from a localized-name lookup service.
// Lookups are best-effort: any failure falls back to the original name, and
// results are memoized by original name so a miss is only paid once.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger

	mu    sync.Mutex
	cache map[string]string
}

func New(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     logger.With().Str("component", "translate").Logger(),
		cache:      make(map[string]string),
	}
}

type localizedName struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// French returns the French name for an English card name, or the input
// unchanged when no translation is found.
func (c *Client) French(ctx context.Context, name string) string {
	if name == "" {
		return name
	}

	c.mu.Lock()
	if cached, ok := c.cache[name]; ok {
		c.mu.Unlock()
		return cached
	}
	c.mu.Unlock()

	base, suffix := splitSuffix(name)
	translated, err := c.lookup(ctx, Slug(base))
	if err != nil || translated == "" {
		if err != nil {
			c.logger.Debug().Str("name", name).Err(err).Msg("translation lookup failed")
		}
		translated = base
	}
	result := translated + suffix

	c.mu.Lock()
	c.cache[name] = result
	c.mu.Unlock()
	return result
}

func (c *Client) lookup(ctx context.Context, slug string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cards/"+slug, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: %s returned %s", slug, resp.Status)
	}

	var names []localizedName
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		return "", err
	}
	for _, n := range names {
		if strings.EqualFold(n.Language, "fr") {
			return n.Name, nil
		}
	}
	return "", nil
}

// Slug normalizes a card name into the lookup key: lowercased, apostrophes
// dropped, runs of non-alphanumerics collapsed into single hyphens.
func Slug(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, "’", "")

	var b strings.Builder
	hyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func splitSuffix(name string) (base, suffix string) {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return strings.TrimSuffix(name, s), s
		}
	}
	return name, ""
}
