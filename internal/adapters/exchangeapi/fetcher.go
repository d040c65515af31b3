package exchangeapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/core/ports/external"
	"github.com/SscSPs/product_catalog/internal/middleware"
	"github.com/tidwall/gjson"
)

// Source is one candidate location of the base currency table.
type Source struct {
	BaseURL string
	Suffix  string
}

// URL builds {base}/{currency}{suffix}.
func (s Source) URL(currency string) string {
	return fmt.Sprintf("%s/%s%s", strings.TrimRight(s.BaseURL, "/"), currency, s.Suffix)
}

// Config configures a Fetcher.
type Config struct {
	BaseURLs            []string // Primary first, then fallbacks
	Suffixes            []string // Minified variant first, full variant second
	DefaultCurrency     string
	SupportedCurrencies []string
	Timeout             time.Duration // Per attempt
}

// Fetcher downloads the default currency's table from the first source that returns a non-empty one.
type Fetcher struct {
	client    *http.Client
	sources   []Source
	currency  string
	supported []string
	timeout   time.Duration
}

// Ensure implementation matches interface
var _ external.ConversionTableFetcher = (*Fetcher)(nil)

// NewFetcher creates a Fetcher. A nil client means http.DefaultClient.
func NewFetcher(cfg Config, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:    client,
		sources:   BuildSources(cfg.BaseURLs, cfg.Suffixes),
		currency:  strings.ToLower(cfg.DefaultCurrency),
		supported: cfg.SupportedCurrencies,
		timeout:   cfg.Timeout,
	}
}

// BuildSources expands base URLs and suffixes into the ordered fallback chain:
// every suffix of the first URL, then every suffix of the next one.
func BuildSources(baseURLs, suffixes []string) []Source {
	sources := make([]Source, 0, len(baseURLs)*len(suffixes))
	for _, base := range baseURLs {
		if base == "" {
			continue
		}
		for _, suffix := range suffixes {
			sources = append(sources, Source{BaseURL: base, Suffix: suffix})
		}
	}
	return sources
}

// FetchConversionTable returns the supported-currency projection of the first non-empty table.
func (f *Fetcher) FetchConversionTable(ctx context.Context) domain.ConversionTable {
	table := f.loadCurrencies(ctx)
	return table.Project(f.supported)
}

func (f *Fetcher) loadCurrencies(ctx context.Context) domain.ConversionTable {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, src := range f.sources {
		url := src.URL(f.currency)
		table, err := f.fetchAllCurrencies(ctx, url)
		if err != nil {
			logger.Debug("Failed fetching currency rates", slog.String("url", url), slog.String("error", err.Error()))
			continue
		}
		if table.IsEmpty() {
			logger.Debug("Empty currency rates response, trying next source", slog.String("url", url))
			continue
		}
		return table
	}

	logger.Warn("All attempts to fetch currency rates failed", slog.Int("sources", len(f.sources)))
	return domain.ConversionTable{}
}

// fetchAllCurrencies issues a single bounded request and reads the object under the default currency key.
func (f *Fetcher) fetchAllCurrencies(ctx context.Context, url string) (domain.ConversionTable, error) {
	reqCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return parseTable(body, f.currency)
}

// parseTable extracts {currency: {code: rate}} keeping the source's key order.
// Non-numeric entries are dropped.
func parseTable(body []byte, currency string) (domain.ConversionTable, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON body")
	}
	rates := gjson.GetBytes(body, currency)
	if !rates.IsObject() {
		return domain.ConversionTable{}, nil
	}

	table := domain.ConversionTable{}
	rates.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Number {
			table = append(table, domain.CurrencyRate{CurrencyCode: strings.ToLower(key.String()), Rate: value.Float()})
		}
		return true
	})
	return table, nil
}
