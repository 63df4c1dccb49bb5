package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/velofab/pallet-service/internal/domain/model"
	"github.com/velofab/pallet-service/internal/validation"
)

// HTTPOrderFetcher fetches order lines from the upstream order system over
// HTTP. It implements validation.OrderFetcher.
type HTTPOrderFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPOrderFetcher creates a fetcher against the order system base URL.
// apiKey may be empty when the upstream requires no authentication.
func NewHTTPOrderFetcher(baseURL, apiKey string, timeout time.Duration) *HTTPOrderFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPOrderFetcher{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// orderLineDoc mirrors the upstream order system's line shape.
type orderLineDoc struct {
	SKU         string `json:"sku"`
	Qty         int    `json:"qty"`
	Description string `json:"description,omitempty"`
}

// FetchOrder returns the line items for a reference order id. A 404 from the
// upstream maps to validation.ErrOrderNotFound; everything else surfaces as a
// fetch error.
func (f *HTTPOrderFetcher) FetchOrder(ctx context.Context, referenceID string) ([]model.OrderLine, error) {
	endpoint := fmt.Sprintf("%s/orders/%s/lines", f.baseURL, url.PathEscape(referenceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building order request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("X-API-Key", f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", validation.ErrOrderSystem, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, validation.ErrOrderNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", validation.ErrOrderSystem, resp.StatusCode)
	}

	var docs []orderLineDoc
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decoding order lines: %w", err)
	}

	lines := make([]model.OrderLine, 0, len(docs))
	for _, d := range docs {
		lines = append(lines, model.OrderLine{
			SKU:         d.SKU,
			Qty:         d.Qty,
			Description: d.Description,
		})
	}
	return lines, nil
}
