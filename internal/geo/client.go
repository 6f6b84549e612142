package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// Place is one geocoding hit: a human-readable label with its point.
type Place struct {
	Label       string            `json:"label"`
	Coordinates model.Coordinates `json:"coordinates"`
	City        string            `json:"city,omitempty"`
	State       string            `json:"state,omitempty"`
}

// HTTPGeocoder talks to the maps provider's REST API.
type HTTPGeocoder struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPGeocoder(baseURL, apiKey string, timeout time.Duration) *HTTPGeocoder {
	return &HTTPGeocoder{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGeocoder) SearchPlaces(ctx context.Context, query string) ([]*Place, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("key", g.apiKey)

	var places []*Place
	if err := g.get(ctx, "/v1/search?"+q.Encode(), &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (g *HTTPGeocoder) ReverseGeocode(ctx context.Context, coords model.Coordinates) (*Place, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.5f", coords.Latitude))
	q.Set("lng", fmt.Sprintf("%.5f", coords.Longitude))
	q.Set("key", g.apiKey)

	var place Place
	if err := g.get(ctx, "/v1/reverse?"+q.Encode(), &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (g *HTTPGeocoder) get(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return apperrors.Upstream("The location service is unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperrors.Upstream(fmt.Sprintf("The location service responded with status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	return nil
}
