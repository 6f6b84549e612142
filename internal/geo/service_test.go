package geo

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type mockGeocoder struct {
	searchCalls  int
	reverseCalls int
	searchFunc   func(ctx context.Context, query string) ([]*Place, error)
	reverseFunc  func(ctx context.Context, coords model.Coordinates) (*Place, error)
}

func (m *mockGeocoder) SearchPlaces(ctx context.Context, query string) ([]*Place, error) {
	m.searchCalls++
	return m.searchFunc(ctx, query)
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, coords model.Coordinates) (*Place, error) {
	m.reverseCalls++
	return m.reverseFunc(ctx, coords)
}

type memoryCache struct {
	entries map[string][]byte
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.entries[key] = value
}

func newGeoService(geocoder Geocoder, cache Cache) *Service {
	return NewService(geocoder, cache, 30*time.Minute, logger.New(logger.Config{Level: "error", Format: "text"}))
}

func TestSearchCachesResults(t *testing.T) {
	geocoder := &mockGeocoder{
		searchFunc: func(ctx context.Context, query string) ([]*Place, error) {
			return []*Place{{Label: "Lekki Phase 1, Lagos", Coordinates: model.Coordinates{Latitude: 6.4478, Longitude: 3.4723}}}, nil
		},
	}
	cache := &memoryCache{entries: make(map[string][]byte)}
	svc := newGeoService(geocoder, cache)

	first, err := svc.Search(context.Background(), "Lekki Phase 1")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("places = %d, want 1", len(first))
	}

	// Same query again, differently cased and spaced: served from cache.
	second, err := svc.Search(context.Background(), "  lekki   phase 1 ")
	if err != nil {
		t.Fatalf("second Search() error = %v", err)
	}
	if len(second) != 1 || second[0].Label != first[0].Label {
		t.Errorf("cached result = %+v, want %+v", second, first)
	}
	if geocoder.searchCalls != 1 {
		t.Errorf("geocoder calls = %d, want 1 (second lookup cached)", geocoder.searchCalls)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newGeoService(&mockGeocoder{}, &memoryCache{entries: make(map[string][]byte)})

	_, err := svc.Search(context.Background(), "   ")
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("Search() error = %v, want %s", err, apperrors.CodeInvalidInput)
	}
}

func TestReverseCachesByRoundedCoords(t *testing.T) {
	geocoder := &mockGeocoder{
		reverseFunc: func(ctx context.Context, coords model.Coordinates) (*Place, error) {
			return &Place{Label: "Ikeja GRA, Lagos", Coordinates: coords}, nil
		},
	}
	cache := &memoryCache{entries: make(map[string][]byte)}
	svc := newGeoService(geocoder, cache)

	coords := model.Coordinates{Latitude: 6.583301, Longitude: 3.350002}
	if _, err := svc.Reverse(context.Background(), coords); err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}

	// A nearby point that rounds to the same 5-decimal key is a cache hit.
	near := model.Coordinates{Latitude: 6.583299, Longitude: 3.350001}
	place, err := svc.Reverse(context.Background(), near)
	if err != nil {
		t.Fatalf("second Reverse() error = %v", err)
	}
	if place.Label != "Ikeja GRA, Lagos" {
		t.Errorf("place label = %q", place.Label)
	}
	if geocoder.reverseCalls != 1 {
		t.Errorf("geocoder calls = %d, want 1", geocoder.reverseCalls)
	}
}

func TestReverseRejectsZeroCoords(t *testing.T) {
	svc := newGeoService(&mockGeocoder{}, &memoryCache{entries: make(map[string][]byte)})

	_, err := svc.Reverse(context.Background(), model.Coordinates{})
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("Reverse() error = %v, want %s", err, apperrors.CodeInvalidInput)
	}
}
