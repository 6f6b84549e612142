package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
	"github.com/autogirlng/muvment-customer-sub002/pkg/sanitizer"
)

// Geocoder resolves free-text place queries and coordinate pairs.
// *HTTPGeocoder satisfies it.
type Geocoder interface {
	SearchPlaces(ctx context.Context, query string) ([]*Place, error)
	ReverseGeocode(ctx context.Context, coords model.Coordinates) (*Place, error)
}

type Service struct {
	geocoder Geocoder
	cache    Cache
	ttl      time.Duration
	log      *logger.Logger
}

func NewService(geocoder Geocoder, cache Cache, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{
		geocoder: geocoder,
		cache:    cache,
		ttl:      ttl,
		log:      log,
	}
}

func (s *Service) Search(ctx context.Context, query string) ([]*Place, error) {
	query = sanitizer.NormalizeAddress(query)
	if query == "" {
		return nil, apperrors.InvalidInput("A search query is required")
	}

	key := "geo:search:" + sanitizer.CacheKey(query)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var places []*Place
		if err := json.Unmarshal(cached, &places); err == nil {
			return places, nil
		}
	}

	places, err := s.geocoder.SearchPlaces(ctx, query)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(places); err == nil {
		s.cache.Set(ctx, key, encoded, s.ttl)
	}
	return places, nil
}

func (s *Service) Reverse(ctx context.Context, coords model.Coordinates) (*Place, error) {
	if coords.IsZero() {
		return nil, apperrors.InvalidInput("Coordinates are required")
	}

	key := fmt.Sprintf("geo:reverse:%.5f:%.5f", coords.Latitude, coords.Longitude)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var place Place
		if err := json.Unmarshal(cached, &place); err == nil {
			return &place, nil
		}
	}

	place, err := s.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(place); err == nil {
		s.cache.Set(ctx, key, encoded, s.ttl)
	}
	return place, nil
}
