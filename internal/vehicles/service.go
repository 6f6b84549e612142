package vehicles

import (
	"context"
	"net/http"
	"sync"

	"github.com/autogirlng/muvment-customer-sub002/internal/pricing"
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// VehicleGateway is the slice of the remote API the catalogue needs.
// *gateway.VehicleClient satisfies it.
type VehicleGateway interface {
	Search(ctx context.Context, filter model.VehicleSearchFilter) (*gateway.Result, error)
	GetByID(ctx context.Context, id string) (*gateway.Result, error)
	GetReviews(ctx context.Context, vehicleID string) (*gateway.Result, error)
	DecodeVehicle(res *gateway.Result) (*model.Vehicle, error)
	DecodeVehicles(res *gateway.Result) ([]*model.Vehicle, *gateway.PageMeta, error)
	DecodeReviews(res *gateway.Result) ([]*model.Review, error)
}

// SearchResult is a page of catalogue cards, each annotated with the price
// shown on the card for the default duration.
type SearchResult struct {
	Vehicles []*VehicleCard    `json:"vehicles"`
	Meta     *gateway.PageMeta `json:"-"`
}

type VehicleCard struct {
	*model.Vehicle
	DisplayPrice int64  `json:"displayPrice"`
	PriceLabel   string `json:"priceLabel"`
}

// Detail bundles the vehicle with its reviews; both halves are fetched
// concurrently and the response waits for the pair.
type Detail struct {
	Vehicle      *model.Vehicle  `json:"vehicle"`
	Reviews      []*model.Review `json:"reviews"`
	DisplayPrice int64           `json:"displayPrice"`
	PriceLabel   string          `json:"priceLabel"`
}

type Service struct {
	gateway VehicleGateway
	log     *logger.Logger
}

func NewService(gw VehicleGateway, log *logger.Logger) *Service {
	return &Service{gateway: gw, log: log}
}

func (s *Service) Search(ctx context.Context, filter model.VehicleSearchFilter) (*SearchResult, error) {
	res, err := s.gateway.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if res.Err {
		return nil, apperrors.Upstream(res.Message, nil)
	}

	vehicles, meta, err := s.gateway.DecodeVehicles(res)
	if err != nil {
		return nil, err
	}

	cards := make([]*VehicleCard, 0, len(vehicles))
	for _, v := range vehicles {
		cards = append(cards, &VehicleCard{
			Vehicle:      v,
			DisplayPrice: pricing.DisplayPrice("", v.PricingOptions),
			PriceLabel:   pricing.DisplayLabel(""),
		})
	}
	return &SearchResult{Vehicles: cards, Meta: meta}, nil
}

// GetDetail fetches the vehicle and its reviews in parallel. A failed
// review fetch does not sink the page; the detail renders with an empty
// review list.
func (s *Service) GetDetail(ctx context.Context, id, durationType string) (*Detail, error) {
	var (
		wg         sync.WaitGroup
		vehicle    *model.Vehicle
		vehicleErr error
		reviews    []*model.Review
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := s.gateway.GetByID(ctx, id)
		if err != nil {
			vehicleErr = err
			return
		}
		if res.Err {
			if res.Status == http.StatusNotFound {
				vehicleErr = apperrors.NotFoundWithID("vehicle", id)
			} else {
				vehicleErr = apperrors.Upstream(res.Message, nil)
			}
			return
		}
		vehicle, vehicleErr = s.gateway.DecodeVehicle(res)
	}()
	go func() {
		defer wg.Done()
		res, err := s.gateway.GetReviews(ctx, id)
		if err != nil || res.Err {
			s.log.Warn("Review fetch failed", "vehicle_id", id, "error", err)
			return
		}
		decoded, decodeErr := s.gateway.DecodeReviews(res)
		if decodeErr != nil {
			s.log.Warn("Review decode failed", "vehicle_id", id, "error", decodeErr)
			return
		}
		reviews = decoded
	}()
	wg.Wait()

	if vehicleErr != nil {
		return nil, vehicleErr
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}

	return &Detail{
		Vehicle:      vehicle,
		Reviews:      reviews,
		DisplayPrice: pricing.DisplayPrice(durationType, vehicle.PricingOptions),
		PriceLabel:   pricing.DisplayLabel(durationType),
	}, nil
}
