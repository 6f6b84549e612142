package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type VehicleClient struct {
	gw *Client
}

func NewVehicleClient(gw *Client) *VehicleClient {
	return &VehicleClient{gw: gw}
}

func (c *VehicleClient) Search(ctx context.Context, filter model.VehicleSearchFilter) (*Result, error) {
	q := url.Values{}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Location != "" {
		q.Set("location", filter.Location)
	}
	if filter.MinPrice > 0 {
		q.Set("minPrice", fmt.Sprintf("%d", filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		q.Set("maxPrice", fmt.Sprintf("%d", filter.MaxPrice))
	}
	q.Set("page", fmt.Sprintf("%d", filter.Page))
	q.Set("size", fmt.Sprintf("%d", filter.Size))

	return c.gw.Get(ctx, "/api/v1/vehicles?"+q.Encode(), "")
}

func (c *VehicleClient) GetByID(ctx context.Context, id string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/vehicles/"+url.PathEscape(id), "")
}

func (c *VehicleClient) GetReviews(ctx context.Context, vehicleID string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/vehicles/"+url.PathEscape(vehicleID)+"/reviews", "")
}

func (c *VehicleClient) DecodeVehicle(res *Result) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := res.Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("could not decode vehicle: %w", err)
	}
	return &vehicle, nil
}

func (c *VehicleClient) DecodeVehicles(res *Result) ([]*model.Vehicle, *PageMeta, error) {
	var vehicles []*model.Vehicle
	meta, err := res.DecodePage(&vehicles)
	if err != nil {
		return nil, nil, fmt.Errorf("could not decode vehicle list: %w", err)
	}
	return vehicles, meta, nil
}

func (c *VehicleClient) DecodeReviews(res *Result) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := res.Decode(&reviews); err != nil {
		return nil, fmt.Errorf("could not decode reviews: %w", err)
	}
	return reviews, nil
}
