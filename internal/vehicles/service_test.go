package vehicles

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type mockVehicleGateway struct {
	searchFunc     func(ctx context.Context, filter model.VehicleSearchFilter) (*gateway.Result, error)
	getByIDFunc    func(ctx context.Context, id string) (*gateway.Result, error)
	getReviewsFunc func(ctx context.Context, vehicleID string) (*gateway.Result, error)
}

func (m *mockVehicleGateway) Search(ctx context.Context, filter model.VehicleSearchFilter) (*gateway.Result, error) {
	return m.searchFunc(ctx, filter)
}

func (m *mockVehicleGateway) GetByID(ctx context.Context, id string) (*gateway.Result, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockVehicleGateway) GetReviews(ctx context.Context, vehicleID string) (*gateway.Result, error) {
	return m.getReviewsFunc(ctx, vehicleID)
}

func (m *mockVehicleGateway) DecodeVehicle(res *gateway.Result) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := res.Decode(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (m *mockVehicleGateway) DecodeVehicles(res *gateway.Result) ([]*model.Vehicle, *gateway.PageMeta, error) {
	var vehicles []*model.Vehicle
	meta, err := res.DecodePage(&vehicles)
	if err != nil {
		return nil, nil, err
	}
	return vehicles, meta, nil
}

func (m *mockVehicleGateway) DecodeReviews(res *gateway.Result) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := res.Decode(&reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func jsonResult(t *testing.T, payload any) *gateway.Result {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return &gateway.Result{Data: data, Status: http.StatusOK}
}

func testVehicle(id string) *model.Vehicle {
	return &model.Vehicle{
		ID:   id,
		ListingName: "Toyota Camry 2022",
		PricingOptions: []model.PricingOption{
			{Name: model.DurationTwelveHours, Price: 20000},
			{Name: model.DurationAnHour, Price: 5000},
		},
	}
}

func newVehicleService(gw VehicleGateway) *Service {
	return NewService(gw, logger.New(logger.Config{Level: "error", Format: "text"}))
}

func TestSearchAnnotatesCards(t *testing.T) {
	gw := &mockVehicleGateway{
		searchFunc: func(ctx context.Context, filter model.VehicleSearchFilter) (*gateway.Result, error) {
			if filter.Location != "Lagos" {
				t.Errorf("filter location = %q, want Lagos", filter.Location)
			}
			return jsonResult(t, map[string]any{
				"data":          []*model.Vehicle{testVehicle("veh-1")},
				"page":          1,
				"size":          10,
				"totalElements": 1,
				"totalPages":    1,
			}), nil
		},
	}
	svc := newVehicleService(gw)

	result, err := svc.Search(context.Background(), model.VehicleSearchFilter{Location: "Lagos", Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(result.Vehicles) != 1 {
		t.Fatalf("vehicles = %d, want 1", len(result.Vehicles))
	}

	card := result.Vehicles[0]
	if card.DisplayPrice != 20000 {
		t.Errorf("card price = %d, want the first option 20000", card.DisplayPrice)
	}
	if card.PriceLabel != "Daily" {
		t.Errorf("card label = %q, want Daily", card.PriceLabel)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	gw := &mockVehicleGateway{
		searchFunc: func(ctx context.Context, filter model.VehicleSearchFilter) (*gateway.Result, error) {
			return &gateway.Result{Err: true, Message: gateway.MsgServerError, Status: http.StatusBadGateway}, nil
		},
	}
	svc := newVehicleService(gw)

	_, err := svc.Search(context.Background(), model.VehicleSearchFilter{Page: 1, Size: 10})
	if !apperrors.IsCode(err, apperrors.CodeUpstream) {
		t.Errorf("Search() error = %v, want %s", err, apperrors.CodeUpstream)
	}
}

func TestGetDetailFansOut(t *testing.T) {
	gw := &mockVehicleGateway{
		getByIDFunc: func(ctx context.Context, id string) (*gateway.Result, error) {
			return jsonResult(t, testVehicle(id)), nil
		},
		getReviewsFunc: func(ctx context.Context, vehicleID string) (*gateway.Result, error) {
			return jsonResult(t, []*model.Review{{ID: "rev-1", VehicleID: vehicleID, Rating: 4.5}}), nil
		},
	}
	svc := newVehicleService(gw)

	detail, err := svc.GetDetail(context.Background(), "veh-1", model.DurationAnHour)
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if detail.Vehicle == nil || detail.Vehicle.ID != "veh-1" {
		t.Fatalf("detail vehicle = %+v", detail.Vehicle)
	}
	if len(detail.Reviews) != 1 {
		t.Errorf("reviews = %d, want 1", len(detail.Reviews))
	}
	if detail.DisplayPrice != 5000 {
		t.Errorf("display price = %d, want 5000 for %s", detail.DisplayPrice, model.DurationAnHour)
	}
	if detail.PriceLabel != "1 Hour" {
		t.Errorf("price label = %q, want 1 Hour", detail.PriceLabel)
	}
}

func TestGetDetailSurvivesReviewFailure(t *testing.T) {
	gw := &mockVehicleGateway{
		getByIDFunc: func(ctx context.Context, id string) (*gateway.Result, error) {
			return jsonResult(t, testVehicle(id)), nil
		},
		getReviewsFunc: func(ctx context.Context, vehicleID string) (*gateway.Result, error) {
			return nil, errors.New("reviews backend down")
		},
	}
	svc := newVehicleService(gw)

	detail, err := svc.GetDetail(context.Background(), "veh-1", "")
	if err != nil {
		t.Fatalf("GetDetail() error = %v", err)
	}
	if detail.Reviews == nil || len(detail.Reviews) != 0 {
		t.Errorf("reviews = %v, want an empty list", detail.Reviews)
	}
}

func TestGetDetailNotFound(t *testing.T) {
	gw := &mockVehicleGateway{
		getByIDFunc: func(ctx context.Context, id string) (*gateway.Result, error) {
			return &gateway.Result{Err: true, Message: gateway.MsgUnexpected, Status: http.StatusNotFound}, nil
		},
		getReviewsFunc: func(ctx context.Context, vehicleID string) (*gateway.Result, error) {
			return jsonResult(t, []*model.Review{}), nil
		},
	}
	svc := newVehicleService(gw)

	_, err := svc.GetDetail(context.Background(), "veh-404", "")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("GetDetail() error = %v, want %s", err, apperrors.CodeNotFound)
	}
}
