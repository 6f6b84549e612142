package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

type BookingClient struct {
	gw *Client
}

func NewBookingClient(gw *Client) *BookingClient {
	return &BookingClient{gw: gw}
}

type CalculationRequest struct {
	VehicleID string               `json:"vehicleId"`
	Segments  []*model.TripSegment `json:"segments"`
}

type CreateBookingRequest struct {
	CalculationID string             `json:"calculationId"`
	Contact       *model.ContactInfo `json:"contact"`
}

type PaymentInitiation struct {
	BookingID   string `json:"bookingId"`
	RedirectURL string `json:"redirectUrl"`
	Reference   string `json:"reference"`
}

// Calculate submits the full segment set as one calculation request.
func (c *BookingClient) Calculate(ctx context.Context, req CalculationRequest, token string) (*Result, error) {
	return c.gw.Post(ctx, "/api/v1/bookings/calculate", req, token)
}

func (c *BookingClient) Create(ctx context.Context, req CreateBookingRequest, token string) (*Result, error) {
	return c.gw.Post(ctx, "/api/v1/bookings", req, token)
}

func (c *BookingClient) InitiatePayment(ctx context.Context, bookingID, token string) (*Result, error) {
	path := "/api/v1/bookings/" + url.PathEscape(bookingID) + "/payment"
	return c.gw.Post(ctx, path, nil, token)
}

func (c *BookingClient) List(ctx context.Context, token string, page, size int) (*Result, error) {
	path := fmt.Sprintf("/api/v1/bookings?page=%d&size=%d", page, size)
	return c.gw.Get(ctx, path, token)
}

func (c *BookingClient) GetByID(ctx context.Context, id, token string) (*Result, error) {
	return c.gw.Get(ctx, "/api/v1/bookings/"+url.PathEscape(id), token)
}

func (c *BookingClient) DecodePrice(res *Result) (*model.CalculatedPrice, error) {
	var price model.CalculatedPrice
	if err := res.Decode(&price); err != nil {
		return nil, fmt.Errorf("could not decode calculated price: %w", err)
	}
	return &price, nil
}

func (c *BookingClient) DecodeBooking(res *Result) (*model.Booking, error) {
	var booking model.Booking
	if err := res.Decode(&booking); err != nil {
		return nil, fmt.Errorf("could not decode booking: %w", err)
	}
	return &booking, nil
}

func (c *BookingClient) DecodeBookings(res *Result) ([]*model.Booking, *PageMeta, error) {
	var bookings []*model.Booking
	meta, err := res.DecodePage(&bookings)
	if err != nil {
		return nil, nil, fmt.Errorf("could not decode booking list: %w", err)
	}
	return bookings, meta, nil
}

func (c *BookingClient) DecodePayment(res *Result) (*PaymentInitiation, error) {
	var payment PaymentInitiation
	if err := res.Decode(&payment); err != nil {
		return nil, fmt.Errorf("could not decode payment initiation: %w", err)
	}
	return &payment, nil
}
