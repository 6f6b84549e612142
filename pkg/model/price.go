package model

import "time"

// CalculatedPrice is a server-derived quote tied to a calculation id. It is
// immutable once received: any change to the draft discards it, and a new
// calculation must be requested before booking.
type CalculatedPrice struct {
	CalculationID string    `json:"calculationId" bson:"calculation_id"`
	BasePrice     int64     `json:"basePrice" bson:"base_price"`
	PlatformFee   int64     `json:"platformFee" bson:"platform_fee"`
	Discount      int64     `json:"discount" bson:"discount"`
	ExtraHoursFee int64     `json:"extraHoursFee" bson:"extra_hours_fee"`
	OutskirtFee   int64     `json:"outskirtFee" bson:"outskirt_fee"`
	TotalPrice    int64     `json:"totalPrice" bson:"total_price"`
	Currency      string    `json:"currency" bson:"currency"`
	QuotedAt      time.Time `json:"quotedAt" bson:"quoted_at"`
}

// Remote booking statuses the customer flows care about.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusPaid      = "PAID"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

// Booking is the remote API's record of a created booking, read back after
// submission and listed on the dashboard.
type Booking struct {
	ID          string           `json:"id"`
	VehicleID   string           `json:"vehicleId"`
	Vehicle     *Vehicle         `json:"vehicle,omitempty"`
	Status      string           `json:"status"`
	Segments    []*TripSegment   `json:"segments"`
	Price       *CalculatedPrice `json:"price,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	PaymentLink string           `json:"paymentLink,omitempty"`
}
