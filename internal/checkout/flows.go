package checkout

import (
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// Flow names and the context keys steps hand values around with.
const (
	FlowCalculate       = "calculate_price"
	FlowCreateBooking   = "create_booking"
	FlowInitiatePayment = "initiate_payment"

	DRAFT          = "draft"
	TOKEN          = "token"
	CALCULATION_ID = "calculation_id"
	BOOKING_ID     = "booking_id"
	PRICE          = "price"
	BOOKING        = "booking"
	PAYMENT        = "payment"
)

func newFlowEngine() *Engine {
	return NewEngine(
		&Flow{Name: FlowCalculate, Steps: []*Step{
			NewStep("validate_itinerary", ValidateItinerary),
			NewStep("request_calculation", RequestCalculation),
		}},
		&Flow{Name: FlowCreateBooking, Steps: []*Step{
			NewStep("verify_quote", VerifyQuote),
			NewStep("submit_booking", SubmitBooking),
		}},
		&Flow{Name: FlowInitiatePayment, Steps: []*Step{
			NewStep("request_payment_link", RequestPaymentLink),
		}},
	)
}

// ValidateItinerary refuses to price a draft whose segments are not all
// complete; the missing fields per segment go into the error details.
func ValidateItinerary(fc *FlowContext) error {
	draft := fc.Input[DRAFT].(*model.BookingDraft)
	if draft.ItineraryComplete() {
		return nil
	}

	missing := map[string]any{}
	for _, segment := range draft.Segments {
		if fields := segment.MissingFields(); len(fields) > 0 {
			missing[segment.ID] = fields
		}
	}
	if len(draft.Segments) == 0 {
		missing["segments"] = "at least one trip is required"
	}
	return apperrors.StepIncomplete("Complete the itinerary before requesting a price", missing)
}

// RequestCalculation sends the whole segment set as one request; partial
// pricing per segment is never requested.
func RequestCalculation(fc *FlowContext) error {
	draft := fc.Input[DRAFT].(*model.BookingDraft)
	token, _ := fc.Input[TOKEN].(string)

	res, err := fc.Gateway.Calculate(fc.Ctx, gateway.CalculationRequest{
		VehicleID: draft.VehicleID,
		Segments:  draft.Segments,
	}, token)
	if err != nil {
		return err
	}
	if res.Err {
		return apperrors.Upstream(res.Message, nil)
	}

	price, err := fc.Gateway.DecodePrice(res)
	if err != nil {
		return err
	}
	fc.Output[PRICE] = price
	return nil
}

// VerifyQuote fails fast when the calculation id no longer matches the
// draft's stored quote, before any remote call is issued.
func VerifyQuote(fc *FlowContext) error {
	draft := fc.Input[DRAFT].(*model.BookingDraft)
	calculationID, _ := fc.Input[CALCULATION_ID].(string)

	if draft.Price == nil || calculationID == "" || draft.Price.CalculationID != calculationID {
		return apperrors.StaleCalculation()
	}
	return nil
}

func SubmitBooking(fc *FlowContext) error {
	draft := fc.Input[DRAFT].(*model.BookingDraft)
	calculationID, _ := fc.Input[CALCULATION_ID].(string)
	token, _ := fc.Input[TOKEN].(string)

	res, err := fc.Gateway.Create(fc.Ctx, gateway.CreateBookingRequest{
		CalculationID: calculationID,
		Contact:       draft.Contact,
	}, token)
	if err != nil {
		return err
	}
	if res.Err {
		return apperrors.Upstream(res.Message, nil)
	}

	booking, err := fc.Gateway.DecodeBooking(res)
	if err != nil {
		return err
	}
	fc.Output[BOOKING] = booking
	return nil
}

func RequestPaymentLink(fc *FlowContext) error {
	bookingID, _ := fc.Input[BOOKING_ID].(string)
	token, _ := fc.Input[TOKEN].(string)

	res, err := fc.Gateway.InitiatePayment(fc.Ctx, bookingID, token)
	if err != nil {
		return err
	}
	if res.Err {
		return apperrors.Upstream(res.Message, nil)
	}

	payment, err := fc.Gateway.DecodePayment(res)
	if err != nil {
		return err
	}
	fc.Output[PAYMENT] = payment
	return nil
}
