package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/autogirlng/muvment-customer-sub002/internal/wizard"
	"github.com/autogirlng/muvment-customer-sub002/pkg/analytics"
	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/gateway"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// BookingGateway is the slice of the remote API the checkout needs.
// *gateway.BookingClient satisfies it.
type BookingGateway interface {
	Calculate(ctx context.Context, req gateway.CalculationRequest, token string) (*gateway.Result, error)
	Create(ctx context.Context, req gateway.CreateBookingRequest, token string) (*gateway.Result, error)
	InitiatePayment(ctx context.Context, bookingID, token string) (*gateway.Result, error)
	GetByID(ctx context.Context, id, token string) (*gateway.Result, error)
	DecodePrice(res *gateway.Result) (*model.CalculatedPrice, error)
	DecodeBooking(res *gateway.Result) (*model.Booking, error)
	DecodePayment(res *gateway.Result) (*gateway.PaymentInitiation, error)
}

// Service runs the submission side of a booking: price calculation,
// booking creation and payment initiation, each as a step pipeline over
// the checkout state machine.
type Service struct {
	drafts    wizard.DraftRepository
	checkouts Repository
	gateway   BookingGateway
	engine    *Engine
	events    analytics.Publisher
	log       *logger.Logger
}

func NewService(drafts wizard.DraftRepository, checkouts Repository, gw BookingGateway, events analytics.Publisher, log *logger.Logger) *Service {
	return &Service{
		drafts:    drafts,
		checkouts: checkouts,
		gateway:   gw,
		engine:    newFlowEngine(),
		events:    events,
		log:       log,
	}
}

// Calculate prices the draft's full itinerary. On success the quote is
// stored on the draft; a rejected calculation leaves the checkout workable
// in Draft with the server's message surfaced.
func (s *Service) Calculate(ctx context.Context, sessionID, token, draftID string) (*model.BookingDraft, error) {
	draft, err := s.ownedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	co, err := s.checkoutFor(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := co.Transition(StateCalculating); err != nil {
		return nil, err
	}
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}

	fc := NewFlowContext(ctx, map[string]any{DRAFT: draft, TOKEN: token}, s.gateway)
	if err := s.engine.Run(FlowCalculate, fc); err != nil {
		s.settleFailure(ctx, co, err)
		return nil, err
	}

	price := fc.Output[PRICE].(*model.CalculatedPrice)
	draft.Price = price
	draft.Revision++
	draft.UpdatedAt = time.Now().UTC()
	if err := s.drafts.Save(ctx, draft); err != nil {
		saveErr := apperrors.Internal("Failed to store the price quote", err)
		s.settleFailure(ctx, co, saveErr)
		return nil, saveErr
	}

	co.CalculationID = price.CalculationID
	if err := co.Transition(StateCalculated); err != nil {
		return nil, err
	}
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, analytics.Event{
		Name:      analytics.EventPriceCalculated,
		SessionID: sessionID,
		Props:     map[string]any{"draftId": draft.ID, "total": price.TotalPrice},
	})
	return draft, nil
}

// CreateBooking submits the draft under a previously calculated quote.
// A calculation id that no longer matches the draft's stored quote fails
// before any remote call.
func (s *Service) CreateBooking(ctx context.Context, sessionID, token, draftID, calculationID string) (*model.Booking, error) {
	draft, err := s.ownedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	co, err := s.checkouts.FindByDraft(ctx, draftID)
	if err != nil {
		return nil, apperrors.Conflict("Calculate a price before booking")
	}
	if err := co.Transition(StateCreating); err != nil {
		return nil, err
	}
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}

	fc := NewFlowContext(ctx, map[string]any{
		DRAFT:          draft,
		TOKEN:          token,
		CALCULATION_ID: calculationID,
	}, s.gateway)
	if err := s.engine.Run(FlowCreateBooking, fc); err != nil {
		s.settleFailure(ctx, co, err)
		return nil, err
	}

	booking := fc.Output[BOOKING].(*model.Booking)
	co.BookingID = booking.ID
	if err := co.Transition(StateCreated); err != nil {
		return nil, err
	}
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, analytics.Event{
		Name:      analytics.EventBookingCreated,
		SessionID: sessionID,
		Props:     map[string]any{"bookingId": booking.ID},
	})
	return booking, nil
}

// InitiatePayment asks the remote API for a payment redirect URL. Payment
// completion happens off-platform; the checkout stays in PaymentPending
// until confirmed.
func (s *Service) InitiatePayment(ctx context.Context, sessionID, token, draftID string) (*gateway.PaymentInitiation, error) {
	draft, err := s.ownedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	co, err := s.checkouts.FindByDraft(ctx, draft.ID)
	if err != nil {
		return nil, apperrors.Conflict("Create the booking before paying")
	}
	if err := co.Transition(StatePaymentPending); err != nil {
		return nil, err
	}
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}

	fc := NewFlowContext(ctx, map[string]any{
		BOOKING_ID: co.BookingID,
		TOKEN:      token,
	}, s.gateway)
	if err := s.engine.Run(FlowInitiatePayment, fc); err != nil {
		s.settleFailure(ctx, co, err)
		return nil, err
	}

	payment := fc.Output[PAYMENT].(*gateway.PaymentInitiation)
	co.PaymentURL = payment.RedirectURL
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, analytics.Event{
		Name:      analytics.EventPaymentInitiated,
		SessionID: sessionID,
		Props:     map[string]any{"bookingId": co.BookingID},
	})
	return payment, nil
}

// ConfirmPayment checks the remote booking after the customer returns from
// the payment redirect and, when it is paid, completes the checkout and
// clears the draft.
func (s *Service) ConfirmPayment(ctx context.Context, sessionID, token, draftID string) (*Checkout, error) {
	draft, err := s.ownedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	co, err := s.checkouts.FindByDraft(ctx, draft.ID)
	if err != nil || co.State != StatePaymentPending {
		return nil, apperrors.Conflict("No payment is pending for this booking")
	}

	res, err := s.gateway.GetByID(ctx, co.BookingID, token)
	if err != nil {
		return nil, err
	}
	if res.Err {
		return nil, apperrors.Upstream(res.Message, nil)
	}
	booking, err := s.gateway.DecodeBooking(res)
	if err != nil {
		return nil, err
	}

	if booking.Status != model.BookingStatusPaid {
		return co, nil
	}

	if err := co.Transition(StatePaymentComplete); err != nil {
		return nil, err
	}
	if err := s.save(ctx, co); err != nil {
		return nil, err
	}
	if err := s.drafts.Delete(ctx, draft.ID); err != nil {
		s.log.Error("Failed to clear draft after payment", "draft_id", draft.ID, "error", err)
	}
	return co, nil
}

func (s *Service) Status(ctx context.Context, sessionID, draftID string) (*Checkout, error) {
	draft, err := s.ownedDraft(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	co, err := s.checkouts.FindByDraft(ctx, draft.ID)
	if err != nil {
		return nil, apperrors.NotFound("checkout")
	}
	return co, nil
}

func (s *Service) ownedDraft(ctx context.Context, sessionID, draftID string) (*model.BookingDraft, error) {
	draft, err := s.drafts.FindByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			return nil, apperrors.NotFound("booking draft")
		}
		return nil, apperrors.Internal("Failed to load booking draft", err)
	}
	if draft.SessionID != sessionID {
		return nil, apperrors.NotFound("booking draft")
	}
	return draft, nil
}

func (s *Service) checkoutFor(ctx context.Context, draft *model.BookingDraft) (*Checkout, error) {
	co, err := s.checkouts.FindByDraft(ctx, draft.ID)
	if err == nil {
		return co, nil
	}
	if !errors.Is(err, ErrCheckoutNotFound) {
		return nil, apperrors.Internal("Failed to load checkout", err)
	}

	now := time.Now().UTC()
	return &Checkout{
		ID:        uuid.NewString(),
		DraftID:   draft.ID,
		SessionID: draft.SessionID,
		State:     StateDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// settleFailure parks the checkout after a failed pipeline or a lost
// write: rejected and offline calculations drop back to Draft so the
// wizard stays usable, anything else is Failed until the customer
// recalculates.
func (s *Service) settleFailure(ctx context.Context, co *Checkout, cause error) {
	var parked error
	if co.State == StateCalculating &&
		(apperrors.IsCode(cause, apperrors.CodeUpstream) || apperrors.IsCode(cause, apperrors.CodeOffline) || apperrors.IsCode(cause, apperrors.CodeStepIncomplete)) {
		parked = co.Transition(StateDraft)
	} else {
		parked = co.Fail(cause.Error())
	}
	if parked != nil {
		s.log.Error("Failed to park checkout state", "checkout_id", co.ID, "error", parked)
		return
	}
	if err := s.save(ctx, co); err != nil {
		s.log.Error("Failed to persist checkout state", "checkout_id", co.ID, "error", err)
	}
}

func (s *Service) save(ctx context.Context, co *Checkout) error {
	if err := s.checkouts.Save(ctx, co); err != nil {
		return apperrors.Internal("Failed to save checkout", err)
	}
	return nil
}
