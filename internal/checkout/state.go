package checkout

import (
	"time"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
)

// State of one checkout as it moves from a priced draft to a paid booking.
type State string

const (
	StateDraft           State = "DRAFT"
	StateCalculating     State = "CALCULATING"
	StateCalculated      State = "CALCULATED"
	StateCreating        State = "CREATING"
	StateCreated         State = "CREATED"
	StatePaymentPending  State = "PAYMENT_PENDING"
	StatePaymentComplete State = "PAYMENT_COMPLETE"
	StateFailed          State = "FAILED"
)

// transitions is the full legal move set. Failed is reachable from every
// in-flight state, and retrying the calculation is the only way out of it.
// In-flight states may re-enter themselves: a checkout persisted mid-request
// (the settle write itself failed) must never block the retry.
var transitions = map[State][]State{
	StateDraft:          {StateCalculating},
	StateCalculating:    {StateCalculating, StateCalculated, StateDraft, StateFailed},
	StateCalculated:     {StateCreating, StateCalculating},
	StateCreating:       {StateCreating, StateCreated, StateFailed},
	StateCreated:        {StatePaymentPending},
	StatePaymentPending: {StatePaymentPending, StatePaymentComplete, StateFailed},
	StateFailed:         {StateCalculating},
}

func (s State) CanTransitionTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Checkout tracks the submission side of a booking draft. The draft itself
// still owns the itinerary and the quote; this records how far the
// submission got.
type Checkout struct {
	ID            string    `json:"id" bson:"_id"`
	DraftID       string    `json:"draftId" bson:"draft_id"`
	SessionID     string    `json:"-" bson:"session_id"`
	State         State     `json:"state" bson:"state"`
	CalculationID string    `json:"calculationId,omitempty" bson:"calculation_id,omitempty"`
	BookingID     string    `json:"bookingId,omitempty" bson:"booking_id,omitempty"`
	PaymentURL    string    `json:"paymentUrl,omitempty" bson:"payment_url,omitempty"`
	FailureReason string    `json:"failureReason,omitempty" bson:"failure_reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

func (c *Checkout) Transition(next State) error {
	if !c.State.CanTransitionTo(next) {
		return apperrors.Conflict("Checkout cannot move from " + string(c.State) + " to " + string(next))
	}
	c.State = next
	c.UpdatedAt = time.Now().UTC()
	if next != StateFailed {
		c.FailureReason = ""
	}
	return nil
}

func (c *Checkout) Fail(reason string) error {
	if err := c.Transition(StateFailed); err != nil {
		return err
	}
	c.FailureReason = reason
	return nil
}
