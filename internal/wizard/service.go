package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
	"github.com/autogirlng/muvment-customer-sub002/pkg/sanitizer"
)

// Controller drives the three-step booking wizard: personal info,
// itinerary, summary. Every mutation bumps the draft revision and is
// written through to the store, so a page reload resumes mid-flow.
type Controller struct {
	repo      DraftRepository
	validator *DraftValidator
	log       *logger.Logger
}

func NewController(repo DraftRepository, validator *DraftValidator, log *logger.Logger) *Controller {
	return &Controller{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// Start opens a draft for the session and vehicle. An existing draft for
// the same vehicle is resumed; a draft for a different vehicle is
// replaced, the old itinerary does not carry over.
func (c *Controller) Start(ctx context.Context, sessionID, vehicleID string) (*model.BookingDraft, error) {
	if vehicleID == "" {
		return nil, apperrors.InvalidInput("A vehicle must be selected before booking")
	}

	existing, err := c.repo.FindBySession(ctx, sessionID)
	if err == nil && existing.VehicleID == vehicleID {
		return existing, nil
	}
	if err == nil {
		if delErr := c.repo.Delete(ctx, existing.ID); delErr != nil {
			return nil, apperrors.Internal("Failed to replace booking draft", delErr)
		}
	}

	now := time.Now().UTC()
	draft := &model.BookingDraft{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		VehicleID: vehicleID,
		Step:      model.StepPersonalInfo,
		Segments:  []*model.TripSegment{},
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.repo.Save(ctx, draft); err != nil {
		return nil, apperrors.Internal("Failed to create booking draft", err)
	}

	c.log.Info("Booking draft started", "draft_id", draft.ID, "vehicle_id", vehicleID)
	return draft, nil
}

// Restore returns the persisted draft for the session when it matches the
// revision and segment-id set the caller last saw. A mismatch means the
// persisted copy is stale; it is discarded rather than merged.
func (c *Controller) Restore(ctx context.Context, sessionID string, revision int64, segmentIDs []string) (*model.BookingDraft, error) {
	draft, err := c.repo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if draft.Revision != revision || !sameIDSet(draft.SegmentIDs(), segmentIDs) {
		c.log.Info("Discarding stale booking draft",
			"draft_id", draft.ID,
			"stored_revision", draft.Revision,
			"client_revision", revision,
		)
		if delErr := c.repo.Delete(ctx, draft.ID); delErr != nil {
			return nil, apperrors.Internal("Failed to discard stale draft", delErr)
		}
		return nil, ErrDraftNotFound
	}

	return draft, nil
}

// Get loads the session's draft. A draft belongs to exactly one session;
// another session's draft id behaves as if it does not exist.
func (c *Controller) Get(ctx context.Context, sessionID, draftID string) (*model.BookingDraft, error) {
	draft, err := c.repo.FindByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return nil, apperrors.NotFound("booking draft")
		}
		return nil, apperrors.Internal("Failed to load booking draft", err)
	}
	if draft.SessionID != sessionID {
		return nil, apperrors.NotFound("booking draft")
	}
	return draft, nil
}

// GoToStep moves the wizard to the given step. Forward movement requires
// every earlier step to be complete; moving back is always allowed.
func (c *Controller) GoToStep(ctx context.Context, sessionID, draftID string, step int) (*model.BookingDraft, error) {
	if step < model.StepPersonalInfo || step > model.StepSummary {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid wizard step: %d", step))
	}

	draft, err := c.Get(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	for s := model.StepPersonalInfo; s < step; s++ {
		if !draft.StepComplete(s) {
			return nil, apperrors.StepIncomplete("Complete the earlier steps first", map[string]any{
				"incompleteStep": s,
			})
		}
	}

	draft.Step = step
	return c.persist(ctx, draft)
}

// SubmitPersonalInfo replaces the draft's contact details after
// normalization. The wizard advances past the first step on success.
func (c *Controller) SubmitPersonalInfo(ctx context.Context, sessionID, draftID string, contact model.ContactInfo) (*model.BookingDraft, error) {
	draft, err := c.Get(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = sanitizer.NormalizeName(contact.FirstName)
	contact.LastName = sanitizer.NormalizeName(contact.LastName)
	contact.Email = sanitizer.NormalizeEmail(contact.Email)
	contact.Phone = sanitizer.NormalizePhone(contact.Phone)

	if err := c.validator.ValidateContact(&contact); err != nil {
		return nil, err
	}

	draft.Contact = &contact
	if draft.Step == model.StepPersonalInfo {
		draft.Step = model.StepItinerary
	}
	return c.persist(ctx, draft)
}

// AddSegment appends a new trip to the itinerary. The segment id is
// assigned by the caller; a new segment starts incomplete and becomes the
// open one for editing while the rest stay collapsed.
func (c *Controller) AddSegment(ctx context.Context, sessionID, draftID string, segment *model.TripSegment) (*model.BookingDraft, error) {
	draft, err := c.Get(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	if segment.ID == "" {
		segment.ID = uuid.NewString()
	}
	if existing := draft.SegmentByID(segment.ID); existing != nil {
		return nil, apperrors.InvalidInput("A trip with this id already exists")
	}
	if err := c.validator.ValidateSegment(segment); err != nil {
		return nil, err
	}

	draft.Segments = append(draft.Segments, segment)
	draft.OpenSegmentID = segment.ID
	draft.Price = nil
	return c.persist(ctx, draft)
}

// UpdateSegment applies a partial edit to one trip. Completing the open
// segment collapses it.
func (c *Controller) UpdateSegment(ctx context.Context, sessionID, draftID, segmentID string, update model.TripSegmentUpdate) (*model.BookingDraft, error) {
	draft, err := c.Get(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	segment := draft.SegmentByID(segmentID)
	if segment == nil {
		return nil, apperrors.NotFoundWithID("trip segment", segmentID)
	}

	applyUpdate(segment, update)
	if err := c.validator.ValidateSegment(segment); err != nil {
		return nil, err
	}

	if draft.OpenSegmentID == segmentID && segment.IsComplete() {
		draft.OpenSegmentID = ""
	}
	draft.Price = nil
	return c.persist(ctx, draft)
}

func (c *Controller) RemoveSegment(ctx context.Context, sessionID, draftID, segmentID string) (*model.BookingDraft, error) {
	draft, err := c.Get(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}

	kept := draft.Segments[:0]
	found := false
	for _, s := range draft.Segments {
		if s.ID == segmentID {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return nil, apperrors.NotFoundWithID("trip segment", segmentID)
	}

	draft.Segments = kept
	if draft.OpenSegmentID == segmentID {
		draft.OpenSegmentID = ""
	}
	draft.Price = nil
	return c.persist(ctx, draft)
}

// SetVehicle swaps the vehicle under an existing draft. The itinerary
// survives but any price quote is void.
func (c *Controller) SetVehicle(ctx context.Context, sessionID, draftID, vehicleID string) (*model.BookingDraft, error) {
	if vehicleID == "" {
		return nil, apperrors.InvalidInput("A vehicle must be selected")
	}

	draft, err := c.Get(ctx, sessionID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.VehicleID == vehicleID {
		return draft, nil
	}

	draft.VehicleID = vehicleID
	draft.Price = nil
	return c.persist(ctx, draft)
}

// Reset discards the session's draft. Resetting a draft that is already
// gone is a no-op; another session's draft is left untouched.
func (c *Controller) Reset(ctx context.Context, sessionID, draftID string) error {
	draft, err := c.repo.FindByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			return nil
		}
		return apperrors.Internal("Failed to load booking draft", err)
	}
	if draft.SessionID != sessionID {
		return apperrors.NotFound("booking draft")
	}
	if err := c.repo.Delete(ctx, draftID); err != nil {
		return apperrors.Internal("Failed to reset booking draft", err)
	}
	return nil
}

func (c *Controller) persist(ctx context.Context, draft *model.BookingDraft) (*model.BookingDraft, error) {
	draft.Revision++
	draft.UpdatedAt = time.Now().UTC()
	if err := c.repo.Save(ctx, draft); err != nil {
		return nil, apperrors.Internal("Failed to save booking draft", err)
	}
	return draft, nil
}

func applyUpdate(segment *model.TripSegment, update model.TripSegmentUpdate) {
	if update.DurationType != nil {
		segment.DurationType = *update.DurationType
	}
	if update.StartDate != nil {
		segment.StartDate = *update.StartDate
	}
	if update.StartTime != nil {
		segment.StartTime = *update.StartTime
	}
	if update.PickupLocation != nil {
		segment.PickupLocation = *update.PickupLocation
	}
	if update.PickupCoords != nil {
		segment.PickupCoords = update.PickupCoords
	}
	if update.DropoffLocation != nil {
		segment.DropoffLocation = *update.DropoffLocation
	}
	if update.DropoffCoords != nil {
		segment.DropoffCoords = update.DropoffCoords
	}
	if update.AreaOfUse != nil {
		segment.AreaOfUse = *update.AreaOfUse
	}
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}
