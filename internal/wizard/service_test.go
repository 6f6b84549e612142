package wizard

import (
	"context"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/autogirlng/muvment-customer-sub002/pkg/errors"
	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

// memoryDraftRepository keeps drafts in a map; the wizard exercises the
// full mutate-persist-reload cycle against it.
type memoryDraftRepository struct {
	drafts map[string]*model.BookingDraft
}

func newMemoryDraftRepository() *memoryDraftRepository {
	return &memoryDraftRepository{drafts: make(map[string]*model.BookingDraft)}
}

func (r *memoryDraftRepository) Save(ctx context.Context, draft *model.BookingDraft) error {
	copied := *draft
	r.drafts[draft.ID] = &copied
	return nil
}

func (r *memoryDraftRepository) FindByID(ctx context.Context, id string) (*model.BookingDraft, error) {
	draft, ok := r.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	copied := *draft
	return &copied, nil
}

func (r *memoryDraftRepository) FindBySession(ctx context.Context, sessionID string) (*model.BookingDraft, error) {
	for _, draft := range r.drafts {
		if draft.SessionID == sessionID {
			copied := *draft
			return &copied, nil
		}
	}
	return nil, ErrDraftNotFound
}

func (r *memoryDraftRepository) Delete(ctx context.Context, id string) error {
	delete(r.drafts, id)
	return nil
}

func newTestController() (*Controller, *memoryDraftRepository) {
	repo := newMemoryDraftRepository()
	log := logger.New(logger.Config{Level: "error", Format: "text"})
	return NewController(repo, NewDraftValidator(), log), repo
}

func completeSegment(id string) *model.TripSegment {
	return &model.TripSegment{
		ID:              id,
		DurationType:    model.DurationTwelveHours,
		StartDate:       "2026-09-12",
		StartTime:       "09:00",
		PickupLocation:  "Lekki Phase 1, Lagos",
		PickupCoords:    &model.Coordinates{Latitude: 6.4478, Longitude: 3.4723},
		DropoffLocation: "Ikeja GRA, Lagos",
		DropoffCoords:   &model.Coordinates{Latitude: 6.5833, Longitude: 3.3500},
	}
}

func validContact() model.ContactInfo {
	return model.ContactInfo{
		FirstName: "Adaeze",
		LastName:  "Okafor",
		Email:     "adaeze@example.com",
		Phone:     "+2348031234567",
	}
}

func TestStartNewDraft(t *testing.T) {
	controller, _ := newTestController()

	draft, err := controller.Start(context.Background(), "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if draft.Step != model.StepPersonalInfo {
		t.Errorf("new draft step = %d, want %d", draft.Step, model.StepPersonalInfo)
	}
	if draft.Revision != 1 {
		t.Errorf("new draft revision = %d, want 1", draft.Revision)
	}
	if len(draft.Segments) != 0 {
		t.Errorf("new draft has %d segments, want 0", len(draft.Segments))
	}
}

func TestStartWithoutVehicle(t *testing.T) {
	controller, _ := newTestController()

	_, err := controller.Start(context.Background(), "sess-1", "")
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("Start() error = %v, want %s", err, apperrors.CodeInvalidInput)
	}
}

func TestStartResumesSameVehicle(t *testing.T) {
	controller, _ := newTestController()

	first, err := controller.Start(context.Background(), "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	second, err := controller.Start(context.Background(), "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() second call error = %v", err)
	}
	if second.ID != first.ID {
		t.Error("starting with the same vehicle should resume the existing draft")
	}
}

func TestStartReplacesDraftForDifferentVehicle(t *testing.T) {
	controller, repo := newTestController()

	first, err := controller.Start(context.Background(), "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	second, err := controller.Start(context.Background(), "sess-1", "veh-2")
	if err != nil {
		t.Fatalf("Start() second call error = %v", err)
	}
	if second.ID == first.ID {
		t.Error("a different vehicle should open a fresh draft")
	}
	if _, err := repo.FindByID(context.Background(), first.ID); err == nil {
		t.Error("replaced draft should be removed from the store")
	}
}

func TestGoToStepGating(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, err := controller.Start(ctx, "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// Nothing filled in yet: jumping to the summary must be rejected.
	_, err = controller.GoToStep(ctx, "sess-1", draft.ID, model.StepSummary)
	if !apperrors.IsCode(err, apperrors.CodeStepIncomplete) {
		t.Fatalf("GoToStep(summary) error = %v, want %s", err, apperrors.CodeStepIncomplete)
	}

	if _, err := controller.SubmitPersonalInfo(ctx, "sess-1", draft.ID, validContact()); err != nil {
		t.Fatalf("SubmitPersonalInfo() error = %v", err)
	}

	// Personal info alone unlocks the itinerary but not the summary.
	if _, err := controller.GoToStep(ctx, "sess-1", draft.ID, model.StepItinerary); err != nil {
		t.Fatalf("GoToStep(itinerary) error = %v", err)
	}
	_, err = controller.GoToStep(ctx, "sess-1", draft.ID, model.StepSummary)
	if !apperrors.IsCode(err, apperrors.CodeStepIncomplete) {
		t.Errorf("GoToStep(summary) error = %v, want %s", err, apperrors.CodeStepIncomplete)
	}

	// Moving back is always allowed.
	if _, err := controller.GoToStep(ctx, "sess-1", draft.ID, model.StepPersonalInfo); err != nil {
		t.Errorf("GoToStep(back) error = %v", err)
	}
}

func TestSubmitPersonalInfoNormalizes(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, err := controller.Start(ctx, "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	updated, err := controller.SubmitPersonalInfo(ctx, "sess-1", draft.ID, model.ContactInfo{
		FirstName: "  Adaeze ",
		LastName:  "Okafor",
		Email:     " ADAEZE@Example.COM ",
		Phone:     "08031234567",
	})
	if err != nil {
		t.Fatalf("SubmitPersonalInfo() error = %v", err)
	}

	if updated.Contact.Email != "adaeze@example.com" {
		t.Errorf("email = %q, want normalized form", updated.Contact.Email)
	}
	if updated.Contact.Phone != "+2348031234567" {
		t.Errorf("phone = %q, want +2348031234567", updated.Contact.Phone)
	}
	if updated.Step != model.StepItinerary {
		t.Errorf("step = %d, want %d after personal info", updated.Step, model.StepItinerary)
	}
}

func TestSubmitPersonalInfoInvalid(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, err := controller.Start(ctx, "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	_, err = controller.SubmitPersonalInfo(ctx, "sess-1", draft.ID, model.ContactInfo{
		FirstName: "A",
		LastName:  "Okafor",
		Email:     "not-an-email",
		Phone:     "nope",
	})
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Errorf("SubmitPersonalInfo() error = %v, want %s", err, apperrors.CodeValidation)
	}
}

func TestAddSegmentOpensIt(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")

	id := uuid.NewString()
	updated, err := controller.AddSegment(ctx, "sess-1", draft.ID, &model.TripSegment{ID: id})
	if err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}
	if updated.OpenSegmentID != id {
		t.Errorf("OpenSegmentID = %q, want %q", updated.OpenSegmentID, id)
	}
	if updated.ItineraryComplete() {
		t.Error("a fresh segment must leave the itinerary incomplete")
	}
}

func TestAddSegmentDuplicateID(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	if _, err := controller.AddSegment(ctx, "sess-1", draft.ID, &model.TripSegment{ID: id}); err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}
	_, err := controller.AddSegment(ctx, "sess-1", draft.ID, &model.TripSegment{ID: id})
	if !apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("duplicate AddSegment() error = %v, want %s", err, apperrors.CodeInvalidInput)
	}
}

func TestUpdateSegmentCollapsesWhenComplete(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	if _, err := controller.AddSegment(ctx, "sess-1", draft.ID, &model.TripSegment{ID: id}); err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}

	full := completeSegment(id)
	updated, err := controller.UpdateSegment(ctx, "sess-1", draft.ID, id, model.TripSegmentUpdate{
		DurationType:    &full.DurationType,
		StartDate:       &full.StartDate,
		StartTime:       &full.StartTime,
		PickupLocation:  &full.PickupLocation,
		PickupCoords:    full.PickupCoords,
		DropoffLocation: &full.DropoffLocation,
		DropoffCoords:   full.DropoffCoords,
	})
	if err != nil {
		t.Fatalf("UpdateSegment() error = %v", err)
	}
	if updated.OpenSegmentID != "" {
		t.Errorf("OpenSegmentID = %q, want cleared after completion", updated.OpenSegmentID)
	}
	if !updated.ItineraryComplete() {
		t.Error("itinerary should be complete with one fully filled segment")
	}
}

func TestSegmentMutationInvalidatesPrice(t *testing.T) {
	controller, repo := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	if _, err := controller.AddSegment(ctx, "sess-1", draft.ID, completeSegment(id)); err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}

	// Simulate a completed calculation.
	stored, _ := repo.FindByID(ctx, draft.ID)
	stored.Price = &model.CalculatedPrice{CalculationID: "calc-1", TotalPrice: 20000}
	if err := repo.Save(ctx, stored); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	updated, err := controller.AddSegment(ctx, "sess-1", draft.ID, &model.TripSegment{ID: uuid.NewString()})
	if err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}
	if updated.Price != nil {
		t.Error("adding a segment must discard the stored price")
	}

	stored.Price = &model.CalculatedPrice{CalculationID: "calc-2", TotalPrice: 20000}
	if err := repo.Save(ctx, stored); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	updated, err = controller.SetVehicle(ctx, "sess-1", draft.ID, "veh-9")
	if err != nil {
		t.Fatalf("SetVehicle() error = %v", err)
	}
	if updated.Price != nil {
		t.Error("changing the vehicle must discard the stored price")
	}
}

func TestRemoveSegment(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	if _, err := controller.AddSegment(ctx, "sess-1", draft.ID, completeSegment(id)); err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}

	updated, err := controller.RemoveSegment(ctx, "sess-1", draft.ID, id)
	if err != nil {
		t.Fatalf("RemoveSegment() error = %v", err)
	}
	if len(updated.Segments) != 0 {
		t.Errorf("segments remaining = %d, want 0", len(updated.Segments))
	}

	_, err = controller.RemoveSegment(ctx, "sess-1", draft.ID, id)
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("RemoveSegment() missing error = %v, want %s", err, apperrors.CodeNotFound)
	}
}

func TestRestoreMatch(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	updated, err := controller.AddSegment(ctx, "sess-1", draft.ID, completeSegment(id))
	if err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}

	restored, err := controller.Restore(ctx, "sess-1", updated.Revision, []string{id})
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if len(restored.Segments) != 1 || restored.Segments[0].ID != id {
		t.Errorf("restored segments = %+v, want the stored list", restored.Segments)
	}
}

func TestRestoreMismatchDiscards(t *testing.T) {
	controller, repo := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	updated, err := controller.AddSegment(ctx, "sess-1", draft.ID, completeSegment(id))
	if err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}

	// Client claims a different segment set: the stored copy is stale.
	_, err = controller.Restore(ctx, "sess-1", updated.Revision, []string{uuid.NewString()})
	if err == nil {
		t.Fatal("Restore() with mismatched ids should fail")
	}
	if _, err := repo.FindByID(ctx, draft.ID); err == nil {
		t.Error("stale draft should be discarded, not kept")
	}
}

func TestRestoreRevisionMismatchDiscards(t *testing.T) {
	controller, repo := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	id := uuid.NewString()
	updated, err := controller.AddSegment(ctx, "sess-1", draft.ID, completeSegment(id))
	if err != nil {
		t.Fatalf("AddSegment() error = %v", err)
	}

	_, err = controller.Restore(ctx, "sess-1", updated.Revision-1, []string{id})
	if err == nil {
		t.Fatal("Restore() with an old revision should fail")
	}
	if _, err := repo.FindByID(ctx, draft.ID); err == nil {
		t.Error("stale draft should be discarded, not kept")
	}
}

func TestDraftHiddenFromOtherSessions(t *testing.T) {
	controller, repo := newTestController()
	ctx := context.Background()

	draft, err := controller.Start(ctx, "sess-1", "veh-1")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// A signed-in customer who learns the draft id must not be able to
	// read, mutate, or discard another session's draft.
	if _, err := controller.Get(ctx, "sess-2", draft.ID); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("Get() by another session error = %v, want %s", err, apperrors.CodeNotFound)
	}
	if _, err := controller.SubmitPersonalInfo(ctx, "sess-2", draft.ID, validContact()); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("SubmitPersonalInfo() by another session error = %v, want %s", err, apperrors.CodeNotFound)
	}
	if _, err := controller.AddSegment(ctx, "sess-2", draft.ID, completeSegment(uuid.NewString())); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("AddSegment() by another session error = %v, want %s", err, apperrors.CodeNotFound)
	}
	if err := controller.Reset(ctx, "sess-2", draft.ID); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("Reset() by another session error = %v, want %s", err, apperrors.CodeNotFound)
	}

	if _, err := repo.FindByID(ctx, draft.ID); err != nil {
		t.Error("the owner's draft must survive another session's attempts")
	}
	if _, err := controller.Get(ctx, "sess-1", draft.ID); err != nil {
		t.Errorf("Get() by the owner error = %v", err)
	}
}

func TestResetIdempotent(t *testing.T) {
	controller, _ := newTestController()
	ctx := context.Background()

	draft, _ := controller.Start(ctx, "sess-1", "veh-1")
	if err := controller.Reset(ctx, "sess-1", draft.ID); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if err := controller.Reset(ctx, "sess-1", draft.ID); err != nil {
		t.Fatalf("second Reset() error = %v", err)
	}
}
