package model

import "time"

// Wizard steps, in order. Forward navigation is gated on the completeness
// of every earlier step.
const (
	StepPersonalInfo = 1
	StepItinerary    = 2
	StepSummary      = 3
)

// ContactInfo is the personal-info step of the wizard.
type ContactInfo struct {
	FirstName string `json:"firstName" bson:"first_name" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" bson:"last_name" validate:"required,min=2,max=50"`
	Email     string `json:"email" bson:"email" validate:"required,email"`
	Phone     string `json:"phone" bson:"phone" validate:"required,e164"`
}

// BookingDraft is the in-progress booking owned by the wizard: the selected
// vehicle, the trip segments, the most recent price quote and the step the
// customer is on. It is persisted on every mutation so a reload mid-flow
// does not lose progress, and cleared on submission or abandonment.
type BookingDraft struct {
	ID            string           `json:"id" bson:"_id"`
	SessionID     string           `json:"-" bson:"session_id"`
	VehicleID     string           `json:"vehicleId" bson:"vehicle_id"`
	Step          int              `json:"step" bson:"step"`
	Contact       *ContactInfo     `json:"contact,omitempty" bson:"contact,omitempty"`
	Segments      []*TripSegment   `json:"segments" bson:"segments"`
	OpenSegmentID string           `json:"openSegmentId,omitempty" bson:"open_segment_id,omitempty"`
	Price         *CalculatedPrice `json:"price,omitempty" bson:"price,omitempty"`
	Revision      int64            `json:"revision" bson:"revision"`
	CreatedAt     time.Time        `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" bson:"updated_at"`
}

func (d *BookingDraft) SegmentByID(id string) *TripSegment {
	for _, s := range d.Segments {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// PersonalInfoComplete reports whether the personal-info step holds data.
// Field-level validity is the validator's job; this only gates navigation.
func (d *BookingDraft) PersonalInfoComplete() bool {
	return d.Contact != nil &&
		d.Contact.FirstName != "" &&
		d.Contact.LastName != "" &&
		d.Contact.Email != "" &&
		d.Contact.Phone != ""
}

// ItineraryComplete reports whether the itinerary step can be left: there
// is at least one segment and every segment is complete. Adding a single
// incomplete segment to an otherwise complete list flips this to false.
func (d *BookingDraft) ItineraryComplete() bool {
	if len(d.Segments) == 0 {
		return false
	}
	for _, s := range d.Segments {
		if !s.IsComplete() {
			return false
		}
	}
	return true
}

// StepComplete reports completeness of one step.
func (d *BookingDraft) StepComplete(step int) bool {
	switch step {
	case StepPersonalInfo:
		return d.PersonalInfoComplete()
	case StepItinerary:
		return d.ItineraryComplete()
	case StepSummary:
		return d.Price != nil
	default:
		return false
	}
}

// SegmentIDs returns the segment id set in order, used to reconcile a
// persisted draft against the one the wizard holds.
func (d *BookingDraft) SegmentIDs() []string {
	ids := make([]string, 0, len(d.Segments))
	for _, s := range d.Segments {
		ids = append(ids, s.ID)
	}
	return ids
}
