package model

import "testing"

func completeSegment(id string) *TripSegment {
	return &TripSegment{
		ID:              id,
		DurationType:    DurationTwelveHours,
		StartDate:       "2026-09-14",
		StartTime:       "10:00",
		PickupLocation:  "Lekki Phase 1, Lagos",
		PickupCoords:    &Coordinates{Latitude: 6.4478, Longitude: 3.4723},
		DropoffLocation: "Ikeja City Mall, Lagos",
		DropoffCoords:   &Coordinates{Latitude: 6.6141, Longitude: 3.3578},
	}
}

func TestTripSegment_IsComplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TripSegment)
		want   bool
	}{
		{name: "all fields present", mutate: func(s *TripSegment) {}, want: true},
		{name: "missing duration type", mutate: func(s *TripSegment) { s.DurationType = "" }, want: false},
		{name: "missing start date", mutate: func(s *TripSegment) { s.StartDate = "" }, want: false},
		{name: "missing start time", mutate: func(s *TripSegment) { s.StartTime = "" }, want: false},
		{name: "missing pickup location", mutate: func(s *TripSegment) { s.PickupLocation = "" }, want: false},
		{name: "missing pickup coordinates", mutate: func(s *TripSegment) { s.PickupCoords = nil }, want: false},
		{name: "zero pickup coordinates", mutate: func(s *TripSegment) { s.PickupCoords = &Coordinates{} }, want: false},
		{name: "missing dropoff location", mutate: func(s *TripSegment) { s.DropoffLocation = "" }, want: false},
		{name: "missing dropoff coordinates", mutate: func(s *TripSegment) { s.DropoffCoords = nil }, want: false},
		{name: "area of use optional", mutate: func(s *TripSegment) { s.AreaOfUse = "" }, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := completeSegment("d2a7f5e0-5c4b-4b5e-9f3a-111111111111")
			tt.mutate(s)
			if got := s.IsComplete(); got != tt.want {
				t.Errorf("IsComplete() = %v, want %v (missing: %v)", got, tt.want, s.MissingFields())
			}
		})
	}
}

func TestTripSegment_MissingFields(t *testing.T) {
	s := &TripSegment{ID: "d2a7f5e0-5c4b-4b5e-9f3a-111111111111"}
	missing := s.MissingFields()
	if len(missing) != 7 {
		t.Fatalf("expected 7 missing fields on an empty segment, got %d: %v", len(missing), missing)
	}
}

func TestBookingDraft_ItineraryComplete(t *testing.T) {
	draft := &BookingDraft{
		Segments: []*TripSegment{
			completeSegment("d2a7f5e0-5c4b-4b5e-9f3a-111111111111"),
			completeSegment("d2a7f5e0-5c4b-4b5e-9f3a-222222222222"),
		},
	}
	if !draft.ItineraryComplete() {
		t.Fatal("expected itinerary with only complete segments to be complete")
	}

	// One fresh incomplete segment flips the whole step.
	draft.Segments = append(draft.Segments, &TripSegment{ID: "d2a7f5e0-5c4b-4b5e-9f3a-333333333333"})
	if draft.ItineraryComplete() {
		t.Fatal("expected adding an incomplete segment to flip completeness to false")
	}
}

func TestBookingDraft_ItineraryComplete_Empty(t *testing.T) {
	draft := &BookingDraft{}
	if draft.ItineraryComplete() {
		t.Fatal("expected empty itinerary to be incomplete")
	}
}

func TestBookingDraft_StepComplete(t *testing.T) {
	draft := &BookingDraft{
		Contact: &ContactInfo{
			FirstName: "Adaeze",
			LastName:  "Okafor",
			Email:     "adaeze@example.com",
			Phone:     "+2348012345678",
		},
		Segments: []*TripSegment{completeSegment("d2a7f5e0-5c4b-4b5e-9f3a-111111111111")},
	}

	if !draft.StepComplete(StepPersonalInfo) {
		t.Error("expected personal info step to be complete")
	}
	if !draft.StepComplete(StepItinerary) {
		t.Error("expected itinerary step to be complete")
	}
	if draft.StepComplete(StepSummary) {
		t.Error("expected summary step to be incomplete without a price quote")
	}

	draft.Price = &CalculatedPrice{CalculationID: "calc-1", TotalPrice: 20000}
	if !draft.StepComplete(StepSummary) {
		t.Error("expected summary step to be complete with a price quote")
	}

	if draft.StepComplete(99) {
		t.Error("expected unknown step to report incomplete")
	}
}

func TestBookingDraft_SegmentByID(t *testing.T) {
	seg := completeSegment("d2a7f5e0-5c4b-4b5e-9f3a-111111111111")
	draft := &BookingDraft{Segments: []*TripSegment{seg}}

	if got := draft.SegmentByID(seg.ID); got != seg {
		t.Errorf("expected SegmentByID to return the segment, got %v", got)
	}
	if got := draft.SegmentByID("missing"); got != nil {
		t.Errorf("expected nil for unknown segment id, got %v", got)
	}
}
