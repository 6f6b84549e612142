package model

// Coordinates is a geocoded point attached to a pickup or dropoff address.
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

func (c *Coordinates) IsZero() bool {
	return c == nil || (c.Latitude == 0 && c.Longitude == 0)
}

// TripSegment is one leg of a booking: a duration type, a start moment and
// a pickup/dropoff pair. Identity is a client-generated uuid, assigned when
// the customer adds a trip in the itinerary step.
type TripSegment struct {
	ID              string       `json:"id" bson:"_id" validate:"required,uuid4"`
	DurationType    string       `json:"bookingType" bson:"duration_type" validate:"omitempty,oneof=AN_HOUR THREE_HOURS SIX_HOURS TWELVE_HOURS TWENTY_FOUR_HOURS"`
	StartDate       string       `json:"startDate" bson:"start_date"`
	StartTime       string       `json:"startTime" bson:"start_time"`
	PickupLocation  string       `json:"pickupLocation" bson:"pickup_location"`
	PickupCoords    *Coordinates `json:"pickupCoordinates,omitempty" bson:"pickup_coords,omitempty"`
	DropoffLocation string       `json:"dropoffLocation" bson:"dropoff_location"`
	DropoffCoords   *Coordinates `json:"dropoffCoordinates,omitempty" bson:"dropoff_coords,omitempty"`
	AreaOfUse       string       `json:"areaOfUse,omitempty" bson:"area_of_use,omitempty"`
}

// IsComplete reports whether every required field of the segment is
// present: duration type, start date, start time, and both location
// strings with their coordinates. AreaOfUse is optional.
func (s *TripSegment) IsComplete() bool {
	return s.DurationType != "" &&
		s.StartDate != "" &&
		s.StartTime != "" &&
		s.PickupLocation != "" &&
		!s.PickupCoords.IsZero() &&
		s.DropoffLocation != "" &&
		!s.DropoffCoords.IsZero()
}

// MissingFields lists the required fields that are still empty, for
// field-level validation messages.
func (s *TripSegment) MissingFields() []string {
	var missing []string
	if s.DurationType == "" {
		missing = append(missing, "bookingType")
	}
	if s.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if s.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if s.PickupLocation == "" {
		missing = append(missing, "pickupLocation")
	}
	if s.PickupCoords.IsZero() {
		missing = append(missing, "pickupCoordinates")
	}
	if s.DropoffLocation == "" {
		missing = append(missing, "dropoffLocation")
	}
	if s.DropoffCoords.IsZero() {
		missing = append(missing, "dropoffCoordinates")
	}
	return missing
}

// TripSegmentUpdate carries a partial in-place edit of a segment. Nil
// pointers leave the existing value untouched.
type TripSegmentUpdate struct {
	DurationType    *string      `json:"bookingType,omitempty"`
	StartDate       *string      `json:"startDate,omitempty"`
	StartTime       *string      `json:"startTime,omitempty"`
	PickupLocation  *string      `json:"pickupLocation,omitempty"`
	PickupCoords    *Coordinates `json:"pickupCoordinates,omitempty"`
	DropoffLocation *string      `json:"dropoffLocation,omitempty"`
	DropoffCoords   *Coordinates `json:"dropoffCoordinates,omitempty"`
	AreaOfUse       *string      `json:"areaOfUse,omitempty"`
}
