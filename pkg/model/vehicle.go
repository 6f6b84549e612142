package model

// Duration codes used by the remote booking API, both for pricing lookup
// and itinerary validation.
const (
	DurationAnHour          = "AN_HOUR"
	DurationThreeHours      = "THREE_HOURS"
	DurationSixHours        = "SIX_HOURS"
	DurationTwelveHours     = "TWELVE_HOURS"
	DurationTwentyFourHours = "TWENTY_FOUR_HOURS"
)

// Vehicle is a read-only projection from the remote API. It is never
// mutated here, only displayed and referenced by id.
type Vehicle struct {
	ID             string          `json:"id"`
	ListingName    string          `json:"listingName"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Year           int             `json:"yearOfRelease"`
	VehicleType    string          `json:"vehicleType"`
	Location       string          `json:"location"`
	City           string          `json:"city"`
	PricingOptions []PricingOption `json:"pricing"`
	Photos         []string        `json:"photos"`
	Features       []string        `json:"features"`
	Owner          VehicleOwner    `json:"owner"`
	Rating         float64         `json:"rating"`
	TripCount      int             `json:"tripCount"`
}

// PricingOption is one per-duration price on a vehicle listing, e.g.
// {Name: "TWELVE_HOURS", Price: 20000}.
type PricingOption struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type VehicleOwner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type VehicleSearchFilter struct {
	Type     string
	Location string
	MinPrice int64
	MaxPrice int64
	Page     int
	Size     int
}

type Review struct {
	ID        string  `json:"id"`
	VehicleID string  `json:"vehicleId"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
}
