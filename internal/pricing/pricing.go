// Package pricing derives display prices and labels from a vehicle's
// per-duration pricing options. Everything here is pure: no network, no
// state, same inputs always produce the same output.
package pricing

import (
	"strconv"

	"github.com/autogirlng/muvment-customer-sub002/pkg/model"
)

var durationLabels = map[string]string{
	model.DurationAnHour:          "1 Hour",
	model.DurationThreeHours:      "3 Hours",
	model.DurationSixHours:        "6 Hours",
	model.DurationTwelveHours:     "12 Hours",
	model.DurationTwentyFourHours: "24 Hours",
}

// DisplayPrice picks the price for the selected duration. An unknown or
// empty selector falls back to the first option; an empty option list
// yields 0.
func DisplayPrice(durationSelector string, options []model.PricingOption) int64 {
	if len(options) == 0 {
		return 0
	}

	if durationSelector != "" {
		for _, opt := range options {
			if opt.Name == durationSelector {
				return opt.Price
			}
		}
	}

	return options[0].Price
}

// DisplayLabel maps a duration code to its human label. Unknown or absent
// codes read as "Daily".
func DisplayLabel(durationSelector string) string {
	if label, ok := durationLabels[durationSelector]; ok {
		return label
	}
	return "Daily"
}

// FormatNaira renders an amount as Naira with thousands grouping and no
// decimal places, e.g. 20000 becomes "₦20,000".
func FormatNaira(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	out := "₦" + string(grouped)
	if negative {
		out = "-" + out
	}
	return out
}
