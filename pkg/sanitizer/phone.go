package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// The marketplace serves Nigerian customers; local numbers without a
// country code are parsed as NG.
var supportedRegions = []string{
	"NG",
}

// NormalizePhone converts a phone number to E.164 (+234...). Returns ""
// for input no supported region can parse.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return ""
}
