package utils

import (
	"fmt"
	"os"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone canonicalizes a contact number to E.164. Numbers without a
// country code are parsed against DEFAULT_PHONE_REGION (falling back to US).
func NormalizePhone(raw string) (string, error) {
	region := os.Getenv("DEFAULT_PHONE_REGION")
	if region == "" {
		region = "US"
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("could not parse phone number %q: %w", raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
