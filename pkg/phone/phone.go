// Package phone provides phone number helpers for the sales-contact ledger.
//
// The matching key used by the call-log sync engine is the digits-only form
// produced by NormalizeDigits; Inspect offers a richer phonenumbers-backed
// view for the diagnostics endpoint.
package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region used to parse national-format numbers.
const DefaultRegion = "JP"

// NormalizeDigits strips every non-digit character from a raw phone string.
// Empty or digit-free input yields "", which the admission rule treats as
// "no phone": it never matches anything.
func NormalizeDigits(raw string) string {
	if raw == "" {
		return ""
	}

	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	return string(digits)
}

// Inspection contains the result of inspecting a phone number.
type Inspection struct {
	Raw        string `json:"raw"`
	Digits     string `json:"digits"`
	IsValid    bool   `json:"is_valid"`
	E164Format string `json:"e164_format"`
	National   string `json:"national_format"`
	Region     string `json:"region"`
	NumberType string `json:"number_type"`
}

// Inspect parses a raw phone number and returns both the ledger matching key
// and the libphonenumber view of it.
func Inspect(raw, region string) (*Inspection, error) {
	if raw == "" {
		return nil, fmt.Errorf("phone number cannot be empty")
	}

	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	return &Inspection{
		Raw:        raw,
		Digits:     NormalizeDigits(raw),
		IsValid:    phonenumbers.IsValidNumber(parsed),
		E164Format: phonenumbers.Format(parsed, phonenumbers.E164),
		National:   phonenumbers.Format(parsed, phonenumbers.NATIONAL),
		Region:     phonenumbers.GetRegionCodeForNumber(parsed),
		NumberType: numberTypeString(phonenumbers.GetNumberType(parsed)),
	}, nil
}

func numberTypeString(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.FIXED_LINE:
		return "FIXED_LINE"
	case phonenumbers.MOBILE:
		return "MOBILE"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "FIXED_LINE_OR_MOBILE"
	case phonenumbers.TOLL_FREE:
		return "TOLL_FREE"
	case phonenumbers.PREMIUM_RATE:
		return "PREMIUM_RATE"
	case phonenumbers.VOIP:
		return "VOIP"
	case phonenumbers.PAGER:
		return "PAGER"
	default:
		return "UNKNOWN"
	}
}
