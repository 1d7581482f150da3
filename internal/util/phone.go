// Package util contains small shared helpers.
package util

import (
	"strings"

	domainerrors "rentora/internal/domain/errors"
)

// Mexican numbering: ten national digits behind the +52 country code.
const (
	mxCountryCode    = "52"
	mxNationalDigits = 10
)

// NormalizePhone canonicalizes a recipient phone number into E.164 dial
// format (+52XXXXXXXXXX). Accepted inputs, with any spaces, dots, dashes or
// parentheses in between:
//   - ten national digits           ("55 1234-5678")
//   - "52" plus ten digits          ("525512345678")
//   - "+52" plus ten digits         ("+52 55 1234 5678")
//
// Anything else returns ErrInvalidPhoneNumber. The function is pure and
// idempotent: normalizing an already-normalized number returns it unchanged.
func NormalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	hasPlus := strings.HasPrefix(trimmed, "+")
	if hasPlus {
		trimmed = trimmed[1:]
	}

	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// formatting noise
		default:
			return "", domainerrors.ErrInvalidPhoneNumber.WithDetails("unexpected character in phone number")
		}
	}

	number := digits.String()

	switch {
	case hasPlus && len(number) == mxNationalDigits+len(mxCountryCode) && strings.HasPrefix(number, mxCountryCode):
		// already E.164
	case !hasPlus && len(number) == mxNationalDigits+len(mxCountryCode) && strings.HasPrefix(number, mxCountryCode):
		// bare country code prefix
	case !hasPlus && len(number) == mxNationalDigits:
		number = mxCountryCode + number
	default:
		return "", domainerrors.ErrInvalidPhoneNumber.WithDetails("expected 10 national digits, optionally prefixed with 52 or +52")
	}

	return "+" + number, nil
}
