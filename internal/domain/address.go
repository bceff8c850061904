package domain

// MaxPostalCodeLength is the longest postal code forwarded to the gateway.
const MaxPostalCodeLength = 10

// SanitizedAddress is the billing address sent along with an authorization.
type SanitizedAddress struct {
	PostalCode string
}

// NewSanitizedAddress builds the address from a raw billing postal code.
func NewSanitizedAddress(billingPostalCode string) SanitizedAddress {
	return SanitizedAddress{PostalCode: SanitizePostalCode(billingPostalCode)}
}

// SanitizePostalCode keeps ASCII letters, digits and hyphens and truncates the
// result to MaxPostalCodeLength characters. It never fails; empty input
// yields an empty string.
func SanitizePostalCode(postalCode string) string {
	if postalCode == "" {
		return ""
	}

	out := make([]byte, 0, MaxPostalCodeLength)
	for i := 0; i < len(postalCode) && len(out) < MaxPostalCodeLength; i++ {
		c := postalCode[i]
		if isPostalCodeChar(c) {
			out = append(out, c)
		}
	}
	return string(out)
}

func isPostalCodeChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return c == '-'
}
