package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Pakistani mobile number as the booking form collects it: 03xx-xxxxxxx.
	phoneRegex = regexp.MustCompile(`^03\d{2}-\d{7}$`)

	cnicDigitsRegex = regexp.MustCompile(`^\d{13}$`)
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRegex = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVVRegex    = regexp.MustCompile(`^\d{3}$`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts only the dashed local format, e.g. "0342-6988007".
// An undashed "03426988007" does not match.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidCNIC accepts a 13-digit CNIC with or without dashes.
func IsValidCNIC(cnic string) bool {
	return cnicDigitsRegex.MatchString(NormalizeCNIC(cnic))
}

// NormalizeCNIC strips everything but digits, the form the platform expects.
func NormalizeCNIC(cnic string) string {
	return nonDigitRegex.ReplaceAllString(cnic, "")
}

// FormatCNIC renders a CNIC in the display grouping 12345-1234567-1.
func FormatCNIC(cnic string) string {
	digits := NormalizeCNIC(cnic)
	if len(digits) <= 5 {
		return digits
	}
	if len(digits) <= 12 {
		return digits[:5] + "-" + digits[5:]
	}
	return digits[:5] + "-" + digits[5:12] + "-" + digits[12:]
}

// IsValidCardNumber checks for exactly 16 digits, ignoring display spaces.
func IsValidCardNumber(number string) bool {
	return cardNumberRegex.MatchString(strings.ReplaceAll(number, " ", ""))
}

func IsValidCardExpiry(expiry string) bool {
	return cardExpiryRegex.MatchString(expiry)
}

func IsValidCVV(cvv string) bool {
	return cardCVVRegex.MatchString(cvv)
}

// MaskCardNumber replaces all but the last four digits with asterisks. The
// masked form is the only card identifier that may be transmitted or stored.
func MaskCardNumber(number string) string {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
