package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Vietnamese mobile prefixes after the leading zero (Viettel, Vinaphone,
// Mobifone, Vietnamobile, Gmobile ranges).
var vnMobilePattern = regexp.MustCompile(`^(3[2-9]|5[2689]|7[06-9]|8[1-9]|9[0-9])\d{7}$`)

// NormalizePhone validates a Vietnamese mobile number and returns it in
// canonical 84-prefixed form.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, ".", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or leading zero
	if strings.HasPrefix(stripped, "84") {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !vnMobilePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid Vietnamese mobile number: %q", phone)
	}

	return "84" + stripped, nil
}

// MaskPhone hides all but the first four digits for logging
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	return phone[:4] + "***"
}
