package checkout

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// currencyRe is the strict comma-decimal currency shape: units,cents.
var currencyRe = regexp.MustCompile(`^\d+,\d{2}$`)

var nonDigitRe = regexp.MustCompile(`\D`)

// StripNonDigits removes every non-digit rune.
func StripNonDigits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// FormatCents renders centavos as a comma-decimal currency string: 998 → "9,98".
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d,%02d", cents/100, cents%100)
}

// ParseCurrency parses a strict units,cents string into centavos.
func ParseCurrency(s string) (int64, error) {
	if !currencyRe.MatchString(s) {
		return 0, fmt.Errorf("invalid currency value: %q", s)
	}
	parts := strings.SplitN(s, ",", 2)
	units, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid currency value: %q", s)
	}
	cents, _ := strconv.ParseInt(parts[1], 10, 64)
	return units*100 + cents, nil
}

// DigitsToCurrency turns a raw digit string into a currency string, treating
// the last two digits as cents: "5" → "0,05", "150" → "1,50". Empty or
// all-zero input normalizes to "0,00". Used for change-amount and admin
// price entry.
func DigitsToCurrency(raw string) string {
	digits := StripNonDigits(raw)
	if digits == "" {
		return "0,00"
	}

	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		// Too many digits for an int64 is not a price anyone charges.
		return "0,00"
	}
	return FormatCents(cents)
}

// FormatPhoneDisplay regroups a phone input into the Brazilian display shape
// (DD) DDDDD-DDDD, applied progressively as the customer types.
func FormatPhoneDisplay(raw string) string {
	digits := StripNonDigits(raw)

	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 6:
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	case len(digits) <= 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:min(len(digits), 11)])
	}
}
