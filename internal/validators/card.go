// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-simplify/models"
)

// DetectBrand returns the first brand whose prefix matches the digits of
// number, or UNKNOWN.
func DetectBrand(number string) models.CardBrand {
	digits := models.StripNonDigits(number)
	for _, brand := range models.CardBrands {
		if brand.MatchesPrefix(digits) {
			return brand
		}
	}
	return models.BrandUnknown
}

// ValidateNumber reports whether number belongs to brand, is long enough and
// passes the Luhn checksum.
func ValidateNumber(number string, brand models.CardBrand) bool {
	digits := models.StripNonDigits(number)

	if !brand.MatchesPrefix(digits) {
		return false
	}
	if len(digits) == 0 || len(digits) < brand.MinLength() {
		return false
	}

	return luhnSum(digits)%10 == 0
}

// luhnSum doubles every second digit from the right, folding doubled values
// above 9, and sums all digits.
func luhnSum(digits string) int {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

// ValidateExpiry reports whether a card expiring in month/year is still valid
// now.
func ValidateExpiry(month, year string) bool {
	return ValidateExpiryAt(month, year, time.Now())
}

// ValidateExpiryAt reports whether a card expiring in month/year is valid at
// now. Cards are valid through the last moment of their expiry month;
// two-digit years are read as 20YY. Months outside 1..12 are rejected rather
// than rolled into the next year.
func ValidateExpiryAt(month, year string, now time.Time) bool {
	month, year = strings.TrimSpace(month), strings.TrimSpace(year)
	if month == "" || year == "" {
		return false
	}

	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 0 {
		return false
	}
	if y < 100 {
		y += 2000
	}

	expires := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return now.Before(expires)
}

// ValidateCvc reports whether the trimmed cvc has the brand's exact length.
func ValidateCvc(cvc string, brand models.CardBrand) bool {
	return len(strings.TrimSpace(cvc)) == brand.CVCLength()
}

// FormatNumber strips number to digits, truncates it to the brand's maximum
// length and groups it for display: 4-6-5 for American Express, blocks of
// four otherwise.
func FormatNumber(number string, brand models.CardBrand) string {
	digits := models.StripNonDigits(number)
	if len(digits) > brand.MaxLength() {
		digits = digits[:brand.MaxLength()]
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/4)
	for i := 0; i < len(digits); i++ {
		if separatorBefore(i, brand) {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}

	return b.String()
}

func separatorBefore(i int, brand models.CardBrand) bool {
	if brand == models.BrandAmericanExpress {
		return i == 4 || i == 10
	}
	return i > 0 && i%4 == 0
}
