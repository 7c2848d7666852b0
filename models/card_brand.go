// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "regexp"

// CardBrand is a card issuer network with its length and CVC rules.
type CardBrand int

const (
	BrandUnknown CardBrand = iota
	BrandVisa
	BrandMastercard
	BrandAmericanExpress
	BrandDiscover
	BrandDiners
	BrandJCB
)

type brandRules struct {
	name      string
	minLength int
	maxLength int
	cvcLength int
	prefix    *regexp.Regexp
}

var cardBrands = map[CardBrand]brandRules{
	BrandVisa:            {"VISA", 13, 19, 3, regexp.MustCompile(`^4`)},
	BrandMastercard:      {"MASTERCARD", 16, 16, 3, regexp.MustCompile(`^(5[1-5]|67)`)},
	BrandAmericanExpress: {"AMERICAN_EXPRESS", 15, 15, 4, regexp.MustCompile(`^3[47]`)},
	BrandDiscover:        {"DISCOVER", 16, 16, 3, regexp.MustCompile(`^6(011|4[4-9]|5)`)},
	BrandDiners:          {"DINERS", 14, 16, 3, regexp.MustCompile(`^3(0[0-5]|09|[689])`)},
	BrandJCB:             {"JCB", 16, 16, 3, regexp.MustCompile(`^35(2[89]|[3-8])`)},
	BrandUnknown:         {"UNKNOWN", 13, 19, 3, nil},
}

// CardBrands lists the brands in detection order. UNKNOWN is last and
// matches everything.
var CardBrands = []CardBrand{
	BrandVisa,
	BrandMastercard,
	BrandAmericanExpress,
	BrandDiscover,
	BrandDiners,
	BrandJCB,
	BrandUnknown,
}

func (b CardBrand) rules() brandRules {
	if r, ok := cardBrands[b]; ok {
		return r
	}
	return cardBrands[BrandUnknown]
}

func (b CardBrand) String() string { return b.rules().name }

// MinLength is the fewest digits a number of this brand may have.
func (b CardBrand) MinLength() int { return b.rules().minLength }

// MaxLength is the most digits a number of this brand may have.
func (b CardBrand) MaxLength() int { return b.rules().maxLength }

// CVCLength is the exact length of this brand's security code.
func (b CardBrand) CVCLength() int { return b.rules().cvcLength }

// MatchesPrefix reports whether a digits-only number starts with one of the
// brand's issuer prefixes.
func (b CardBrand) MatchesPrefix(digits string) bool {
	prefix := b.rules().prefix
	return prefix == nil || prefix.MatchString(digits)
}

// ParseCardBrand maps a brand name such as "VISA" back to its CardBrand.
func ParseCardBrand(name string) (CardBrand, bool) {
	for _, b := range CardBrands {
		if b.String() == name {
			return b, true
		}
	}
	return BrandUnknown, false
}
