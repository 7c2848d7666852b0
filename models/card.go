// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Card is the transient card data collected at submission time. It is never
// persisted; ToMap flattens it into the "card" object of a token request.
type Card struct {
	// Number holds digits only; NewCard strips separators.
	Number   string `json:"number" validate:"required,numeric,min=12,max=19"`
	ExpMonth string `json:"expMonth" validate:"required,numeric,min=1,max=2"`
	ExpYear  string `json:"expYear" validate:"required,numeric,min=2,max=4"`
	CVC      string `json:"cvc" validate:"required,numeric,min=3,max=4"`

	// Optional cardholder fields sent only when set.
	Name           string `json:"name,omitempty" validate:"omitempty,max=50"`
	AddressLine1   string `json:"addressLine1,omitempty" validate:"omitempty,max=255"`
	AddressLine2   string `json:"addressLine2,omitempty" validate:"omitempty,max=255"`
	AddressCity    string `json:"addressCity,omitempty" validate:"omitempty,max=50"`
	AddressState   string `json:"addressState,omitempty" validate:"omitempty,max=255"`
	AddressZip     string `json:"addressZip,omitempty" validate:"omitempty,max=9"`
	AddressCountry string `json:"addressCountry,omitempty" validate:"omitempty,len=2"`

	// Brand is filled in by detection and is not sent to the gateway.
	Brand CardBrand `json:"-" validate:"-"`
}

// NewCard builds a Card from raw form input, stripping everything but digits
// from the number.
func NewCard(number, expMonth, expYear, cvc string) Card {
	return Card{
		Number:   StripNonDigits(number),
		ExpMonth: strings.TrimSpace(expMonth),
		ExpYear:  strings.TrimSpace(expYear),
		CVC:      strings.TrimSpace(cvc),
	}
}

// StripNonDigits removes every character that is not an ASCII digit.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Last4 returns the last four digits of the number, for log-safe display.
func (c Card) Last4() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// ToMap flattens the card into the gateway's card object.
func (c Card) ToMap() *Map {
	m := NewMap()
	m.put("number", StripNonDigits(c.Number))
	m.put("expMonth", c.ExpMonth)
	m.put("expYear", c.ExpYear)
	m.put("cvc", c.CVC)

	optional := []struct{ key, value string }{
		{"name", c.Name},
		{"addressLine1", c.AddressLine1},
		{"addressLine2", c.AddressLine2},
		{"addressCity", c.AddressCity},
		{"addressState", c.AddressState},
		{"addressZip", c.AddressZip},
		{"addressCountry", c.AddressCountry},
	}
	for _, f := range optional {
		if f.value != "" {
			m.put(f.key, f.value)
		}
	}

	return m
}
