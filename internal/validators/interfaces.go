// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the card checks run before any data leaves the
// device.
//
// The free functions (DetectBrand, ValidateNumber, ValidateExpiry,
// ValidateCvc, FormatNumber) are pure and never fail: they report false for
// bad input and default to UNKNOWN for unrecognized brands. They are meant for
// live form feedback.
//
// CardValidator implements [Validator] on top of them for submission time. It
// first applies go-playground/validator struct rules, then the card rules for
// the requested fields, and returns a sentinel error describing the first
// problem found.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
