// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-simplify/models"
)

// Field names accepted by CardValidator.Validate.
const (
	// FieldStruct runs the go-playground tag rules of the value.
	FieldStruct = "struct"
	FieldNumber = "number"
	FieldExpiry = "expiry"
	FieldCvc    = "cvc"
)

type CardValidator struct {
	now func() time.Time
}

func NewCardValidator() Validator {
	return &CardValidator{now: time.Now}
}

// Validate checks a models.Card, a card *models.Map or a
// models.Secure3DRequestData. Without fields, every rule for the type runs.
func (v *CardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Card:
		return v.validateCard(ctx, value, fields...)
	case *models.Card:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCard(ctx, *value, fields...)

	case *models.Map:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCard(ctx, cardFromMap(value), fields...)

	case models.Secure3DRequestData:
		return v.validateSecure3DRequestData(ctx, value, fields...)
	case *models.Secure3DRequestData:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSecure3DRequestData(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CardValidator) validateCard(_ context.Context, card models.Card, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStruct, FieldNumber, FieldExpiry, FieldCvc}
	}

	brand := card.Brand
	if brand == models.BrandUnknown {
		brand = DetectBrand(card.Number)
	}

	for _, f := range fields {
		switch f {
		case FieldStruct:
			if err := validateStruct(card); err != nil {
				return err
			}
		case FieldNumber:
			if !ValidateNumber(card.Number, brand) {
				return ErrInvalidCardNumber
			}
		case FieldExpiry:
			if !ValidateExpiryAt(card.ExpMonth, card.ExpYear, v.clock()) {
				return ErrInvalidCardExpiry
			}
		case FieldCvc:
			if !ValidateCvc(card.CVC, brand) {
				return ErrInvalidCardCvc
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardValidator) validateSecure3DRequestData(_ context.Context, data models.Secure3DRequestData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStruct}
	}

	for _, f := range fields {
		switch f {
		case FieldStruct:
			if err := validateStruct(data); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CardValidator) clock() time.Time {
	if v.now == nil {
		return time.Now()
	}
	return v.now()
}

// cardFromMap reads the flat card object produced by models.Card.ToMap.
func cardFromMap(m *models.Map) models.Card {
	field := func(key string) string {
		s, _ := m.GetString(key)
		return s
	}

	card := models.NewCard(field("number"), field("expMonth"), field("expYear"), field("cvc"))
	card.Name = field("name")
	card.AddressLine1 = field("addressLine1")
	card.AddressLine2 = field("addressLine2")
	card.AddressCity = field("addressCity")
	card.AddressState = field("addressState")
	card.AddressZip = field("addressZip")
	card.AddressCountry = field("addressCountry")

	return card
}
