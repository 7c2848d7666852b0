package service

import (
	"fmt"

	"github.com/MKhiriev/go-simplify/models"
)

const (
	cardEntryModeGooglePay = "ANDROID_PAY_IN_APP"

	pathGooglePayToken    = "paymentMethodData.tokenizationData.token"
	pathGooglePayBilling  = "paymentMethodData.info.billingAddress"
	fieldSignedMessage    = "signedMessage"
	cardFieldEntryMode    = "cardEntryMode"
	cardFieldPublicKey    = "androidPayData.publicKey"
	cardFieldPaymentToken = "androidPayData.paymentToken"
)

// signedMessageFields are what the gateway needs to decrypt the token.
var signedMessageFields = []string{"encryptedMessage", "ephemeralPublicKey", "tag"}

// billingAddressFields maps Google Pay address fields onto card fields.
var billingAddressFields = [][2]string{
	{"address1", "addressLine1"},
	{"address2", "addressLine2"},
	{"locality", "addressCity"},
	{"administrativeArea", "addressState"},
	{"postalCode", "addressZip"},
	{"countryCode", "addressCountry"},
	{"name", "name"},
}

// BuildGooglePayCard turns the JSON of a Google Pay PaymentData object into
// the card map the gateway accepts for in-app wallet payments.
//
// The tokenization token and its signedMessage are both JSON documents
// encoded as strings; the signed message becomes
// androidPayData.paymentToken. A billing address, when Google Pay returned
// one, is copied onto the card address fields.
func BuildGooglePayCard(paymentData []byte, publicKey string) (*models.Map, error) {
	if publicKey == "" {
		return nil, ErrGooglePayKeyMissing
	}

	data, err := models.ParseMap(paymentData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPaymentData, err)
	}

	rawToken, ok := data.GetString(pathGooglePayToken)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidPaymentData, pathGooglePayToken)
	}
	token, err := models.ParseMap([]byte(rawToken))
	if err != nil {
		return nil, fmt.Errorf("%w: token: %w", ErrInvalidPaymentData, err)
	}

	rawSigned, ok := token.GetString(fieldSignedMessage)
	if !ok {
		return nil, fmt.Errorf("%w: token has no %s", ErrInvalidPaymentData, fieldSignedMessage)
	}
	signed, err := models.ParseMap([]byte(rawSigned))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPaymentData, fieldSignedMessage, err)
	}
	for _, field := range signedMessageFields {
		if _, ok := signed.GetString(field); !ok {
			return nil, fmt.Errorf("%w: %s has no %s", ErrInvalidPaymentData, fieldSignedMessage, field)
		}
	}

	card := models.NewMap().
		MustSet(cardFieldEntryMode, cardEntryModeGooglePay).
		MustSet(cardFieldPublicKey, publicKey).
		MustSet(cardFieldPaymentToken, signed)

	if billing, ok := data.GetMap(pathGooglePayBilling); ok {
		for _, f := range billingAddressFields {
			if v, ok := billing.GetString(f[0]); ok && v != "" {
				card.MustSet(f[1], v)
			}
		}
	}

	return card, nil
}
