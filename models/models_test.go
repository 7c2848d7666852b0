package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardBrand_Rules(t *testing.T) {
	tests := []struct {
		brand    CardBrand
		name     string
		min, max int
		cvc      int
	}{
		{BrandVisa, "VISA", 13, 19, 3},
		{BrandMastercard, "MASTERCARD", 16, 16, 3},
		{BrandAmericanExpress, "AMERICAN_EXPRESS", 15, 15, 4},
		{BrandDiscover, "DISCOVER", 16, 16, 3},
		{BrandDiners, "DINERS", 14, 16, 3},
		{BrandJCB, "JCB", 16, 16, 3},
		{BrandUnknown, "UNKNOWN", 13, 19, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.brand.String())
			assert.Equal(t, tt.min, tt.brand.MinLength())
			assert.Equal(t, tt.max, tt.brand.MaxLength())
			assert.Equal(t, tt.cvc, tt.brand.CVCLength())

			parsed, ok := ParseCardBrand(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.brand, parsed)
		})
	}

	assert.True(t, BrandUnknown.MatchesPrefix("anything"))
	assert.Equal(t, "UNKNOWN", CardBrand(99).String())
}

func TestCard_ToMap(t *testing.T) {
	card := NewCard("4111 1111-1111 1111", " 12 ", "29", "123")
	card.AddressZip = "12345"

	m := card.ToMap()

	assert.Equal(t, []string{"number", "expMonth", "expYear", "cvc", "addressZip"}, m.Keys())
	assert.Equal(t, "4111111111111111", m.Get("number"))
	assert.Equal(t, "12", m.Get("expMonth"))
	assert.Equal(t, "1111", card.Last4())
}

func TestStripNonDigits(t *testing.T) {
	assert.Equal(t, "4111", StripNonDigits("4-1 1a1"))
	assert.Equal(t, "", StripNonDigits("abc"))
	assert.Equal(t, "", StripNonDigits("٤١"), "non-ASCII digits are dropped")
}

func TestRequest_IsImmutable(t *testing.T) {
	payload := NewMap().MustSet("key", "k")
	headers := []Header{{Name: "X-A", Value: "1"}}

	req := NewRequest(MethodPost, "https://example.test/payment/cardToken", payload, headers...)

	require.NoError(t, payload.Set("key", "changed"))
	headers[0].Value = "2"

	assert.Equal(t, "k", req.Payload().Get("key"))
	assert.Equal(t, "1", req.Headers()[0].Value)

	require.NoError(t, req.Payload().Set("key", "mutated copy"))
	assert.Equal(t, "k", req.Payload().Get("key"))

	assert.Equal(t, MethodPost, req.Method())
	assert.Equal(t, "https://example.test/payment/cardToken", req.URL())

	body, err := req.MarshalPayload()
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"k"}`, string(body))
}

func TestRequest_NilPayload(t *testing.T) {
	req := NewRequest(MethodPost, "https://example.test", nil)
	assert.Equal(t, 0, req.Payload().Len())
	assert.Empty(t, req.Headers())
}

func TestSecure3DRequestData_ToMap(t *testing.T) {
	m := Secure3DRequestData{Amount: 1000, Currency: "USD", Description: "coffee"}.ToMap()

	assert.Equal(t, []string{"amount", "currency", "description"}, m.Keys())
	v, ok := m.GetInt64("amount")
	assert.True(t, ok)
	assert.Equal(t, int64(1000), v)

	noDesc := Secure3DRequestData{Amount: 1, Currency: "EUR"}.ToMap()
	assert.Equal(t, []string{"amount", "currency"}, noDesc.Keys())
}

func TestSecure3DDataFromToken(t *testing.T) {
	token, err := ParseMap([]byte(`{
		"id": "tok_1",
		"card": {
			"secure3DData": {
				"id": "3ds_1",
				"isEnrolled": true,
				"acsUrl": "https://acs.example/auth",
				"paReq": "pareq-data",
				"md": "merchant-data",
				"termUrl": "https://term.example"
			}
		}
	}`))
	require.NoError(t, err)

	data, err := Secure3DDataFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, Secure3DData{
		ID:           "3ds_1",
		Enrolled:     true,
		AcsURL:       "https://acs.example/auth",
		PaReq:        "pareq-data",
		MerchantData: "merchant-data",
		TermURL:      "https://term.example",
	}, data)
}

func TestSecure3DDataFromToken_Missing(t *testing.T) {
	_, err := Secure3DDataFromToken(NewMap().MustSet("card.number", "4111"))
	require.ErrorIs(t, err, ErrInvalidArgument)

	incomplete := NewMap().MustSet("card.secure3DData.acsUrl", "https://acs.example")
	_, err = Secure3DDataFromToken(incomplete)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewGatewayError(t *testing.T) {
	body, err := ParseMap([]byte(`{"error":{"message":"card declined","code":"declined"}}`))
	require.NoError(t, err)

	gwErr := NewGatewayError(402, body)
	assert.Equal(t, "card declined", gwErr.Message)
	assert.Equal(t, 402, gwErr.StatusCode)
	assert.Equal(t, "declined", gwErr.Body.Get("error.code"))
	assert.Contains(t, gwErr.Error(), "402")

	fallback := NewGatewayError(500, nil)
	assert.Equal(t, DefaultGatewayErrorMessage, fallback.Message)
	assert.NotNil(t, fallback.Body)
}

func TestTransportAndParseErrors_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")

	var wrapped error = fmt.Errorf("execute: %w", &TransportError{Op: "POST", URL: "https://x", Err: cause})
	assert.ErrorIs(t, wrapped, cause)

	var transportErr *TransportError
	require.ErrorAs(t, wrapped, &transportErr)
	assert.Equal(t, "POST", transportErr.Op)

	var syntaxErr *json.SyntaxError
	_, jsonErr := ParseMap([]byte(`{bad`))
	parseErr := &ParseError{StatusCode: 200, Body: []byte(`{bad`), Err: jsonErr}
	assert.ErrorAs(t, parseErr, &syntaxErr)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
