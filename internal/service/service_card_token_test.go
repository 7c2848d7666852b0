package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/MKhiriev/go-simplify/internal/mock"
	"github.com/MKhiriev/go-simplify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestCardTokenSvc builds a cardTokenService backed by a mock transport.
func newTestCardTokenSvc(t *testing.T, ctrl *gomock.Controller, apiKey string) (*cardTokenService, *mock.MockTransport) {
	t.Helper()
	mockTransport := mock.NewMockTransport(ctrl)

	svc, err := NewCardTokenService(config.App{APIKey: apiKey, GooglePayPublicKey: "gpay-public-key"}, mockTransport, logger.Nop())
	require.NoError(t, err)

	return svc.(*cardTokenService), mockTransport
}

func testCard() *models.Map {
	return models.NewMap().
		MustSet("number", "5555555555554444").
		MustSet("expMonth", "12").
		MustSet("expYear", "99").
		MustSet("cvc", "123")
}

// ── NewCardTokenService ──────────────────────────────────────────────────────

func TestNewCardTokenService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewCardTokenService(config.App{APIKey: testLiveKey}, nil, nil)
	assert.ErrorIs(t, err, ErrNilTransport)

	_, err = NewCardTokenService(config.App{APIKey: "bogus"}, mock.NewMockTransport(ctrl), nil)
	assert.ErrorIs(t, err, ErrInvalidAPIKey)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	services, err := NewServices(config.App{APIKey: testSandboxKey}, mock.NewMockTransport(ctrl), nil)
	require.NoError(t, err)
	require.NotNil(t, services.CardTokenService)
	assert.False(t, services.CardTokenService.IsLive())

	_, err = NewServices(config.App{}, mock.NewMockTransport(ctrl), nil)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

// ── API key ──────────────────────────────────────────────────────────────────

func TestCardTokenService_SetAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCardTokenSvc(t, ctrl, testSandboxKey)

	assert.False(t, svc.IsLive())

	require.NoError(t, svc.SetAPIKey(testLiveKey))
	assert.Equal(t, testLiveKey, svc.APIKey())
	assert.True(t, svc.IsLive())

	err := svc.SetAPIKey("sbpb_bm90IGEgdXVpZA==")
	require.ErrorIs(t, err, ErrInvalidAPIKey)
	assert.Equal(t, testLiveKey, svc.APIKey(), "invalid key must not replace the current one")
}

func TestCardTokenService_SetAPIKey_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCardTokenSvc(t, ctrl, testSandboxKey)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			key := testSandboxKey
			if i%2 == 0 {
				key = testLiveKey
			}
			assert.NoError(t, svc.SetAPIKey(key))
		}(i)
		go func() {
			defer wg.Done()
			req, err := svc.BuildCreateCardTokenRequest(testCard(), nil)
			if assert.NoError(t, err) {
				key, _ := req.Payload().GetString("key")
				assert.Equal(t, IsLiveKey(key), req.URL() == LiveBaseURL+CardTokenPath, "url must match the key it was built with")
			}
		}()
	}
	wg.Wait()
}

// ── BuildCreateCardTokenRequest ──────────────────────────────────────────────

func TestBuildCreateCardTokenRequest(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("sandbox without 3DS", func(t *testing.T) {
		svc, _ := newTestCardTokenSvc(t, ctrl, testSandboxKey)

		req, err := svc.BuildCreateCardTokenRequest(testCard(), nil)
		require.NoError(t, err)

		assert.Equal(t, models.MethodPost, req.Method())
		assert.Equal(t, SandboxBaseURL+CardTokenPath, req.URL())
		assert.Empty(t, req.Headers())

		payload := req.Payload()
		assert.Equal(t, []string{"key", "card"}, payload.Keys())
		assert.Equal(t, testSandboxKey, payload.Get("key"))
		assert.Equal(t, "5555555555554444", payload.Get("card.number"))
	})

	t.Run("live with 3DS", func(t *testing.T) {
		svc, _ := newTestCardTokenSvc(t, ctrl, testLiveKey)
		s3d := models.Secure3DRequestData{Amount: 1000, Currency: "USD", Description: "test"}.ToMap()

		req, err := svc.BuildCreateCardTokenRequest(testCard(), s3d)
		require.NoError(t, err)

		assert.Equal(t, LiveBaseURL+CardTokenPath, req.URL())
		payload := req.Payload()
		assert.Equal(t, []string{"key", "card", "secure3DRequestData"}, payload.Keys())
		amount, ok := payload.GetInt64("secure3DRequestData.amount")
		require.True(t, ok)
		assert.Equal(t, int64(1000), amount)
		assert.Equal(t, "USD", payload.Get("secure3DRequestData.currency"))
	})

	t.Run("payload copies the card", func(t *testing.T) {
		svc, _ := newTestCardTokenSvc(t, ctrl, testSandboxKey)
		card := testCard()

		req, err := svc.BuildCreateCardTokenRequest(card, nil)
		require.NoError(t, err)

		require.NoError(t, card.Set("number", "4111111111111111"))
		assert.Equal(t, "5555555555554444", req.Payload().Get("card.number"))
	})

	t.Run("nil card", func(t *testing.T) {
		svc, _ := newTestCardTokenSvc(t, ctrl, testSandboxKey)

		req, err := svc.BuildCreateCardTokenRequest(nil, nil)
		assert.Nil(t, req)
		assert.ErrorIs(t, err, ErrNilCard)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	})
}

// ── Execute ──────────────────────────────────────────────────────────────────

func TestCardTokenService_Execute_CardToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockTransport := newTestCardTokenSvc(t, ctrl, testSandboxKey)
	ctx := context.Background()

	token := models.NewMap().MustSet("id", "tok_123").MustSet("card.last4", "4444")

	mockTransport.EXPECT().Execute(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.Request) (*models.Map, error) {
			assert.Equal(t, SandboxBaseURL+CardTokenPath, req.URL())
			assert.Equal(t, testSandboxKey, req.Payload().Get("key"))
			return token, nil
		},
	).Times(1)

	req, err := svc.BuildCreateCardTokenRequest(testCard(), nil)
	require.NoError(t, err)

	got, err := svc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "tok_123", got.Get("id"))
}

func TestCardTokenService_Execute_GatewayErrorUnwrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockTransport := newTestCardTokenSvc(t, ctrl, testSandboxKey)
	ctx := context.Background()

	body := models.NewMap().MustSet("error.message", "card declined")
	gatewayErr := models.NewGatewayError(402, body)

	mockTransport.EXPECT().Execute(ctx, gomock.Any()).Return(nil, gatewayErr).Times(1)

	req, err := svc.BuildCreateCardTokenRequest(testCard(), nil)
	require.NoError(t, err)

	got, err := svc.Execute(ctx, req)
	assert.Nil(t, got)
	assert.Same(t, gatewayErr, err)

	var ge *models.GatewayError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, "card declined", ge.Message)
}

// ── Google Pay ───────────────────────────────────────────────────────────────

func TestCardTokenService_Execute_GooglePay(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockTransport := newTestCardTokenSvc(t, ctrl, testLiveKey)
	ctx := context.Background()

	mockTransport.EXPECT().Execute(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.Request) (*models.Map, error) {
			payload := req.Payload()
			assert.Equal(t, LiveBaseURL+CardTokenPath, req.URL())
			assert.Equal(t, "ANDROID_PAY_IN_APP", payload.Get("card.cardEntryMode"))
			assert.Equal(t, "gpay-public-key", payload.Get("card.androidPayData.publicKey"))
			assert.Equal(t, testEncryptedMessage, payload.Get("card.androidPayData.paymentToken.encryptedMessage"))
			return models.NewMap().MustSet("id", "tok_gpay"), nil
		},
	).Times(1)

	req, err := svc.BuildGooglePayCardTokenRequest(testPaymentData(t), nil)
	require.NoError(t, err)

	got, err := svc.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "tok_gpay", got.Get("id"))
}

func TestCardTokenService_BuildGooglePayCardTokenRequest_NoPublicKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := NewCardTokenService(config.App{APIKey: testLiveKey}, mock.NewMockTransport(ctrl), nil)
	require.NoError(t, err)

	req, err := svc.BuildGooglePayCardTokenRequest(testPaymentData(t), nil)
	assert.Nil(t, req)
	assert.ErrorIs(t, err, ErrGooglePayKeyMissing)
}
