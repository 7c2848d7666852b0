package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-simplify/internal/adapter"
	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/MKhiriev/go-simplify/models"
)

// Payload keys of the card token request.
const (
	payloadKeyAPIKey   = "key"
	payloadKeyCard     = "card"
	payloadKeySecure3D = "secure3DRequestData"
)

type cardTokenService struct {
	mu     sync.RWMutex
	apiKey string

	cfg       config.App
	transport adapter.Transport

	logger *logger.Logger
}

// NewCardTokenService validates cfg.APIKey and returns a service sending its
// requests through transport.
func NewCardTokenService(cfg config.App, transport adapter.Transport, log *logger.Logger) (CardTokenService, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}
	if err := ValidateAPIKey(cfg.APIKey); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}

	return &cardTokenService{
		apiKey:    cfg.APIKey,
		cfg:       cfg,
		transport: transport,
		logger:    log,
	}, nil
}

func (s *cardTokenService) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// SetAPIKey replaces the key after validating it. An invalid key leaves the
// current one in place.
func (s *cardTokenService) SetAPIKey(apiKey string) error {
	if err := ValidateAPIKey(apiKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.apiKey = apiKey
	s.mu.Unlock()
	return nil
}

func (s *cardTokenService) IsLive() bool {
	return IsLiveKey(s.APIKey())
}

// BuildCreateCardTokenRequest assembles the POST to the card token endpoint.
// The payload holds the API key, a copy of card and, when given, a copy of
// secure3DRequestData.
func (s *cardTokenService) BuildCreateCardTokenRequest(card, secure3DRequestData *models.Map) (*models.Request, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	apiKey := s.APIKey()

	payload := models.NewMap().
		MustSet(payloadKeyAPIKey, apiKey).
		MustSet(payloadKeyCard, card)
	if secure3DRequestData != nil {
		payload.MustSet(payloadKeySecure3D, secure3DRequestData)
	}

	return models.NewRequest(models.MethodPost, BaseURL(apiKey, s.cfg)+CardTokenPath, payload), nil
}

// BuildGooglePayCardTokenRequest flattens Google Pay payment data into a
// card with [BuildGooglePayCard] and wraps it like any other card.
func (s *cardTokenService) BuildGooglePayCardTokenRequest(paymentData []byte, secure3DRequestData *models.Map) (*models.Request, error) {
	card, err := BuildGooglePayCard(paymentData, s.cfg.GooglePayPublicKey)
	if err != nil {
		return nil, err
	}
	return s.BuildCreateCardTokenRequest(card, secure3DRequestData)
}

// Execute sends req through the transport and returns the gateway answer.
// Transport errors are returned unwrapped so callers can type-switch on them.
func (s *cardTokenService) Execute(ctx context.Context, req *models.Request) (*models.Map, error) {
	log := logger.FromContextOr(ctx, s.logger)

	token, err := s.transport.Execute(ctx, req)
	if err != nil {
		log.Warn().Err(err).Bool("live", s.IsLive()).Msg("card token request failed")
		return nil, err
	}

	id, _ := token.GetString("id")
	log.Info().Str("token_id", id).Bool("live", s.IsLive()).Msg("card token created")
	return token, nil
}
