package service

import (
	"github.com/MKhiriev/go-simplify/internal/adapter"
	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
)

type Services struct {
	CardTokenService CardTokenService
}

func NewServices(cfg config.App, transport adapter.Transport, logger *logger.Logger) (*Services, error) {
	cardTokenService, err := NewCardTokenService(cfg, transport, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		CardTokenService: cardTokenService,
	}, nil
}
