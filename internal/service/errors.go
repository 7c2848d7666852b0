package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-simplify/models"
)

var (
	ErrInvalidAPIKey       = fmt.Errorf("%w: invalid api key", models.ErrInvalidArgument)
	ErrNilCard             = fmt.Errorf("%w: card is required", models.ErrInvalidArgument)
	ErrNilTransport        = fmt.Errorf("%w: transport is required", models.ErrInvalidArgument)
	ErrGooglePayKeyMissing = fmt.Errorf("%w: google pay public key is not configured", models.ErrInvalidArgument)
	ErrInvalidPaymentData  = fmt.Errorf("%w: invalid google pay payment data", models.ErrInvalidArgument)
	ErrInvalidSecure3DData = fmt.Errorf("%w: invalid 3DS data", models.ErrInvalidArgument)
)

var ErrUnreadable3DSResult = errors.New("unable to read 3DS result")
