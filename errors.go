package simplify

import (
	"github.com/MKhiriev/go-simplify/internal/service"
	"github.com/MKhiriev/go-simplify/internal/validators"
	"github.com/MKhiriev/go-simplify/models"
)

var (
	// ErrInvalidArgument is wrapped by every error returned before a call
	// has started.
	ErrInvalidArgument = models.ErrInvalidArgument
	ErrInvalidKeyPath  = models.ErrInvalidKeyPath
	ErrIndexOutOfRange = models.ErrIndexOutOfRange

	ErrInvalidAPIKey       = service.ErrInvalidAPIKey
	ErrGooglePayKeyMissing = service.ErrGooglePayKeyMissing
	ErrInvalidPaymentData  = service.ErrInvalidPaymentData
	ErrInvalidSecure3DData = service.ErrInvalidSecure3DData
	ErrUnreadable3DSResult = service.ErrUnreadable3DSResult

	ErrInvalidCardNumber = validators.ErrInvalidCardNumber
	ErrInvalidCardExpiry = validators.ErrInvalidCardExpiry
	ErrInvalidCardCvc    = validators.ErrInvalidCardCvc
	ErrInvalidCardField  = validators.ErrInvalidStruct
)

type (
	// GatewayError is a non-2xx answer from the gateway.
	GatewayError   = models.GatewayError
	// TransportError is a call that never produced an HTTP response.
	TransportError = models.TransportError
	// ParseError is a response body that is not a JSON object.
	ParseError     = models.ParseError
	// PathTypeError is a key path that runs through a value of the wrong
	// shape.
	PathTypeError  = models.PathTypeError
)
