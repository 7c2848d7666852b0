package simplify

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-simplify/internal/service"
	"github.com/MKhiriev/go-simplify/models"
)

// Secure3DDataFromToken extracts the 3-D Secure challenge from a card token
// returned by CreateCardToken with 3DS request data. It fails with
// [ErrInvalidArgument] when the token carries no complete challenge.
func Secure3DDataFromToken(token *Map) (Secure3DData, error) {
	return models.Secure3DDataFromToken(token)
}

// NewAuthenticationRequest builds the form POST to the issuer's ACS that
// the host shows to the cardholder.
func NewAuthenticationRequest(ctx context.Context, data Secure3DData) (*http.Request, error) {
	return service.NewAuthenticationRequest(ctx, data)
}

// ParseSecure3DRedirect extracts the result from a "simplifysdk://"
// completion redirect. ok is false for any other URL.
func ParseSecure3DRedirect(rawURL string) (result string, ok bool) {
	return service.ParseSecure3DRedirect(rawURL)
}

// ParseSecure3DResult decodes the result carried by the completion redirect.
func ParseSecure3DResult(result string) (Secure3DResult, error) {
	return service.ParseSecure3DResult(result)
}

// HandleSecure3DResult reports a finished (completed) or abandoned
// authentication to cb.
func HandleSecure3DResult(completed bool, result string, cb Secure3DCallback) {
	service.HandleSecure3DResult(completed, result, cb)
}

// HandleSecure3DRedirect reports the outcome to cb when rawURL is the
// completion redirect and returns whether it was.
func HandleSecure3DRedirect(rawURL string, cb Secure3DCallback) bool {
	return service.HandleSecure3DRedirect(rawURL, cb)
}
