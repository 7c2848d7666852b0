package adapter

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-simplify/models"
)

// classifyResponse turns a completed call into a result map or a typed
// failure. The body is parsed whatever the status, so an unreadable error
// body is a ParseError rather than a GatewayError.
func classifyResponse(statusCode int, body []byte) (*models.Map, error) {
	parsed, err := models.ParseMap(body)
	if err != nil {
		return nil, &models.ParseError{StatusCode: statusCode, Body: bytes.Clone(body), Err: err}
	}

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices {
		return parsed, nil
	}

	return nil, models.NewGatewayError(statusCode, parsed)
}
