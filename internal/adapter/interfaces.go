// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the SDK and the
// Simplify gateway.
//
// The primary abstraction is [Transport], which decouples the service layer
// from the underlying protocol. The package ships an HTTPS implementation
// ([NewHTTPSTransport]) whose trust store holds a single pinned intermediate
// CA certificate.
//
// Responses are classified by classifyResponse so that callers can use
// [errors.As] for transport-agnostic error handling: a non-2xx status yields
// [models.GatewayError], an unreadable body [models.ParseError], and a call
// that never completed [models.TransportError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-simplify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport executes a single gateway call.
type Transport interface {
	// Execute sends req exactly once and returns the parsed response body of
	// a 2xx answer. Failures are *models.GatewayError, *models.ParseError or
	// *models.TransportError; a nil or unserializable request yields
	// models.ErrInvalidArgument.
	Execute(ctx context.Context, req *models.Request) (*models.Map, error)
}
