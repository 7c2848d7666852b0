// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service builds gateway requests on top of [adapter.Transport]:
// API key checks, live or sandbox endpoint selection, card token payloads,
// Google Pay card flattening and the 3-D Secure hand-off helpers.
package service

import (
	"context"

	"github.com/MKhiriev/go-simplify/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CardTokenService creates card tokens for one public API key.
//
// The Build methods only assemble a request and report argument errors; they
// never touch the network. Execute blocks until the gateway answers.
type CardTokenService interface {
	APIKey() string
	SetAPIKey(apiKey string) error
	IsLive() bool

	BuildCreateCardTokenRequest(card, secure3DRequestData *models.Map) (*models.Request, error)
	BuildGooglePayCardTokenRequest(paymentData []byte, secure3DRequestData *models.Map) (*models.Request, error)

	Execute(ctx context.Context, req *models.Request) (*models.Map, error)
}

// Secure3DCallback receives the outcome of a 3-D Secure authentication.
// Exactly one method is invoked per result.
type Secure3DCallback interface {
	OnSecure3DComplete(success bool)
	OnSecure3DError(message string)
	OnSecure3DCancel()
}
