package adapter

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/MKhiriev/go-simplify/internal/utils"
	"github.com/MKhiriev/go-simplify/models"
)

const (
	// DefaultConnectTimeout bounds TCP connect and TLS handshake.
	DefaultConnectTimeout = 15 * time.Second
	// DefaultReadTimeout bounds waiting for the response.
	DefaultReadTimeout = 60 * time.Second

	// HeaderRequestID carries the per-call identifier used to correlate logs.
	HeaderRequestID = "X-Request-Id"

	contentTypeJSON = "application/json"
)

type httpsTransport struct {
	client *utils.HTTPClient

	userAgent string
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// Option customizes the HTTPS transport beyond what config.Adapter covers.
type Option func(*transportOptions)

type transportOptions struct {
	rootCAs *x509.CertPool
}

// WithRootCAs replaces the trust anchors. The pool is used as is; nothing
// from the system store is added.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *transportOptions) {
		o.rootCAs = pool
	}
}

// NewHTTPSTransport constructs the HTTPS implementation of [Transport].
//
// The TLS configuration trusts only the embedded intermediate CA, or the
// certificates of adapterCfg.CAFile or [WithRootCAs] when given, and
// requires TLS 1.2 or newer. Zero timeouts fall back to
// [DefaultConnectTimeout] and [DefaultReadTimeout]. Retries are disabled so
// each Execute makes exactly one call. sdkVersion goes into the User-Agent
// header.
//
// Returns an error if the trust anchors cannot be loaded.
func NewHTTPSTransport(adapterCfg config.Adapter, sdkVersion string, log *logger.Logger, opts ...Option) (Transport, error) {
	var o transportOptions
	for _, opt := range opts {
		opt(&o)
	}

	pool, err := resolveRootCAs(adapterCfg, o)
	if err != nil {
		return nil, fmt.Errorf("load trust anchors: %w", err)
	}

	connectTimeout := adapterCfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	readTimeout := adapterCfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}

	if log == nil {
		log = logger.Nop()
	}

	dialer := &net.Dialer{Timeout: connectTimeout, KeepAlive: 30 * time.Second}
	rt := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,
		TLSClientConfig: &tls.Config{
			RootCAs:    pool,
			MinVersion: tls.VersionTLS12,
		},
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	client := utils.NewHTTPClientWithTransport(rt)
	client.
		SetTimeout(connectTimeout + readTimeout).
		SetLogger(logger.NewRestyLogger(log))

	return &httpsTransport{
		client:    client,
		userAgent: utils.UserAgent(sdkVersion),
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}, nil
}

func resolveRootCAs(adapterCfg config.Adapter, o transportOptions) (*x509.CertPool, error) {
	switch {
	case o.rootCAs != nil:
		return o.rootCAs, nil
	case adapterCfg.CAFile != "":
		return CertPoolFromFile(adapterCfg.CAFile)
	default:
		return PinnedCertPool()
	}
}

// Execute implements [Transport]. It serializes the payload in insertion
// order, sends it with the JSON content type, the SDK User-Agent, a request
// id (taken from ctx when present) and the caller's headers, and classifies
// the response.
func (h *httpsTransport) Execute(ctx context.Context, req *models.Request) (*models.Map, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", models.ErrInvalidArgument)
	}

	body, err := req.MarshalPayload()
	if err != nil {
		return nil, fmt.Errorf("%w: encode payload: %w", models.ErrInvalidArgument, err)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	log := logger.FromContextOr(ctx, h.logger)
	fingerprint, _ := utils.Fingerprint(body)

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("User-Agent", h.userAgent).
		SetHeader(HeaderRequestID, requestID).
		SetBody(body)
	for _, header := range req.Headers() {
		r.SetHeader(header.Name, header.Value)
	}

	log.Debug().
		Str("method", string(req.Method())).
		Str("url", req.URL()).
		Str("request_id", requestID).
		Str("payload_fingerprint", fingerprint).
		Msg("gateway request")

	resp, err := r.Execute(string(req.Method()), req.URL())
	if err != nil {
		log.Error().Err(err).
			Str("url", req.URL()).
			Str("request_id", requestID).
			Msg("gateway call failed")
		return nil, &models.TransportError{Op: string(req.Method()), URL: req.URL(), Err: err}
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("request_id", requestID).
		Msg("gateway response")

	return classifyResponse(resp.StatusCode(), resp.Body())
}
