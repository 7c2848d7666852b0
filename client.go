// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simplify

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-simplify/internal/adapter"
	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/MKhiriev/go-simplify/internal/service"
	"github.com/MKhiriev/go-simplify/internal/utils"
	"github.com/MKhiriev/go-simplify/internal/validators"
	"github.com/MKhiriev/go-simplify/internal/workers"
)

// Client talks to the gateway on behalf of one merchant public API key. It
// is safe for concurrent use.
type Client struct {
	service   service.CardTokenService
	validator validators.Validator

	workers  *workers.Workers
	dispatch Dispatcher
	ids      *utils.UUIDGenerator

	shutdownTimeout time.Duration

	logger *logger.Logger
}

// New creates a client for apiKey. The key must be a live ("lvpb_") or
// sandbox ("sbpb_") public key; anything else returns an error wrapping
// [ErrInvalidArgument].
func New(apiKey string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	o.cfg.App.APIKey = apiKey
	for _, opt := range opts {
		opt(&o)
	}
	return newClient(o)
}

// NewFromEnv creates a client from SIMPLIFY_* environment variables, a .env
// file in the working directory and the JSON file named by SIMPLIFY_CONFIG.
// opts are applied on top.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.GetStructuredConfig(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	o := defaultOptions()
	o.cfg = *cfg
	for _, opt := range opts {
		opt(&o)
	}
	return newClient(o)
}

func newClient(o options) (*Client, error) {
	if err := service.ValidateAPIKey(o.cfg.App.APIKey); err != nil {
		return nil, err
	}

	log := o.logger
	if log == nil {
		log = logger.Nop()
	}

	transport := o.transport
	if transport == nil {
		var transportOpts []adapter.Option
		if o.rootCAs != nil {
			transportOpts = append(transportOpts, adapter.WithRootCAs(o.rootCAs))
		}

		var err error
		transport, err = adapter.NewHTTPSTransport(o.cfg.Adapter, o.cfg.App.Version, log, transportOpts...)
		if err != nil {
			return nil, fmt.Errorf("create transport: %w", err)
		}
	}

	services, err := service.NewServices(o.cfg.App, transport, log)
	if err != nil {
		return nil, err
	}

	return &Client{
		service:         services.CardTokenService,
		validator:       validators.NewCardValidator(),
		workers:         workers.NewWorkers(),
		dispatch:        o.dispatch,
		ids:             utils.NewUUIDGenerator(),
		shutdownTimeout: o.cfg.Workers.ShutdownTimeout,
		logger:          log,
	}, nil
}

// APIKey returns the key requests are currently signed with.
func (c *Client) APIKey() string {
	return c.service.APIKey()
}

// SetAPIKey switches to another key. Calls already started keep the key
// they were built with. An invalid key is rejected and the old one stays.
func (c *Client) SetAPIKey(apiKey string) error {
	return c.service.SetAPIKey(apiKey)
}

// IsLive reports whether the current key targets the live environment.
func (c *Client) IsLive() bool {
	return c.service.IsLive()
}

// CreateCardToken requests a card token for card, optionally asking the
// gateway to start 3-D Secure with secure3DRequestData. The call runs in the
// background and reports to cb exactly once. Only argument errors are
// returned.
func (c *Client) CreateCardToken(ctx context.Context, card, secure3DRequestData *Map, cb Callback) error {
	if cb == nil {
		return fmt.Errorf("%w: callback is required", ErrInvalidArgument)
	}

	req, err := c.service.BuildCreateCardTokenRequest(card, secure3DRequestData)
	if err != nil {
		return err
	}

	c.start(ctx, req, cb)
	return nil
}

// CreateCardTokenAsync is CreateCardToken returning a [Future] instead of
// taking a callback.
func (c *Client) CreateCardTokenAsync(ctx context.Context, card, secure3DRequestData *Map) (*Future, error) {
	req, err := c.service.BuildCreateCardTokenRequest(card, secure3DRequestData)
	if err != nil {
		return nil, err
	}
	return c.start(ctx, req, nil), nil
}

// TokenizeCard validates card and secure3DRequestData locally and then
// behaves like CreateCardToken. Validation failures wrap both
// [ErrInvalidArgument] and the specific card error, e.g.
// [ErrInvalidCardNumber].
func (c *Client) TokenizeCard(ctx context.Context, card Card, secure3DRequestData *Secure3DRequestData, cb Callback) error {
	cardMap, s3d, err := c.validateCard(ctx, card, secure3DRequestData)
	if err != nil {
		return err
	}
	return c.CreateCardToken(ctx, cardMap, s3d, cb)
}

// TokenizeCardAsync is TokenizeCard returning a [Future].
func (c *Client) TokenizeCardAsync(ctx context.Context, card Card, secure3DRequestData *Secure3DRequestData) (*Future, error) {
	cardMap, s3d, err := c.validateCard(ctx, card, secure3DRequestData)
	if err != nil {
		return nil, err
	}
	return c.CreateCardTokenAsync(ctx, cardMap, s3d)
}

func (c *Client) validateCard(ctx context.Context, card Card, secure3DRequestData *Secure3DRequestData) (*Map, *Map, error) {
	if err := c.validator.Validate(ctx, card); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if secure3DRequestData == nil {
		return card.ToMap(), nil, nil
	}
	if err := c.validator.Validate(ctx, secure3DRequestData); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return card.ToMap(), secure3DRequestData.ToMap(), nil
}

// CreateGooglePayCardToken requests a card token for the JSON of a Google
// Pay PaymentData object. It requires [WithGooglePayPublicKey].
func (c *Client) CreateGooglePayCardToken(ctx context.Context, paymentData []byte, secure3DRequestData *Map, cb Callback) error {
	if cb == nil {
		return fmt.Errorf("%w: callback is required", ErrInvalidArgument)
	}

	req, err := c.service.BuildGooglePayCardTokenRequest(paymentData, secure3DRequestData)
	if err != nil {
		return err
	}

	c.start(ctx, req, cb)
	return nil
}

// CreateGooglePayCardTokenAsync is CreateGooglePayCardToken returning a
// [Future] instead of taking a callback.
func (c *Client) CreateGooglePayCardTokenAsync(ctx context.Context, paymentData []byte, secure3DRequestData *Map) (*Future, error) {
	req, err := c.service.BuildGooglePayCardTokenRequest(paymentData, secure3DRequestData)
	if err != nil {
		return nil, err
	}
	return c.start(ctx, req, nil), nil
}

// ExecuteAsync sends an arbitrary request in the background. cb may be nil
// when only the returned [Future] is used.
func (c *Client) ExecuteAsync(ctx context.Context, req *Request, cb Callback) (*Future, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidArgument)
	}
	return c.start(ctx, req, cb), nil
}

// Execute sends req and blocks until the gateway answers. Cancelling ctx
// does not abort the call.
func (c *Client) Execute(ctx context.Context, req *Request) (*Map, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidArgument)
	}

	ctx = c.callContext(context.WithoutCancel(ctx))
	return c.service.Execute(ctx, req)
}

// InFlight reports how many background calls have not finished.
func (c *Client) InFlight() int {
	return c.workers.InFlight()
}

// Wait blocks until every background call has reported.
func (c *Client) Wait() {
	c.workers.Wait()
}

// Shutdown waits for background calls, bounded by ctx and the configured
// shutdown timeout. Calls still running when it returns are not stopped.
func (c *Client) Shutdown(ctx context.Context) error {
	if c.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.shutdownTimeout)
		defer cancel()
	}

	if err := c.workers.WaitContext(ctx); err != nil {
		c.logger.Warn().Int("in_flight", c.workers.InFlight()).Msg("shutdown before all calls finished")
		return err
	}
	return nil
}

func (c *Client) start(ctx context.Context, req *Request, cb Callback) *Future {
	ctx = c.callContext(ctx)
	call := workers.NewCall(ctx, func(ctx context.Context) (*Map, error) {
		return c.service.Execute(ctx, req)
	}, cb, c.dispatch, logger.FromContextOr(ctx, c.logger))

	c.workers.Go(call)
	return call.Future()
}

// callContext tags ctx with a request id and a logger carrying it, keeping
// ids the caller already set.
func (c *Client) callContext(ctx context.Context) context.Context {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	log := &logger.Logger{Logger: logger.FromContextOr(ctx, c.logger).With().Str("request_id", requestID).Logger()}
	return log.WithContext(ctx)
}
