package simplify

import (
	"crypto/x509"
	"time"

	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/rs/zerolog"
)

// Option configures a [Client].
type Option func(*options)

type options struct {
	cfg config.StructuredConfig

	transport Transport
	rootCAs   *x509.CertPool
	dispatch  Dispatcher
	logger    *logger.Logger
}

func defaultOptions() options {
	return options{
		cfg: config.StructuredConfig{
			Adapter: config.Adapter{
				ConnectTimeout: config.DefaultConnectTimeout,
				ReadTimeout:    config.DefaultReadTimeout,
			},
			Workers: config.Workers{ShutdownTimeout: config.DefaultShutdownTimeout},
		},
	}
}

// WithLogger sends SDK logs to l. Without it the client logs nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithDispatcher delivers callbacks through d, e.g. onto a UI event loop.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) {
		o.dispatch = d
	}
}

// WithTransport replaces the HTTPS transport. Timeouts and trust options are
// ignored when it is set.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithConnectTimeout bounds TCP connect and the TLS handshake.
func WithConnectTimeout(d time.Duration) Option {
	return func(o *options) {
		o.cfg.Adapter.ConnectTimeout = d
	}
}

// WithReadTimeout bounds the wait for the gateway's response.
func WithReadTimeout(d time.Duration) Option {
	return func(o *options) {
		o.cfg.Adapter.ReadTimeout = d
	}
}

// WithRootCAs trusts pool instead of the embedded gateway CA.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(o *options) {
		o.rootCAs = pool
	}
}

// WithCAFile trusts the PEM certificates in path instead of the embedded
// gateway CA.
func WithCAFile(path string) Option {
	return func(o *options) {
		o.cfg.Adapter.CAFile = path
	}
}

// WithBaseURLs overrides the live and sandbox endpoints. Empty values keep
// the built-in ones.
func WithBaseURLs(live, sandbox string) Option {
	return func(o *options) {
		o.cfg.App.LiveBaseURL = live
		o.cfg.App.SandboxBaseURL = sandbox
	}
}

// WithGooglePayPublicKey enables Google Pay tokenization.
func WithGooglePayPublicKey(key string) Option {
	return func(o *options) {
		o.cfg.App.GooglePayPublicKey = key
	}
}

// WithVersion sets the SDK version reported in the User-Agent header.
func WithVersion(version string) Option {
	return func(o *options) {
		o.cfg.App.Version = version
	}
}

// WithShutdownTimeout bounds [Client.Shutdown].
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) {
		o.cfg.Workers.ShutdownTimeout = d
	}
}
