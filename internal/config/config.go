// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// EnvPrefix is prepended to every environment variable the SDK reads,
// e.g. SIMPLIFY_APP_API_KEY.
const EnvPrefix = "SIMPLIFY_"

// StructuredConfig is the top-level configuration container for the
// go-simplify SDK and its command-line tool. It aggregates all
// sub-configurations and is populated by merging values from a .env file,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds gateway credentials and endpoint overrides.
	App App `envPrefix:"APP_"`

	// Adapter holds the HTTPS transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings for the per-call goroutines that run
	// asynchronous gateway calls.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the SIMPLIFY_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds gateway credentials and endpoint settings.
type App struct {
	// APIKey is the merchant public API key ("lvpb_..." or "sbpb_...").
	// Env: SIMPLIFY_APP_API_KEY
	APIKey string `env:"API_KEY"`

	// LiveBaseURL overrides the live gateway base URL.
	// Env: SIMPLIFY_APP_LIVE_BASE_URL
	LiveBaseURL string `env:"LIVE_BASE_URL"`

	// SandboxBaseURL overrides the sandbox gateway base URL.
	// Env: SIMPLIFY_APP_SANDBOX_BASE_URL
	SandboxBaseURL string `env:"SANDBOX_BASE_URL"`

	// GooglePayPublicKey is the merchant key Google Pay tokens are
	// encrypted for. Required only for Google Pay tokenization.
	// Env: SIMPLIFY_APP_GOOGLE_PAY_PUBLIC_KEY
	GooglePayPublicKey string `env:"GOOGLE_PAY_PUBLIC_KEY"`

	// Version is the SDK version reported in the User-Agent header.
	// Env: SIMPLIFY_APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds HTTPS transport settings.
type Adapter struct {
	// ConnectTimeout bounds TCP connection establishment (e.g. "15s").
	// Env: SIMPLIFY_ADAPTER_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// ReadTimeout bounds waiting for and reading the response (e.g. "60s").
	// Env: SIMPLIFY_ADAPTER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// CAFile replaces the embedded trust anchor with the PEM certificates in
	// the given file. Intended for gateways reached through a proxy and for
	// tests.
	// Env: SIMPLIFY_ADAPTER_CA_FILE
	CAFile string `env:"CA_FILE"`
}

// Workers holds settings for asynchronous calls.
type Workers struct {
	// ShutdownTimeout bounds how long the command-line tool waits for
	// in-flight calls before exiting.
	// Env: SIMPLIFY_WORKERS_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level ("debug", "info", ...).
	// Env: SIMPLIFY_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults used when no source sets a value.
const (
	DefaultConnectTimeout  = 15 * time.Second
	DefaultReadTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 90 * time.Second
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			ConnectTimeout: DefaultConnectTimeout,
			ReadTimeout:    DefaultReadTimeout,
		},
		Workers: Workers{ShutdownTimeout: DefaultShutdownTimeout},
		Log:     Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (never overrides real env vars)
//  3. Environment variables
//  4. Command-line flags registered on fs and parsed from args
//  5. JSON file (path resolved from sources 3 and 4)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}
