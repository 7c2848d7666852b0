// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable before
// the SDK is built from it. The API key is checked by the CLI view only,
// since library callers pass it in code.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ConnectTimeout < 0 || cfg.Adapter.ReadTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidAdapterConfigs)
	}

	for _, raw := range []string{cfg.App.LiveBaseURL, cfg.App.SandboxBaseURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("%w: base URL %q must be an absolute https URL", ErrInvalidAppConfigs, raw)
		}
	}

	if cfg.Workers.ShutdownTimeout < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.ConnectTimeout == 0 || cfg.Adapter.ReadTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
