package service

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/google/uuid"
)

const (
	// LiveBaseURL serves keys with the live prefix.
	LiveBaseURL = "https://api.simplify.com/v1/api"
	// SandboxBaseURL serves every other valid key.
	SandboxBaseURL = "https://sandbox.simplify.com/v1/api"
	// CardTokenPath is appended to the base URL for card token creation.
	CardTokenPath = "/payment/cardToken"

	liveKeyPrefix = "lvpb_"
)

var apiKeyPattern = regexp.MustCompile(`^(?:lv|sb)pb_(.+)$`)

// ValidateAPIKey checks that apiKey is a live or sandbox public key whose
// suffix is a base64 encoded UUID. Padded and unpadded encodings are both
// accepted.
func ValidateAPIKey(apiKey string) error {
	match := apiKeyPattern.FindStringSubmatch(apiKey)
	if match == nil {
		return fmt.Errorf("%w: unknown prefix", ErrInvalidAPIKey)
	}

	decoded, err := decodeKeySuffix(match[1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}

	if _, err = uuid.Parse(strings.TrimSpace(string(decoded))); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	}

	return nil
}

func decodeKeySuffix(suffix string) ([]byte, error) {
	decoded, err := base64.StdEncoding.DecodeString(suffix)
	if err == nil {
		return decoded, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(suffix, "="))
}

// IsLiveKey reports whether apiKey targets the live environment.
func IsLiveKey(apiKey string) bool {
	return strings.HasPrefix(apiKey, liveKeyPrefix)
}

// BaseURL picks the gateway base URL for apiKey. Overrides from cfg win over
// the built-in endpoints.
func BaseURL(apiKey string, cfg config.App) string {
	if IsLiveKey(apiKey) {
		if cfg.LiveBaseURL != "" {
			return strings.TrimRight(cfg.LiveBaseURL, "/")
		}
		return LiveBaseURL
	}

	if cfg.SandboxBaseURL != "" {
		return strings.TrimRight(cfg.SandboxBaseURL, "/")
	}
	return SandboxBaseURL
}
