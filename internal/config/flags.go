package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags registers the configuration flags on fs, parses args and
// returns the values as a partial [StructuredConfig]. Callers may register
// their own flags on fs beforehand; those are parsed in the same pass.
//
// Flags:
//
//	-api-key merchant public API key
//	-live-url live gateway base URL override
//	-sandbox-url sandbox gateway base URL override
//	-google-pay-key Google Pay merchant public key
//	-sdk-version version reported in the User-Agent header
//	-connect-timeout connect timeout (e.g., "15s")
//	-read-timeout read timeout (e.g., "60s")
//	-ca-file PEM file replacing the embedded trust anchor
//	-shutdown-timeout wait for in-flight calls (e.g., "90s")
//	-log-level minimum log level
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var apiKey string
	var liveURL, sandboxURL string
	var googlePayKey string
	var version string
	var connectTimeout, readTimeout time.Duration
	var caFile string
	var shutdownTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&apiKey, "api-key", "", "Merchant public API key")
	fs.StringVar(&liveURL, "live-url", "", "Live gateway base URL")
	fs.StringVar(&sandboxURL, "sandbox-url", "", "Sandbox gateway base URL")
	fs.StringVar(&googlePayKey, "google-pay-key", "", "Google Pay merchant public key")
	fs.StringVar(&version, "sdk-version", "", "Version reported in the User-Agent header")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Connect timeout (e.g., 15s)")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Read timeout (e.g., 60s)")
	fs.StringVar(&caFile, "ca-file", "", "PEM file replacing the embedded trust anchor")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Wait for in-flight calls (e.g., 90s)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			APIKey:             apiKey,
			LiveBaseURL:        liveURL,
			SandboxBaseURL:     sandboxURL,
			GooglePayPublicKey: googlePayKey,
			Version:            version,
		},
		Adapter: Adapter{
			ConnectTimeout: connectTimeout,
			ReadTimeout:    readTimeout,
			CAFile:         caFile,
		},
		Workers:      Workers{ShutdownTimeout: shutdownTimeout},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}
