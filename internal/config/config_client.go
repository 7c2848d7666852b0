package config

import (
	"flag"
	"fmt"
)

// ClientConfig is the configuration of the command-line tool, assembled
// from [StructuredConfig]. Unlike the structured config it requires an API
// key.
type ClientConfig struct {
	// App contains gateway credentials and endpoint overrides.
	App App
	// Adapter contains transport timeouts and trust settings.
	Adapter Adapter
	// Workers contains asynchronous call settings.
	Workers Workers
	// Log contains logging settings.
	Log Log
}

// GetClientConfig builds and validates the command-line view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the tool, and validates the resulting [ClientConfig].
func GetClientConfig(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
		Log:     cfg.Log,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
