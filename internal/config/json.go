package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		APIKey             string `json:"api_key"`
		LiveBaseURL        string `json:"live_base_url"`
		SandboxBaseURL     string `json:"sandbox_base_url"`
		GooglePayPublicKey string `json:"google_pay_public_key"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		ConnectTimeout Duration `json:"connect_timeout"`
		ReadTimeout    Duration `json:"read_timeout"`
		CAFile         string   `json:"ca_file"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIKey:             jsonCfg.App.APIKey,
			LiveBaseURL:        jsonCfg.App.LiveBaseURL,
			SandboxBaseURL:     jsonCfg.App.SandboxBaseURL,
			GooglePayPublicKey: jsonCfg.App.GooglePayPublicKey,
			Version:            jsonCfg.App.Version,
		},
		Adapter: Adapter{
			ConnectTimeout: time.Duration(jsonCfg.Adapter.ConnectTimeout),
			ReadTimeout:    time.Duration(jsonCfg.Adapter.ReadTimeout),
			CAFile:         jsonCfg.Adapter.CAFile,
		},
		Workers: Workers{
			ShutdownTimeout: time.Duration(jsonCfg.Workers.ShutdownTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
