package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors the msal configuration object. Keys it does not know are
// ignored.
type jsonConfig struct {
	Auth struct {
		ClientID  string `json:"clientId"`
		Authority string `json:"authority"`
	} `json:"auth"`

	Cache struct {
		CacheLocation          string `json:"cacheLocation"`
		StoreAuthStateInCookie bool   `json:"storeAuthStateInCookie"`
	} `json:"cache"`

	System struct {
		LoggerOptions struct {
			LogLevel          *LogLevel `json:"logLevel"`
			PiiLoggingEnabled bool      `json:"piiLoggingEnabled"`
		} `json:"loggerOptions"`
		NetworkTimeout Duration `json:"networkTimeout"`
	} `json:"system"`
}

func parseJSON(jsonFilePath string) (*sourceConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &sourceConfig{
		Auth: authSource{
			ClientID:  jsonCfg.Auth.ClientID,
			Authority: jsonCfg.Auth.Authority,
		},
		Cache: cacheSource{
			Location:               jsonCfg.Cache.CacheLocation,
			StoreAuthStateInCookie: jsonCfg.Cache.StoreAuthStateInCookie,
		},
		System: systemSource{
			PiiLoggingEnabled: jsonCfg.System.LoggerOptions.PiiLoggingEnabled,
			NetworkTimeout:    time.Duration(jsonCfg.System.NetworkTimeout),
		},
	}
	if level := jsonCfg.System.LoggerOptions.LogLevel; level != nil {
		cfg.System.LogLevel = level.String()
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
