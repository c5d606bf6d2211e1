// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Default client settings.
const (
	DefaultClientServerAddress  = "http://localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultClientSessionFile    = ".vc-session.json"
	DefaultClientCurrency       = "PKR"
)

// ClientConfig is the configuration of the vc-tracker CLI.
type ClientConfig struct {
	// ServerAddress is the base URL of the vc-tracker API.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"CLIENT_SERVER_ADDRESS" json:"server_address"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT" json:"-"`

	// SessionFile stores the logged-in username and its token between runs.
	// Env: CLIENT_SESSION_FILE
	SessionFile string `env:"CLIENT_SESSION_FILE" json:"session_file"`

	// Currency is the ISO 4217 code used to render amounts.
	// Env: CLIENT_CURRENCY
	Currency string `env:"CLIENT_CURRENCY" json:"currency"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

type clientJSONConfig struct {
	ClientConfig
	RequestTimeout Duration `json:"request_timeout"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  DefaultClientServerAddress,
		RequestTimeout: DefaultClientRequestTimeout,
		SessionFile:    DefaultClientSessionFile,
		Currency:       DefaultClientCurrency,
	}
}

// GetClientConfig builds and validates the CLI configuration from defaults,
// an optional JSON file and the environment, in that priority order.
//
// jsonPath, when non-empty, takes precedence over the CONFIG variable.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	if jsonPath == "" {
		jsonPath = envCfg.JSONFilePath
	}

	layers := make([]*ClientConfig, 0, 2)
	if jsonPath != "" {
		var jsonCfg clientJSONConfig
		if err := decodeJSONFile(jsonPath, &jsonCfg); err != nil {
			return nil, err
		}
		jsonCfg.ClientConfig.RequestTimeout = time.Duration(jsonCfg.RequestTimeout)
		layers = append(layers, &jsonCfg.ClientConfig)
	}
	layers = append(layers, envCfg)

	cfg := defaultClientConfig()
	for _, layer := range layers {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	cfg.JSONFilePath = jsonPath

	return cfg, cfg.validate()
}
