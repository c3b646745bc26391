// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCredentials are the credentials the client sends. They are read from
// the environment only so they never show up in the process list.
type ClientCredentials struct {
	EmailAddress string `env:"CATALOG_EMAIL"`
	Password     string `env:"CATALOG_PASSWORD"`
	Token        string `env:"CATALOG_TOKEN"`
}

// ClientConfig is the configuration of cmd/client, a view of
// [StructuredConfig] with only the fields the client needs.
type ClientConfig struct {
	Adapter     ClientAdapter
	Credentials ClientCredentials

	// Args are the command-line arguments left after the flags, i.e. the
	// client command and its operands.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Storage and server settings are not
// required here.
func GetClientConfig(args []string) (*ClientConfig, error) {
	builder := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := builder.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	var credentials ClientCredentials
	if err = parseEnv(&credentials); err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Credentials: credentials,
		Args:        builder.rest,
	}

	return clientCfg, clientCfg.validate()
}
