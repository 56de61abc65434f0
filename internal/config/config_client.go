// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the bookmark-keeper CLI client.
type ClientConfig struct {
	// ServerURL is the base URL of the API server.
	// Env: BOOKMARK_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`

	// Token is a previously issued access token.
	// Env: BOOKMARK_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds every API call.
	// Env: BOOKMARK_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// LogLevel is a zerolog level name.
	// Env: BOOKMARK_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// ErrInvalidClientConfigs is returned when the client cannot reach any server.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// GetClientConfig loads client settings from BOOKMARK_* environment
// variables, overridden by global flags found in args. Remaining
// (non-flag) arguments are returned for subcommand dispatch.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := struct {
		Client ClientConfig `envPrefix:"BOOKMARK_"`
	}{}
	if err := parseEnv(&envCfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("bookmark-cli", flag.ContinueOnError)
	flagsCfg := ClientConfig{}
	fs.StringVar(&flagsCfg.ServerURL, "server", "", "API server base URL")
	fs.StringVar(&flagsCfg.Token, "token", "", "Access token")
	fs.DurationVar(&flagsCfg.RequestTimeout, "timeout", 0, "Request timeout")
	fs.StringVar(&flagsCfg.LogLevel, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := envCfg.Client
	if err := mergo.Merge(&cfg, flagsCfg, mergo.WithOverride); err != nil {
		return nil, nil, fmt.Errorf("error merging client configs: %w", err)
	}

	if cfg.ServerURL == "" {
		return nil, nil, fmt.Errorf("%w: empty server url", ErrInvalidClientConfigs)
	}

	return &cfg, fs.Args(), nil
}
