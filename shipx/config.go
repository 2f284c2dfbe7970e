package shipx

import (
	"fmt"

	"github.com/shoplo/shipx-go/config"
	"github.com/shoplo/shipx-go/httpclient"
	"github.com/shoplo/shipx-go/logger"
)

// NewFromConfig builds an httpclient.Client from cfg and wraps it in an
// Adapter carrying the configured token and logger. Options are applied after
// the configured ones. The caller owns the client; close it via Client().
func NewFromConfig(cfg config.Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := httpclient.New(cfg.HTTPClient())
	if err != nil {
		return nil, fmt.Errorf("shipx: create http client: %w", err)
	}

	all := append([]Option{WithLogger(logger.New(cfg.Logging, "shipx"))}, opts...)
	return New(client, cfg.AccessToken, all...), nil
}

// Client returns the Doer the adapter delegates to.
func (a *Adapter) Client() Doer {
	return a.client
}
