package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shoplo/shipx-go/httpclient"
	"github.com/shoplo/shipx-go/logger"
)

const (
	// ProductionURL is the production shipping API endpoint.
	ProductionURL = "https://api-shipx-pl.easypack24.net"
	// SandboxURL is the sandbox shipping API endpoint.
	SandboxURL = "https://sandbox-api-shipx-pl.easypack24.net"

	defaultTimeout = 30 * time.Second
)

// Config is the client configuration.
type Config struct {
	BaseURL     string                `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	AccessToken string                `yaml:"access_token" mapstructure:"access_token"`
	Timeout     time.Duration         `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`
	Headers     map[string]string     `yaml:"headers" mapstructure:"headers"`
	TLS         *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`
	Logging     logger.Config         `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = ProductionURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return formatValidationError(err)
	}
	if err := c.TLS.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// HTTPClient returns the transport configuration for httpclient.New.
func (c *Config) HTTPClient() httpclient.Config {
	return httpclient.Config{
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
		TLS:     c.TLS,
		Headers: c.Headers,
	}
}

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		var msg string
		switch e.Tag() {
		case "required":
			msg = "is required"
		case "url":
			msg = "must be a valid URL"
		case "gt":
			msg = "must be greater than " + e.Param()
		default:
			msg = "is invalid"
		}
		msgs = append(msgs, e.Field()+" "+msg)
	}
	return fmt.Errorf("config: %s", strings.Join(msgs, "; "))
}
