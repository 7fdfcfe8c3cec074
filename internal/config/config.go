package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"http://localhost:8080"`
	PingMessage string `env:"PING_MESSAGE" envDefault:"ping"`

	// Base URL of the sidebar links (Dashboard, Design, Rules Manager, ...)
	PortalBaseURL string `env:"PORTAL_BASE_URL" envDefault:"https://b1medicare-dev.simplifyhealthcloud.com"`

	FormDesign FormDesignConfig
	Mock       MockConfig
	Metrics    MetricsConfig

	// Logging - empty LogDir logs to stdout only
	LogDir      string `env:"LOG_DIR"`
	LogMaxFiles int    `env:"LOG_MAX_FILES" envDefault:"10"`
}

// FormDesignConfig configures the external FormDesign API client
type FormDesignConfig struct {
	BaseURL string `env:"FORMDESIGN_API_BASE" envDefault:"https://localhost:7129/api/v2/"`
	// Certificate validation is off by default: the API runs on localhost
	// with a self-signed development certificate
	VerifyTLS   bool          `env:"FORMDESIGN_VERIFY_TLS" envDefault:"false"`
	Timeout     time.Duration `env:"FORMDESIGN_TIMEOUT" envDefault:"15s"`
	Adapter     string        `env:"FORMDESIGN_ADAPTER" envDefault:"v2"`
	AdapterFile string        `env:"FORMDESIGN_ADAPTER_FILE"`
}

// MockConfig configures the canned data routes
type MockConfig struct {
	TypesDelay   time.Duration `env:"MOCK_TYPES_DELAY" envDefault:"300ms"`
	DesignsDelay time.Duration `env:"MOCK_DESIGNS_DELAY" envDefault:"500ms"`
}

// MetricsConfig configures the prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// Load parses the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// The client joins endpoint paths onto the base, so it must end with a slash
	if !strings.HasSuffix(cfg.FormDesign.BaseURL, "/") {
		cfg.FormDesign.BaseURL += "/"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.Environment, validation.Required, validation.In("dev", "test", "prod")),
		validation.Field(&c.PortalBaseURL, is.URL),
		validation.Field(&c.LogMaxFiles, validation.Required, validation.Min(1)),
	); err != nil {
		return err
	}

	if err := validation.ValidateStruct(&c.FormDesign,
		validation.Field(&c.FormDesign.BaseURL, validation.Required, is.URL),
		validation.Field(&c.FormDesign.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.FormDesign.Adapter, validation.Required),
	); err != nil {
		return fmt.Errorf("formdesign: %w", err)
	}

	if err := validation.ValidateStruct(&c.Mock,
		validation.Field(&c.Mock.TypesDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.Mock.DesignsDelay, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("mock: %w", err)
	}

	return validation.ValidateStruct(&c.Metrics,
		validation.Field(&c.Metrics.Path, validation.When(c.Metrics.Enabled,
			validation.Required, validation.Match(metricsPathPattern))),
	)
}

// IsDev reports whether the server runs in the development environment
func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// CORSOriginList splits CORSOrigins on commas, dropping blanks
func (c *Config) CORSOriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
