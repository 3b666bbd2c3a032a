package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/rpupo63/studio-landing/errs"
	"github.com/rpupo63/studio-landing/models"
)

// Config holds all application configuration. Values come from the process
// environment, which main seeds from an optional .env file.
type Config struct {
	Port                string   `env:"PORT" envDefault:"8080"`
	ReadTimeoutSeconds  int      `env:"READ_TIMEOUT_SECONDS" envDefault:"180"`
	WriteTimeoutSeconds int      `env:"WRITE_TIMEOUT_SECONDS" envDefault:"180"`
	IdleTimeoutSeconds  int      `env:"IDLE_TIMEOUT_SECONDS" envDefault:"180"`
	AcceptedOrigins     []string `env:"ACCEPTED_ORIGINS" envSeparator:","`

	CatalogPath  string `env:"CATALOG_PATH"`
	AssetsDir    string `env:"ASSETS_DIR"`
	SiteName     string `env:"SITE_NAME"`
	ContactEmail string `env:"CONTACT_EMAIL"`
	ContactPhone string `env:"CONTACT_PHONE"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	ExportDir string `env:"EXPORT_DIR" envDefault:"dist"`
}

// New parses configuration from the environment.
func New() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errs.NewConfigError("environment", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errs.NewEnvironmentVariableError("PORT", "must not be empty")
	}
	for name, v := range map[string]int{
		"READ_TIMEOUT_SECONDS":  c.ReadTimeoutSeconds,
		"WRITE_TIMEOUT_SECONDS": c.WriteTimeoutSeconds,
		"IDLE_TIMEOUT_SECONDS":  c.IdleTimeoutSeconds,
	} {
		if v <= 0 {
			return errs.NewEnvironmentVariableError(name, fmt.Sprintf("must be positive, got %d", v))
		}
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return errs.NewEnvironmentVariableError("LOG_LEVEL", err.Error())
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return errs.NewEnvironmentVariableError("LOG_FORMAT", fmt.Sprintf("must be console or json, got %q", c.LogFormat))
	}
	return nil
}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port) // Bind to 0.0.0.0 for external access
}

func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

// Origins returns the trimmed, non-empty CORS origins.
func (c Config) Origins() []string {
	origins := make([]string, 0, len(c.AcceptedOrigins))
	for _, o := range c.AcceptedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Site returns the page copy with any configured overrides applied.
func (c Config) Site() models.Site {
	site := models.DefaultSite()
	if c.SiteName != "" {
		site.Name = c.SiteName
	}
	if c.ContactEmail != "" {
		site.ContactEmail = c.ContactEmail
	}
	if c.ContactPhone != "" {
		site.ContactPhone = c.ContactPhone
	}
	return site
}
