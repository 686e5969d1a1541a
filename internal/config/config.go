package config

import (
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	LocalENV = "local"
	ProdENV  = "prod"
)

type Config struct {
	Env      string `env:"CURRENT_ENV" env-default:"local"`
	Addr     string `env:"ADDR" env-default:":3000"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`

	Twitch TwitchConfig
}

type TwitchConfig struct {
	ClientID     string `env:"CLIENT_ID,TWITCH_CLIENT_ID" env-required:"true"`
	ClientSecret string `env:"CLIENT_SECRET,TWITCH_CLIENT_SECRET" env-required:"true"`

	IDBaseURL  string        `env:"TWITCH_ID_URL" env-default:"https://id.twitch.tv"`
	APIBaseURL string        `env:"TWITCH_API_URL" env-default:"https://api.twitch.tv"`
	Timeout    time.Duration `env:"TWITCH_TIMEOUT" env-default:"5s"`

	// 0 disables the background token refresh
	TokenSyncInterval time.Duration `env:"TOKEN_SYNC_INTERVAL" env-default:"5m"`
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	// .env is optional, real env wins
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "ReadEnv")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Env {
	case LocalENV, ProdENV:
	default:
		return errors.Errorf("unknown env: %s", c.Env)
	}

	if strings.TrimSpace(c.Twitch.ClientID) == "" {
		return errors.New("client id is empty")
	}

	if strings.TrimSpace(c.Twitch.ClientSecret) == "" {
		return errors.New("client secret is empty")
	}

	if c.Twitch.Timeout <= 0 {
		return errors.Errorf("invalid twitch timeout: %s", c.Twitch.Timeout)
	}

	if c.Twitch.TokenSyncInterval < 0 {
		return errors.Errorf("invalid token sync interval: %s", c.Twitch.TokenSyncInterval)
	}

	return nil
}

func (c *Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}
