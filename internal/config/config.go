package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/chup1x/carmodels/internal/domain"
)

type Config struct {
	Server    ServerConfig
	VPIC      VPICConfig
	Prerender PrerenderConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port           string  `env:"SERVER_PORT" envDefault:"8080"`
	RateLimit      float64 `env:"RATE_LIMIT" envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

type VPICConfig struct {
	BaseURL string        `env:"VPIC_BASE_URL" envDefault:"https://vpic.nhtsa.dot.gov/api"`
	Timeout time.Duration `env:"VPIC_TIMEOUT" envDefault:"10s"`
}

type PrerenderConfig struct {
	Paths []string `env:"PRERENDER_PATHS" envSeparator:"," envDefault:"1/2024,2/2023"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

func ReadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse .env file: %w", err)
	}

	if _, err := config.Prerender.Routes(); err != nil {
		return nil, err
	}

	return config, nil
}

// Routes parses the seed list into result routes. Entries look like "1/2024".
func (c PrerenderConfig) Routes() ([]domain.ResultRoute, error) {
	routes := make([]domain.ResultRoute, 0, len(c.Paths))
	for _, p := range c.Paths {
		p = strings.Trim(strings.TrimSpace(p), "/")
		if p == "" {
			continue
		}
		makeID, year, ok := strings.Cut(p, "/")
		route := domain.ResultRoute{MakeID: makeID, Year: year}
		if !ok || strings.Contains(year, "/") || route.Validate() != nil {
			return nil, fmt.Errorf("parse prerender path %q: want makeID/year", p)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
