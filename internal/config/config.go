package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port                 string  `envconfig:"PORT" default:"8080"`
	CORSOrigins          string  `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
	AdminUsername        string  `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword        string  `envconfig:"ADMIN_PASSWORD" default:"password"`
	OrderWindowStartHour int     `envconfig:"ORDER_WINDOW_START_HOUR" default:"15"`
	OrderWindowEndMinute int     `envconfig:"ORDER_WINDOW_END_MINUTE" default:"30"`
	OrderAmountCap       float64 `envconfig:"ORDER_AMOUNT_CAP" default:"25"`
	SeedDemoData         bool    `envconfig:"SEED_DEMO_DATA" default:"false"`
	LogLevel             string  `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits the CORS allow-list, dropping empty entries.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
