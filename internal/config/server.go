package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// PostgresDSN is optional: without it the server keeps matches in
	// memory only and records no deal results.
	PostgresDSN string `env:"POSTGRES_DSN"`

	MatchEventBuffer int `env:"MATCH_EVENT_BUFFER" envDefault:"256"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
