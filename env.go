package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID" env-required:"true"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`

	SpotifyEntityID string `env:"SPOTIFY_ENTITY_ID" env-default:"media_player.spotify"`

	RedisURL string        `env:"REDIS_URL" env-required:"true"`
	CacheTTL time.Duration `env:"CACHE_TTL" env-default:"24h"`

	NormalizeQueries bool `env:"NORMALIZE_QUERIES" env-default:"true"`

	Port string `env:"PORT" env-default:"1323"`

	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:"localhost:4318"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}
