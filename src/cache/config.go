package cache

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Backend     string `envconfig:"CACHE_BACKEND" default:"sqlite"` // sqlite, postgres or redis
	SQLitePath  string `envconfig:"CACHE_SQLITE_PATH" default:".cot_cache/snapshots.db"`
	PostgresDSN string `envconfig:"CACHE_POSTGRES_DSN" default:""`
	RedisAddr   string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisPass   string `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	MaxAgeHours int    `envconfig:"CACHE_MAX_AGE_HOURS" default:"24"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
