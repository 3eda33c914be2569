package socrata

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host      string `envconfig:"SODA_HOST" default:"https://publicreporting.cftc.gov"`
	AppToken  string `envconfig:"SODA_APP_TOKEN" default:""`
	TimeoutS  int    `envconfig:"SODA_TIMEOUT_SECONDS" default:"30"`
	BatchSize int    `envconfig:"SODA_BATCH_SIZE" default:"50000"`
}

func GetConfig() *Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return &config
}
