package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"levelkeeper/internal/logging"
	"levelkeeper/internal/store"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	DataFile  string `env:"DATA_FILE_PATH"         envDefault:"./data/memberData.json"`
	LogLevel  string `env:"LEVELKEEPER_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LEVELKEEPER_LOG_FORMAT" envDefault:"console"`
	HTTPAddr  string `env:"LEVELKEEPER_HTTP_ADDR"  envDefault:":9090"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = store.DefaultDataFile
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = logging.FormatConsole
	}
	return cfg, nil
}
