package ioc

import (
	"time"

	"github.com/KNICEX/fxsignal/internal/service/fetch"
)

type SourceConfig struct {
	URL       string        `mapstructure:"url" default:"http://foresignal.com" validate:"required,url"`
	UserAgent string        `mapstructure:"user_agent" default:"Mozilla/5.0 Gecko/20090715 Firefox/3.5.1" validate:"required"`
	Timeout   time.Duration `mapstructure:"timeout" default:"20s" validate:"gte=1s"`
}

func InitSourceConfig() SourceConfig {
	var cfg SourceConfig
	unmarshalKey("source", &cfg)
	return cfg
}

func InitFetcher(cfg SourceConfig) fetch.Client {
	return fetch.NewClient(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
	)
}
