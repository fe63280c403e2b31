package ioc

import (
	"time"

	"github.com/KNICEX/fxsignal/internal/schedule"
)

func InitPoller(task schedule.Task) *schedule.Poller {
	type Config struct {
		Delay time.Duration `mapstructure:"delay" default:"30s"`
		Live  bool          `mapstructure:"live"`
	}

	var cfg Config
	unmarshalKey("poll", &cfg)
	return schedule.NewPoller(task, cfg.Delay, schedule.WithLive(cfg.Live))
}
