package ioc

import (
	"strings"
	"time"

	"github.com/KNICEX/fxsignal/internal/metrics"
	"github.com/KNICEX/fxsignal/internal/service/fetch"
	"github.com/KNICEX/fxsignal/internal/service/price"
	"github.com/samber/lo"
)

// InitPriceRefresher provider 为 none 时返回 nil
func InitPriceRefresher(fetcher fetch.Client, rec metrics.Recorder) *price.Refresher {
	type Config struct {
		Provider string        `mapstructure:"provider" default:"scrape" validate:"oneof=scrape binance none"`
		URL      string        `mapstructure:"url" default:"http://www.fxstreet.com/rates-charts/forex-rates/" validate:"required,url"`
		Interval time.Duration `mapstructure:"interval" default:"10s" validate:"gte=1s"`
		MaxAge   time.Duration `mapstructure:"max_age" default:"5m"`
		Binance  struct {
			Symbols map[string]string `mapstructure:"symbols"`
		} `mapstructure:"binance"`
	}

	var cfg Config
	unmarshalKey("price", &cfg)

	var src price.Source
	switch cfg.Provider {
	case "scrape":
		src = price.NewScrapeSource(cfg.URL, fetcher)
	case "binance":
		// viper 会把 key 转成小写
		symbols := lo.MapKeys(cfg.Binance.Symbols, func(_ string, pair string) string {
			return strings.ToUpper(pair)
		})
		src = price.NewBinanceSource(InitBinanceCli(), symbols)
	default:
		return nil
	}
	return price.NewRefresher(src, cfg.Interval, price.WithMaxAge(cfg.MaxAge), price.WithMetrics(rec))
}
