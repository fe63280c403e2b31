package price

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KNICEX/fxsignal/internal/service/convert"
	"github.com/KNICEX/fxsignal/internal/service/extract"
	"github.com/KNICEX/fxsignal/internal/service/fetch"
	"github.com/shopspring/decimal"
)

const (
	DefaultRatesURL = "http://www.fxstreet.com/rates-charts/forex-rates/"
	rateRowExpr     = `<td class="col-name">(?P<currency_pair>.+/.+)</td><td id="last_.+">(?P<mid>.+)</td><td id="open_.+">`
)

// ScrapeSource 从行情页面解析中间价
type ScrapeSource struct {
	url       string
	fetcher   fetch.Client
	extractor *extract.Extractor
}

func NewScrapeSource(url string, fetcher fetch.Client) *ScrapeSource {
	return &ScrapeSource{
		url:     url,
		fetcher: fetcher,
		extractor: extract.NewExtractor(
			[]extract.Rule{extract.NewRule("rate", rateRowExpr, convert.Mapper{"mid": convert.Decimal{}})},
			extract.WithLineFilter(func(line string) bool {
				return strings.Contains(line, `<td class="col-name">`)
			}),
		),
	}
}

func (s *ScrapeSource) Name() string {
	return "scrape"
}

func (s *ScrapeSource) Prices(ctx context.Context) (map[string]decimal.Decimal, error) {
	page, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		return nil, err
	}

	rows := s.extractor.ExtractAll(page, func(line string, err error) {
		slog.Debug("skip rate row", "error", err)
	})
	prices := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		pair, _ := row["currency_pair"].(string)
		mid, ok := row["mid"].(decimal.Decimal)
		if pair == "" || !ok {
			continue
		}
		prices[strings.TrimSpace(pair)] = mid
	}
	return prices, nil
}
