package price

import (
	"context"
	"log/slog"

	"github.com/adshao/go-binance/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// BinanceSource 用币安现货价格作为参考价, symbols 为货币对到币安交易对的映射, 如 EUR/USD -> EURUSDT
type BinanceSource struct {
	cli     *binance.Client
	symbols map[string]string
}

func NewBinanceSource(cli *binance.Client, symbols map[string]string) *BinanceSource {
	return &BinanceSource{
		cli:     cli,
		symbols: symbols,
	}
}

func (s *BinanceSource) Name() string {
	return "binance"
}

func (s *BinanceSource) Prices(ctx context.Context) (map[string]decimal.Decimal, error) {
	list, err := s.cli.NewListPricesService().Do(ctx)
	if err != nil {
		return nil, err
	}

	bySymbol := lo.SliceToMap(list, func(item *binance.SymbolPrice) (string, string) {
		return item.Symbol, item.Price
	})

	prices := make(map[string]decimal.Decimal, len(s.symbols))
	for pair, symbol := range s.symbols {
		raw, ok := bySymbol[symbol]
		if !ok {
			continue
		}
		p, err := decimal.NewFromString(raw)
		if err != nil {
			slog.Error("fail to parse price", "symbol", symbol, "price", raw, "error", err)
			continue
		}
		prices[pair] = p
	}
	return prices, nil
}
