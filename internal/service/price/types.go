package price

import (
	"context"

	"github.com/shopspring/decimal"
)

// Source 一次性拉取所有货币对的参考价
type Source interface {
	Name() string
	Prices(ctx context.Context) (map[string]decimal.Decimal, error)
}
