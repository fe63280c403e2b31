package price

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/KNICEX/fxsignal/internal/metrics"
	"github.com/shopspring/decimal"
)

// Refresher 后台定期刷新参考价缓存. 读取时不阻塞, 缓存为空或过期时直接返回没有价格.
type Refresher struct {
	source   Source
	interval time.Duration
	maxAge   time.Duration
	metrics  metrics.Recorder
	now      func() time.Time

	mu        sync.RWMutex
	prices    map[string]decimal.Decimal
	updatedAt time.Time
}

type Option func(r *Refresher)

// WithMaxAge 超过 maxAge 未成功刷新的缓存视为过期, 0 表示不过期
func WithMaxAge(maxAge time.Duration) Option {
	return func(r *Refresher) {
		r.maxAge = maxAge
	}
}

func WithMetrics(rec metrics.Recorder) Option {
	return func(r *Refresher) {
		r.metrics = rec
	}
}

func NewRefresher(source Source, interval time.Duration, opts ...Option) *Refresher {
	r := &Refresher{
		source:   source,
		interval: interval,
		metrics:  metrics.Nop{},
		now:      time.Now,
		prices:   map[string]decimal.Decimal{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Refresh 拉取一次, 成功后合并到缓存; 失败时保留旧的价格
func (r *Refresher) Refresh(ctx context.Context) error {
	prices, err := r.source.Prices(ctx)
	r.metrics.ReferenceRefresh(r.source.Name(), err)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for pair, p := range prices {
		r.prices[pair] = p
	}
	r.updatedAt = r.now()
	return nil
}

// Run 每个 interval 刷新一次, 直到 ctx 取消. 首次刷新由调用方通过 Refresh 完成.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("reference prices cannot be loaded", "source", r.source.Name(), "error", err)
		}
	}
}

func (r *Refresher) Price(currencyPair string) (decimal.Decimal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.maxAge > 0 && r.now().Sub(r.updatedAt) > r.maxAge {
		return decimal.Decimal{}, false
	}
	p, ok := r.prices[currencyPair]
	return p, ok
}
