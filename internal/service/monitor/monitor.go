package monitor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/KNICEX/fxsignal/internal/metrics"
	"github.com/KNICEX/fxsignal/internal/schedule"
	"github.com/KNICEX/fxsignal/internal/service/convert"
	"github.com/KNICEX/fxsignal/internal/service/extract"
	"github.com/KNICEX/fxsignal/internal/service/fetch"
	"github.com/KNICEX/fxsignal/internal/service/signal"
)

// SignalMonitor 一轮轮询: 拉取页面, 解析信号, 交给 tracker 比对
type SignalMonitor struct {
	url       string
	fetcher   fetch.Client
	cipher    *extract.CipherKeyExtractor
	assembler *signal.Assembler
	tracker   *signal.Tracker
	metrics   metrics.Recorder
}

type Option func(m *SignalMonitor)

func WithMetrics(rec metrics.Recorder) Option {
	return func(m *SignalMonitor) {
		m.metrics = rec
	}
}

func WithAssembler(a *signal.Assembler) Option {
	return func(m *SignalMonitor) {
		m.assembler = a
	}
}

func NewSignalMonitor(url string, fetcher fetch.Client, tracker *signal.Tracker, opts ...Option) schedule.Task {
	m := &SignalMonitor{
		url:       url,
		fetcher:   fetcher,
		cipher:    extract.NewCipherKeyExtractor(),
		assembler: signal.NewAssembler(),
		tracker:   tracker,
		metrics:   metrics.Nop{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *SignalMonitor) Run(ctx context.Context) error {
	start := time.Now()
	defer func() {
		m.metrics.PollDuration(time.Since(start))
	}()

	page, err := m.fetcher.Fetch(ctx, m.url)
	if err != nil {
		m.metrics.PollResult(metrics.PollFetchFailed)
		return err
	}

	result := metrics.PollOK
	var params *extract.CipherParams
	if p, err := m.cipher.Extract(page); err != nil {
		// 本轮不解码价格, 信号照常处理
		slog.Warn("price decoding disabled for this poll", "url", m.url, "error", err)
		result = metrics.PollNoCipher
	} else {
		params = &p
	}

	signals := m.assembler.Collect(page, params, func(fragment string, err error) {
		slog.Warn("drop signal fragment", "error", err, "fragment", fragment)
		m.metrics.FragmentDropped(dropReason(err))
	})
	slog.Debug("signals parsed", "count", len(signals))

	for _, kind := range m.tracker.ProcessBatch(ctx, signals) {
		m.metrics.EventFired(kind.String())
	}
	m.metrics.ActiveSignals(len(m.tracker.Active()))
	m.metrics.PollResult(result)
	return nil
}

func (m *SignalMonitor) Name() string {
	return "signal monitor task"
}

func dropReason(err error) string {
	switch {
	case errors.Is(err, signal.ErrTrendPriceMismatch):
		return "trend_price_mismatch"
	case errors.Is(err, convert.ErrKeyIndex):
		return "cipher_index"
	case errors.Is(err, convert.ErrFormat):
		return "format"
	case errors.Is(err, convert.ErrBlank), errors.Is(err, convert.ErrWrongType):
		return "value"
	default:
		return "other"
	}
}
